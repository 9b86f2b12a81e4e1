package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("failed to create player: %w", InvalidPosition("abc", "Fútbol"))

	assert.True(t, errors.Is(err, ErrInvalidPosition))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, CodeInvalidPosition, GetCode(err))
	assert.Contains(t, err.Error(), "Fútbol")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", InvalidInput("name", "name is required"), http.StatusBadRequest},
		{"primary not found", NotFound("team", "1"), http.StatusNotFound},
		{"reference not found", MissingReference("team", "1"), http.StatusBadRequest},
		{"invalid sport", InvalidSport("x"), http.StatusBadRequest},
		{"dependents", TeamHasPlayers(2), http.StatusBadRequest},
		{"folio", FolioGenerationFailed(errors.New("dup")), http.StatusInternalServerError},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestGetCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, GetCode(errors.New("plain")))
	assert.True(t, IsCode(MissingReference("team", "1"), CodeNotFound))
}

func TestFolioGenerationFailedUnwraps(t *testing.T) {
	cause := errors.New("unique violation")
	err := FolioGenerationFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, int64(2), TeamHasPlayers(2).Fields["playersCount"])
}
