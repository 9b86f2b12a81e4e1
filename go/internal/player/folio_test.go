package player

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestFolioFormat(t *testing.T) {
	g := NewFolioGenerator(clockwork.NewFakeClock())

	assert.Equal(t, "Halcones-001-Ana-001", g.Folio("Halcones", "Ana", 1))
	assert.Equal(t, "Halcones-001-Luis-002", g.Folio("Halcones", "Luis", 2))
	assert.Equal(t, "Halcones-001-Ana-1234", g.Folio("Halcones", "Ana", 1234))
}

func TestFolioTokens(t *testing.T) {
	g := NewFolioGenerator(clockwork.NewFakeClock())

	tests := []struct {
		name      string
		team      string
		firstName string
		want      string
	}{
		{"whitespace stripped", "Los  Halcones\tRojos", "Ana María", "LosHalcone-001-AnaMaría-007"},
		{"case preserved", "halcones", "ANA", "halcones-001-ANA-007"},
		{"player token truncated", "Halcones", "Maximiliano", "Halcones-001-Maximili-007"},
		{"decomposed input normalised", "A\u0301guilas", "Jose\u0301", "\u00c1guilas-001-Jos\u00e9-007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Folio(tt.team, tt.firstName, 7))
		})
	}
}

func TestFolioFallbackUsesClock(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 535897932, time.UTC)
	g := NewFolioGenerator(clockwork.NewFakeClockAt(now))

	folio := g.For("Halcones", "Ana")
	assert.Equal(t, "Halcones-001-Ana-003", folio(3, false))
	assert.Equal(t, fmt.Sprintf("Halcones-001-Ana-%d", now.UnixNano()), folio(3, true))
}
