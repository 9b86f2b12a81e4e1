// Package apperrors provides the machine-readable error taxonomy shared by the
// registries and its mapping onto HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidInput             Code = "InvalidInput"
	CodeNotFound                 Code = "NotFound"
	CodeInvalidSport             Code = "InvalidSport"
	CodeDuplicateName            Code = "DuplicateName"
	CodeDuplicateEmail           Code = "DuplicateEmail"
	CodeDuplicateIdentification  Code = "DuplicateIdentification"
	CodeDuplicateFolio           Code = "DuplicateFolio"
	CodeInvalidPosition          Code = "InvalidPosition"
	CodeMultiplePrimaryPositions Code = "MultiplePrimaryPositions"
	CodeHasDependents            Code = "HasDependents"
	CodePositionInUse            Code = "PositionInUse"
	CodeFolioGenerationFailed    Code = "FolioGenerationFailed"
	CodeInternal                 Code = "Internal"
)

// Error is a domain error carrying a code, a user-facing message and optional
// fields that are copied into the response envelope.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]any

	// reference marks a NotFound raised while resolving a cross-reference
	// (e.g. the team named in a player payload) rather than the primary resource.
	reference bool
	cause     error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code, so callers can write
// errors.Is(err, apperrors.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus maps the code onto the status returned by the REST surface.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeNotFound:
		if e.reference {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case CodeFolioGenerationFailed, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidInput             = &Error{Code: CodeInvalidInput}
	ErrNotFound                 = &Error{Code: CodeNotFound}
	ErrInvalidSport             = &Error{Code: CodeInvalidSport}
	ErrDuplicateName            = &Error{Code: CodeDuplicateName}
	ErrDuplicateEmail           = &Error{Code: CodeDuplicateEmail}
	ErrDuplicateIdentification  = &Error{Code: CodeDuplicateIdentification}
	ErrDuplicateFolio           = &Error{Code: CodeDuplicateFolio}
	ErrInvalidPosition          = &Error{Code: CodeInvalidPosition}
	ErrMultiplePrimaryPositions = &Error{Code: CodeMultiplePrimaryPositions}
	ErrHasDependents            = &Error{Code: CodeHasDependents}
	ErrPositionInUse            = &Error{Code: CodePositionInUse}
	ErrFolioGenerationFailed    = &Error{Code: CodeFolioGenerationFailed}
	ErrInternal                 = &Error{Code: CodeInternal}
)

// New creates an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// InvalidInput reports a missing or malformed field.
func InvalidInput(field, message string) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: message,
		Fields:  map[string]any{"field": field},
	}
}

// NotFound reports a primary resource that does not exist.
func NotFound(entity, id string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// MissingReference reports a referenced entity that does not resolve.
func MissingReference(entity, id string) *Error {
	e := NotFound(entity, id)
	e.reference = true
	return e
}

func InvalidSport(sportID string) *Error {
	return &Error{
		Code:    CodeInvalidSport,
		Message: fmt.Sprintf("sport %s does not exist", sportID),
		Fields:  map[string]any{"sport": sportID},
	}
}

func DuplicateName(name string) *Error {
	return &Error{Code: CodeDuplicateName, Message: fmt.Sprintf("a sport named %q already exists", name)}
}

func DuplicateEmail(email string) *Error {
	return &Error{Code: CodeDuplicateEmail, Message: fmt.Sprintf("email %s is already registered", email)}
}

func DuplicateIdentification(identification string) *Error {
	return &Error{
		Code:    CodeDuplicateIdentification,
		Message: fmt.Sprintf("identification %s is already registered", identification),
	}
}

func DuplicateFolio(folio string) *Error {
	return &Error{Code: CodeDuplicateFolio, Message: fmt.Sprintf("registration folio %s already exists", folio)}
}

func InvalidPosition(positionID, sportName string) *Error {
	return &Error{
		Code:    CodeInvalidPosition,
		Message: fmt.Sprintf("position %s is not valid for sport %s", positionID, sportName),
		Fields:  map[string]any{"position": positionID, "sport": sportName},
	}
}

func MultiplePrimaryPositions(count int) *Error {
	return &Error{
		Code:    CodeMultiplePrimaryPositions,
		Message: fmt.Sprintf("only one primary position is allowed, got %d", count),
	}
}

// TeamHasPlayers blocks a team deletion while players reference it.
func TeamHasPlayers(count int64) *Error {
	return &Error{
		Code:    CodeHasDependents,
		Message: fmt.Sprintf("team has %d registered players; use force delete to remove them", count),
		Fields:  map[string]any{"hasPlayers": true, "playersCount": count},
	}
}

// SportHasTeams blocks a sport deletion while teams reference it.
func SportHasTeams(count int64) *Error {
	return &Error{
		Code:    CodeHasDependents,
		Message: fmt.Sprintf("sport is used by %d teams", count),
		Fields:  map[string]any{"hasTeams": true, "teamsCount": count},
	}
}

func PositionInUse(positionName string, players int64) *Error {
	return &Error{
		Code:    CodePositionInUse,
		Message: fmt.Sprintf("position %s is assigned to %d players", positionName, players),
		Fields:  map[string]any{"position": positionName, "playersCount": players},
	}
}

func FolioGenerationFailed(cause error) *Error {
	return &Error{
		Code:    CodeFolioGenerationFailed,
		Message: "could not generate a unique registration folio",
		cause:   cause,
	}
}

// Internal wraps an unexpected storage or infrastructure failure.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", cause: cause}
}

// GetCode extracts the code from any error, or CodeInternal when err is not a
// domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
