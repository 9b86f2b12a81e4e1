package sqlutil

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

// Conversions between optional domain fields and sqlc's nullable column types.

// ToSqlString converts a string pointer to sql.NullString. Blank strings are
// stored as NULL.
func ToSqlString(val *string) sql.NullString {
	if val == nil || strings.TrimSpace(*val) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*val), Valid: true}
}

// FromSqlStringPtr converts sql.NullString to a string pointer.
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	s := val.String
	return &s
}

// ToSqlInt32 converts an int pointer to sql.NullInt32.
func ToSqlInt32(val *int) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*val), Valid: true}
}

// FromSqlInt32 converts sql.NullInt32 to an int pointer.
func FromSqlInt32(val sql.NullInt32) *int {
	if !val.Valid {
		return nil
	}
	i := int(val.Int32)
	return &i
}

// ToNullUUID converts a uuid pointer to uuid.NullUUID.
func ToNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// ToNullRawMessage wraps a jsonb document; empty input is NULL.
func ToNullRawMessage(raw json.RawMessage) pqtype.NullRawMessage {
	if len(raw) == 0 {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

// FromNullRawMessage unwraps a nullable jsonb document.
func FromNullRawMessage(val pqtype.NullRawMessage) json.RawMessage {
	if !val.Valid {
		return nil
	}
	return val.RawMessage
}
