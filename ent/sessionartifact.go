// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/meghna/questly/ent/sessionartifact"
)

// SessionArtifact is the model entity for the SessionArtifact schema.
type SessionArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learning session identity
	SessionID string `json:"session_id,omitempty"`
	// Artifact name: chapters, personas, quest, chat_transcript
	Field string `json:"field,omitempty"`
	// Artifact body as JSON
	Payload json.RawMessage `json:"payload,omitempty"`
	// Last overwrite time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionartifact.FieldPayload:
			values[i] = new([]byte)
		case sessionartifact.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionartifact.FieldSessionID, sessionartifact.FieldField:
			values[i] = new(sql.NullString)
		case sessionartifact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionArtifact fields.
func (_m *SessionArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionartifact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionartifact.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionartifact.FieldField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field", values[i])
			} else if value.Valid {
				_m.Field = value.String
			}
		case sessionartifact.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case sessionartifact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *SessionArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionArtifact.
// Note that you need to call SessionArtifact.Unwrap() before calling this method if this SessionArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionArtifact) Update() *SessionArtifactUpdateOne {
	return NewSessionArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionArtifact) Unwrap() *SessionArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("SessionArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("field=")
	builder.WriteString(_m.Field)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionArtifacts is a parsable slice of SessionArtifact.
type SessionArtifacts []*SessionArtifact
