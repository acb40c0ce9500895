// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

// SecretAccessLog is the model entity for the SecretAccessLog schema.
type SecretAccessLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Nil when the key_path did not resolve
	SecretID *string `json:"secret_id,omitempty"`
	// Recorded even for failed lookups
	KeyPath string `json:"key_path,omitempty"`
	// Instance id or 'anonymous'
	AccessedBy string `json:"accessed_by,omitempty"`
	// AccessType holds the value of the "access_type" field.
	AccessType secretaccesslog.AccessType `json:"access_type,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// AccessedAt holds the value of the "accessed_at" field.
	AccessedAt   time.Time `json:"accessed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SecretAccessLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case secretaccesslog.FieldSuccess:
			values[i] = new(sql.NullBool)
		case secretaccesslog.FieldID:
			values[i] = new(sql.NullInt64)
		case secretaccesslog.FieldSecretID, secretaccesslog.FieldKeyPath, secretaccesslog.FieldAccessedBy, secretaccesslog.FieldAccessType, secretaccesslog.FieldError:
			values[i] = new(sql.NullString)
		case secretaccesslog.FieldAccessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SecretAccessLog fields.
func (_m *SecretAccessLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case secretaccesslog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case secretaccesslog.FieldSecretID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret_id", values[i])
			} else if value.Valid {
				_m.SecretID = new(string)
				*_m.SecretID = value.String
			}
		case secretaccesslog.FieldKeyPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_path", values[i])
			} else if value.Valid {
				_m.KeyPath = value.String
			}
		case secretaccesslog.FieldAccessedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accessed_by", values[i])
			} else if value.Valid {
				_m.AccessedBy = value.String
			}
		case secretaccesslog.FieldAccessType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_type", values[i])
			} else if value.Valid {
				_m.AccessType = secretaccesslog.AccessType(value.String)
			}
		case secretaccesslog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case secretaccesslog.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case secretaccesslog.FieldAccessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field accessed_at", values[i])
			} else if value.Valid {
				_m.AccessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SecretAccessLog.
// This includes values selected through modifiers, order, etc.
func (_m *SecretAccessLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SecretAccessLog.
// Note that you need to call SecretAccessLog.Unwrap() before calling this method if this SecretAccessLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SecretAccessLog) Update() *SecretAccessLogUpdateOne {
	return NewSecretAccessLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SecretAccessLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SecretAccessLog) Unwrap() *SecretAccessLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SecretAccessLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SecretAccessLog) String() string {
	var builder strings.Builder
	builder.WriteString("SecretAccessLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SecretID; v != nil {
		builder.WriteString("secret_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("key_path=")
	builder.WriteString(_m.KeyPath)
	builder.WriteString(", ")
	builder.WriteString("accessed_by=")
	builder.WriteString(_m.AccessedBy)
	builder.WriteString(", ")
	builder.WriteString("access_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessType))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("accessed_at=")
	builder.WriteString(_m.AccessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SecretAccessLogs is a parsable slice of SecretAccessLog.
type SecretAccessLogs []*SecretAccessLog
