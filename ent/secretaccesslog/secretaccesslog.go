// Code generated by ent, DO NOT EDIT.

package secretaccesslog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the secretaccesslog type in the database.
	Label = "secret_access_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSecretID holds the string denoting the secret_id field in the database.
	FieldSecretID = "secret_id"
	// FieldKeyPath holds the string denoting the key_path field in the database.
	FieldKeyPath = "key_path"
	// FieldAccessedBy holds the string denoting the accessed_by field in the database.
	FieldAccessedBy = "accessed_by"
	// FieldAccessType holds the string denoting the access_type field in the database.
	FieldAccessType = "access_type"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldAccessedAt holds the string denoting the accessed_at field in the database.
	FieldAccessedAt = "accessed_at"
	// Table holds the table name of the secretaccesslog in the database.
	Table = "secret_access_logs"
)

// Columns holds all SQL columns for secretaccesslog fields.
var Columns = []string{
	FieldID,
	FieldSecretID,
	FieldKeyPath,
	FieldAccessedBy,
	FieldAccessType,
	FieldSuccess,
	FieldError,
	FieldAccessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAccessedAt holds the default value on creation for the "accessed_at" field.
	DefaultAccessedAt func() time.Time
)

// AccessType defines the type for the "access_type" enum field.
type AccessType string

// AccessType values.
const (
	AccessTypeGet    AccessType = "get"
	AccessTypeSet    AccessType = "set"
	AccessTypeDelete AccessType = "delete"
	AccessTypeList   AccessType = "list"
)

func (at AccessType) String() string {
	return string(at)
}

// AccessTypeValidator is a validator for the "access_type" field enum values. It is called by the builders before save.
func AccessTypeValidator(at AccessType) error {
	switch at {
	case AccessTypeGet, AccessTypeSet, AccessTypeDelete, AccessTypeList:
		return nil
	default:
		return fmt.Errorf("secretaccesslog: invalid enum value for access_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the SecretAccessLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySecretID orders the results by the secret_id field.
func BySecretID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretID, opts...).ToFunc()
}

// ByKeyPath orders the results by the key_path field.
func ByKeyPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyPath, opts...).ToFunc()
}

// ByAccessedBy orders the results by the accessed_by field.
func ByAccessedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessedBy, opts...).ToFunc()
}

// ByAccessType orders the results by the access_type field.
func ByAccessType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessType, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByAccessedAt orders the results by the accessed_at field.
func ByAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessedAt, opts...).ToFunc()
}
