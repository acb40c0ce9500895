// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/predicate"
	"github.com/praxisworks/supervisor/ent/secret"
)

// SecretUpdate is the builder for updating Secret entities.
type SecretUpdate struct {
	config
	hooks    []Hook
	mutation *SecretMutation
}

// Where appends a list predicates to the SecretUpdate builder.
func (_u *SecretUpdate) Where(ps ...predicate.Secret) *SecretUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKeyPath sets the "key_path" field.
func (_u *SecretUpdate) SetKeyPath(v string) *SecretUpdate {
	_u.mutation.SetKeyPath(v)
	return _u
}

// SetNillableKeyPath sets the "key_path" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableKeyPath(v *string) *SecretUpdate {
	if v != nil {
		_u.SetKeyPath(*v)
	}
	return _u
}

// SetEncryptedValue sets the "encrypted_value" field.
func (_u *SecretUpdate) SetEncryptedValue(v []byte) *SecretUpdate {
	_u.mutation.SetEncryptedValue(v)
	return _u
}

// SetEncryptionKeyID sets the "encryption_key_id" field.
func (_u *SecretUpdate) SetEncryptionKeyID(v string) *SecretUpdate {
	_u.mutation.SetEncryptionKeyID(v)
	return _u
}

// SetNillableEncryptionKeyID sets the "encryption_key_id" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableEncryptionKeyID(v *string) *SecretUpdate {
	if v != nil {
		_u.SetEncryptionKeyID(*v)
	}
	return _u
}

// SetSecretType sets the "secret_type" field.
func (_u *SecretUpdate) SetSecretType(v string) *SecretUpdate {
	_u.mutation.SetSecretType(v)
	return _u
}

// SetNillableSecretType sets the "secret_type" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableSecretType(v *string) *SecretUpdate {
	if v != nil {
		_u.SetSecretType(*v)
	}
	return _u
}

// ClearSecretType clears the value of the "secret_type" field.
func (_u *SecretUpdate) ClearSecretType() *SecretUpdate {
	_u.mutation.ClearSecretType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SecretUpdate) SetDescription(v string) *SecretUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableDescription(v *string) *SecretUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SecretUpdate) ClearDescription() *SecretUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *SecretUpdate) SetAccessCount(v int) *SecretUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableAccessCount(v *int) *SecretUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *SecretUpdate) AddAccessCount(v int) *SecretUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *SecretUpdate) SetLastAccessedAt(v time.Time) *SecretUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableLastAccessedAt(v *time.Time) *SecretUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *SecretUpdate) ClearLastAccessedAt() *SecretUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SecretUpdate) SetExpiresAt(v time.Time) *SecretUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SecretUpdate) SetNillableExpiresAt(v *time.Time) *SecretUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SecretUpdate) ClearExpiresAt() *SecretUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SecretUpdate) SetMetadata(v map[string]interface{}) *SecretUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SecretUpdate) ClearMetadata() *SecretUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SecretUpdate) SetUpdatedAt(v time.Time) *SecretUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SecretMutation object of the builder.
func (_u *SecretUpdate) Mutation() *SecretMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecretUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecretUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SecretUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := secret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SecretUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(secret.Table, secret.Columns, sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeyPath(); ok {
		_spec.SetField(secret.FieldKeyPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedValue(); ok {
		_spec.SetField(secret.FieldEncryptedValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.EncryptionKeyID(); ok {
		_spec.SetField(secret.FieldEncryptionKeyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretType(); ok {
		_spec.SetField(secret.FieldSecretType, field.TypeString, value)
	}
	if _u.mutation.SecretTypeCleared() {
		_spec.ClearField(secret.FieldSecretType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(secret.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(secret.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(secret.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(secret.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(secret.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(secret.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(secret.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(secret.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(secret.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(secret.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(secret.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecretUpdateOne is the builder for updating a single Secret entity.
type SecretUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecretMutation
}

// SetKeyPath sets the "key_path" field.
func (_u *SecretUpdateOne) SetKeyPath(v string) *SecretUpdateOne {
	_u.mutation.SetKeyPath(v)
	return _u
}

// SetNillableKeyPath sets the "key_path" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableKeyPath(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetKeyPath(*v)
	}
	return _u
}

// SetEncryptedValue sets the "encrypted_value" field.
func (_u *SecretUpdateOne) SetEncryptedValue(v []byte) *SecretUpdateOne {
	_u.mutation.SetEncryptedValue(v)
	return _u
}

// SetEncryptionKeyID sets the "encryption_key_id" field.
func (_u *SecretUpdateOne) SetEncryptionKeyID(v string) *SecretUpdateOne {
	_u.mutation.SetEncryptionKeyID(v)
	return _u
}

// SetNillableEncryptionKeyID sets the "encryption_key_id" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableEncryptionKeyID(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetEncryptionKeyID(*v)
	}
	return _u
}

// SetSecretType sets the "secret_type" field.
func (_u *SecretUpdateOne) SetSecretType(v string) *SecretUpdateOne {
	_u.mutation.SetSecretType(v)
	return _u
}

// SetNillableSecretType sets the "secret_type" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableSecretType(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetSecretType(*v)
	}
	return _u
}

// ClearSecretType clears the value of the "secret_type" field.
func (_u *SecretUpdateOne) ClearSecretType() *SecretUpdateOne {
	_u.mutation.ClearSecretType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SecretUpdateOne) SetDescription(v string) *SecretUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableDescription(v *string) *SecretUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SecretUpdateOne) ClearDescription() *SecretUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *SecretUpdateOne) SetAccessCount(v int) *SecretUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableAccessCount(v *int) *SecretUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *SecretUpdateOne) AddAccessCount(v int) *SecretUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *SecretUpdateOne) SetLastAccessedAt(v time.Time) *SecretUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableLastAccessedAt(v *time.Time) *SecretUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *SecretUpdateOne) ClearLastAccessedAt() *SecretUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SecretUpdateOne) SetExpiresAt(v time.Time) *SecretUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SecretUpdateOne) SetNillableExpiresAt(v *time.Time) *SecretUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SecretUpdateOne) ClearExpiresAt() *SecretUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SecretUpdateOne) SetMetadata(v map[string]interface{}) *SecretUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SecretUpdateOne) ClearMetadata() *SecretUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SecretUpdateOne) SetUpdatedAt(v time.Time) *SecretUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SecretMutation object of the builder.
func (_u *SecretUpdateOne) Mutation() *SecretMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecretUpdate builder.
func (_u *SecretUpdateOne) Where(ps ...predicate.Secret) *SecretUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecretUpdateOne) Select(field string, fields ...string) *SecretUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Secret entity.
func (_u *SecretUpdateOne) Save(ctx context.Context) (*Secret, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretUpdateOne) SaveX(ctx context.Context) *Secret {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecretUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SecretUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := secret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SecretUpdateOne) sqlSave(ctx context.Context) (_node *Secret, err error) {
	_spec := sqlgraph.NewUpdateSpec(secret.Table, secret.Columns, sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Secret.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, secret.FieldID)
		for _, f := range fields {
			if !secret.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != secret.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeyPath(); ok {
		_spec.SetField(secret.FieldKeyPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedValue(); ok {
		_spec.SetField(secret.FieldEncryptedValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.EncryptionKeyID(); ok {
		_spec.SetField(secret.FieldEncryptionKeyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecretType(); ok {
		_spec.SetField(secret.FieldSecretType, field.TypeString, value)
	}
	if _u.mutation.SecretTypeCleared() {
		_spec.ClearField(secret.FieldSecretType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(secret.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(secret.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(secret.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(secret.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(secret.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(secret.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(secret.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(secret.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(secret.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(secret.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(secret.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Secret{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
