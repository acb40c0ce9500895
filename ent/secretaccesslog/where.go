// Code generated by ent, DO NOT EDIT.

package secretaccesslog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldID, id))
}

// SecretID applies equality check predicate on the "secret_id" field. It's identical to SecretIDEQ.
func SecretID(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldSecretID, v))
}

// KeyPath applies equality check predicate on the "key_path" field. It's identical to KeyPathEQ.
func KeyPath(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldKeyPath, v))
}

// AccessedBy applies equality check predicate on the "accessed_by" field. It's identical to AccessedByEQ.
func AccessedBy(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldAccessedBy, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldSuccess, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldError, v))
}

// AccessedAt applies equality check predicate on the "accessed_at" field. It's identical to AccessedAtEQ.
func AccessedAt(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldAccessedAt, v))
}

// SecretIDEQ applies the EQ predicate on the "secret_id" field.
func SecretIDEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldSecretID, v))
}

// SecretIDNEQ applies the NEQ predicate on the "secret_id" field.
func SecretIDNEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldSecretID, v))
}

// SecretIDIn applies the In predicate on the "secret_id" field.
func SecretIDIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldSecretID, vs...))
}

// SecretIDNotIn applies the NotIn predicate on the "secret_id" field.
func SecretIDNotIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldSecretID, vs...))
}

// SecretIDGT applies the GT predicate on the "secret_id" field.
func SecretIDGT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldSecretID, v))
}

// SecretIDGTE applies the GTE predicate on the "secret_id" field.
func SecretIDGTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldSecretID, v))
}

// SecretIDLT applies the LT predicate on the "secret_id" field.
func SecretIDLT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldSecretID, v))
}

// SecretIDLTE applies the LTE predicate on the "secret_id" field.
func SecretIDLTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldSecretID, v))
}

// SecretIDContains applies the Contains predicate on the "secret_id" field.
func SecretIDContains(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContains(FieldSecretID, v))
}

// SecretIDHasPrefix applies the HasPrefix predicate on the "secret_id" field.
func SecretIDHasPrefix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasPrefix(FieldSecretID, v))
}

// SecretIDHasSuffix applies the HasSuffix predicate on the "secret_id" field.
func SecretIDHasSuffix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasSuffix(FieldSecretID, v))
}

// SecretIDIsNil applies the IsNil predicate on the "secret_id" field.
func SecretIDIsNil() predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIsNull(FieldSecretID))
}

// SecretIDNotNil applies the NotNil predicate on the "secret_id" field.
func SecretIDNotNil() predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotNull(FieldSecretID))
}

// SecretIDEqualFold applies the EqualFold predicate on the "secret_id" field.
func SecretIDEqualFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEqualFold(FieldSecretID, v))
}

// SecretIDContainsFold applies the ContainsFold predicate on the "secret_id" field.
func SecretIDContainsFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContainsFold(FieldSecretID, v))
}

// KeyPathEQ applies the EQ predicate on the "key_path" field.
func KeyPathEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldKeyPath, v))
}

// KeyPathNEQ applies the NEQ predicate on the "key_path" field.
func KeyPathNEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldKeyPath, v))
}

// KeyPathIn applies the In predicate on the "key_path" field.
func KeyPathIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldKeyPath, vs...))
}

// KeyPathNotIn applies the NotIn predicate on the "key_path" field.
func KeyPathNotIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldKeyPath, vs...))
}

// KeyPathGT applies the GT predicate on the "key_path" field.
func KeyPathGT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldKeyPath, v))
}

// KeyPathGTE applies the GTE predicate on the "key_path" field.
func KeyPathGTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldKeyPath, v))
}

// KeyPathLT applies the LT predicate on the "key_path" field.
func KeyPathLT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldKeyPath, v))
}

// KeyPathLTE applies the LTE predicate on the "key_path" field.
func KeyPathLTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldKeyPath, v))
}

// KeyPathContains applies the Contains predicate on the "key_path" field.
func KeyPathContains(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContains(FieldKeyPath, v))
}

// KeyPathHasPrefix applies the HasPrefix predicate on the "key_path" field.
func KeyPathHasPrefix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasPrefix(FieldKeyPath, v))
}

// KeyPathHasSuffix applies the HasSuffix predicate on the "key_path" field.
func KeyPathHasSuffix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasSuffix(FieldKeyPath, v))
}

// KeyPathEqualFold applies the EqualFold predicate on the "key_path" field.
func KeyPathEqualFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEqualFold(FieldKeyPath, v))
}

// KeyPathContainsFold applies the ContainsFold predicate on the "key_path" field.
func KeyPathContainsFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContainsFold(FieldKeyPath, v))
}

// AccessedByEQ applies the EQ predicate on the "accessed_by" field.
func AccessedByEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldAccessedBy, v))
}

// AccessedByNEQ applies the NEQ predicate on the "accessed_by" field.
func AccessedByNEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldAccessedBy, v))
}

// AccessedByIn applies the In predicate on the "accessed_by" field.
func AccessedByIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldAccessedBy, vs...))
}

// AccessedByNotIn applies the NotIn predicate on the "accessed_by" field.
func AccessedByNotIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldAccessedBy, vs...))
}

// AccessedByGT applies the GT predicate on the "accessed_by" field.
func AccessedByGT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldAccessedBy, v))
}

// AccessedByGTE applies the GTE predicate on the "accessed_by" field.
func AccessedByGTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldAccessedBy, v))
}

// AccessedByLT applies the LT predicate on the "accessed_by" field.
func AccessedByLT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldAccessedBy, v))
}

// AccessedByLTE applies the LTE predicate on the "accessed_by" field.
func AccessedByLTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldAccessedBy, v))
}

// AccessedByContains applies the Contains predicate on the "accessed_by" field.
func AccessedByContains(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContains(FieldAccessedBy, v))
}

// AccessedByHasPrefix applies the HasPrefix predicate on the "accessed_by" field.
func AccessedByHasPrefix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasPrefix(FieldAccessedBy, v))
}

// AccessedByHasSuffix applies the HasSuffix predicate on the "accessed_by" field.
func AccessedByHasSuffix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasSuffix(FieldAccessedBy, v))
}

// AccessedByEqualFold applies the EqualFold predicate on the "accessed_by" field.
func AccessedByEqualFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEqualFold(FieldAccessedBy, v))
}

// AccessedByContainsFold applies the ContainsFold predicate on the "accessed_by" field.
func AccessedByContainsFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContainsFold(FieldAccessedBy, v))
}

// AccessTypeEQ applies the EQ predicate on the "access_type" field.
func AccessTypeEQ(v AccessType) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldAccessType, v))
}

// AccessTypeNEQ applies the NEQ predicate on the "access_type" field.
func AccessTypeNEQ(v AccessType) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldAccessType, v))
}

// AccessTypeIn applies the In predicate on the "access_type" field.
func AccessTypeIn(vs ...AccessType) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldAccessType, vs...))
}

// AccessTypeNotIn applies the NotIn predicate on the "access_type" field.
func AccessTypeNotIn(vs ...AccessType) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldAccessType, vs...))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldContainsFold(FieldError, v))
}

// AccessedAtEQ applies the EQ predicate on the "accessed_at" field.
func AccessedAtEQ(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldEQ(FieldAccessedAt, v))
}

// AccessedAtNEQ applies the NEQ predicate on the "accessed_at" field.
func AccessedAtNEQ(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNEQ(FieldAccessedAt, v))
}

// AccessedAtIn applies the In predicate on the "accessed_at" field.
func AccessedAtIn(vs ...time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldIn(FieldAccessedAt, vs...))
}

// AccessedAtNotIn applies the NotIn predicate on the "accessed_at" field.
func AccessedAtNotIn(vs ...time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldNotIn(FieldAccessedAt, vs...))
}

// AccessedAtGT applies the GT predicate on the "accessed_at" field.
func AccessedAtGT(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGT(FieldAccessedAt, v))
}

// AccessedAtGTE applies the GTE predicate on the "accessed_at" field.
func AccessedAtGTE(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldGTE(FieldAccessedAt, v))
}

// AccessedAtLT applies the LT predicate on the "accessed_at" field.
func AccessedAtLT(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLT(FieldAccessedAt, v))
}

// AccessedAtLTE applies the LTE predicate on the "accessed_at" field.
func AccessedAtLTE(v time.Time) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.FieldLTE(FieldAccessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SecretAccessLog) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SecretAccessLog) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SecretAccessLog) predicate.SecretAccessLog {
	return predicate.SecretAccessLog(sql.NotPredicates(p))
}
