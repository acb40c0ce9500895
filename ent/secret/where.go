// Code generated by ent, DO NOT EDIT.

package secret

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Secret {
	return predicate.Secret(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Secret {
	return predicate.Secret(sql.FieldContainsFold(FieldID, id))
}

// KeyPath applies equality check predicate on the "key_path" field. It's identical to KeyPathEQ.
func KeyPath(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldKeyPath, v))
}

// EncryptedValue applies equality check predicate on the "encrypted_value" field. It's identical to EncryptedValueEQ.
func EncryptedValue(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldEncryptedValue, v))
}

// EncryptionKeyID applies equality check predicate on the "encryption_key_id" field. It's identical to EncryptionKeyIDEQ.
func EncryptionKeyID(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldEncryptionKeyID, v))
}

// SecretType applies equality check predicate on the "secret_type" field. It's identical to SecretTypeEQ.
func SecretType(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldSecretType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldDescription, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldAccessCount, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldLastAccessedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyPathEQ applies the EQ predicate on the "key_path" field.
func KeyPathEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldKeyPath, v))
}

// KeyPathNEQ applies the NEQ predicate on the "key_path" field.
func KeyPathNEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldKeyPath, v))
}

// KeyPathIn applies the In predicate on the "key_path" field.
func KeyPathIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldKeyPath, vs...))
}

// KeyPathNotIn applies the NotIn predicate on the "key_path" field.
func KeyPathNotIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldKeyPath, vs...))
}

// KeyPathGT applies the GT predicate on the "key_path" field.
func KeyPathGT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldKeyPath, v))
}

// KeyPathGTE applies the GTE predicate on the "key_path" field.
func KeyPathGTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldKeyPath, v))
}

// KeyPathLT applies the LT predicate on the "key_path" field.
func KeyPathLT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldKeyPath, v))
}

// KeyPathLTE applies the LTE predicate on the "key_path" field.
func KeyPathLTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldKeyPath, v))
}

// KeyPathContains applies the Contains predicate on the "key_path" field.
func KeyPathContains(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContains(FieldKeyPath, v))
}

// KeyPathHasPrefix applies the HasPrefix predicate on the "key_path" field.
func KeyPathHasPrefix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasPrefix(FieldKeyPath, v))
}

// KeyPathHasSuffix applies the HasSuffix predicate on the "key_path" field.
func KeyPathHasSuffix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasSuffix(FieldKeyPath, v))
}

// KeyPathEqualFold applies the EqualFold predicate on the "key_path" field.
func KeyPathEqualFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEqualFold(FieldKeyPath, v))
}

// KeyPathContainsFold applies the ContainsFold predicate on the "key_path" field.
func KeyPathContainsFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContainsFold(FieldKeyPath, v))
}

// EncryptedValueEQ applies the EQ predicate on the "encrypted_value" field.
func EncryptedValueEQ(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldEncryptedValue, v))
}

// EncryptedValueNEQ applies the NEQ predicate on the "encrypted_value" field.
func EncryptedValueNEQ(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldEncryptedValue, v))
}

// EncryptedValueIn applies the In predicate on the "encrypted_value" field.
func EncryptedValueIn(vs ...[]byte) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldEncryptedValue, vs...))
}

// EncryptedValueNotIn applies the NotIn predicate on the "encrypted_value" field.
func EncryptedValueNotIn(vs ...[]byte) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldEncryptedValue, vs...))
}

// EncryptedValueGT applies the GT predicate on the "encrypted_value" field.
func EncryptedValueGT(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldEncryptedValue, v))
}

// EncryptedValueGTE applies the GTE predicate on the "encrypted_value" field.
func EncryptedValueGTE(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldEncryptedValue, v))
}

// EncryptedValueLT applies the LT predicate on the "encrypted_value" field.
func EncryptedValueLT(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldEncryptedValue, v))
}

// EncryptedValueLTE applies the LTE predicate on the "encrypted_value" field.
func EncryptedValueLTE(v []byte) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldEncryptedValue, v))
}

// EncryptionKeyIDEQ applies the EQ predicate on the "encryption_key_id" field.
func EncryptionKeyIDEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDNEQ applies the NEQ predicate on the "encryption_key_id" field.
func EncryptionKeyIDNEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDIn applies the In predicate on the "encryption_key_id" field.
func EncryptionKeyIDIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldEncryptionKeyID, vs...))
}

// EncryptionKeyIDNotIn applies the NotIn predicate on the "encryption_key_id" field.
func EncryptionKeyIDNotIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldEncryptionKeyID, vs...))
}

// EncryptionKeyIDGT applies the GT predicate on the "encryption_key_id" field.
func EncryptionKeyIDGT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDGTE applies the GTE predicate on the "encryption_key_id" field.
func EncryptionKeyIDGTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDLT applies the LT predicate on the "encryption_key_id" field.
func EncryptionKeyIDLT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDLTE applies the LTE predicate on the "encryption_key_id" field.
func EncryptionKeyIDLTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDContains applies the Contains predicate on the "encryption_key_id" field.
func EncryptionKeyIDContains(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContains(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDHasPrefix applies the HasPrefix predicate on the "encryption_key_id" field.
func EncryptionKeyIDHasPrefix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasPrefix(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDHasSuffix applies the HasSuffix predicate on the "encryption_key_id" field.
func EncryptionKeyIDHasSuffix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasSuffix(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDEqualFold applies the EqualFold predicate on the "encryption_key_id" field.
func EncryptionKeyIDEqualFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEqualFold(FieldEncryptionKeyID, v))
}

// EncryptionKeyIDContainsFold applies the ContainsFold predicate on the "encryption_key_id" field.
func EncryptionKeyIDContainsFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContainsFold(FieldEncryptionKeyID, v))
}

// SecretTypeEQ applies the EQ predicate on the "secret_type" field.
func SecretTypeEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldSecretType, v))
}

// SecretTypeNEQ applies the NEQ predicate on the "secret_type" field.
func SecretTypeNEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldSecretType, v))
}

// SecretTypeIn applies the In predicate on the "secret_type" field.
func SecretTypeIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldSecretType, vs...))
}

// SecretTypeNotIn applies the NotIn predicate on the "secret_type" field.
func SecretTypeNotIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldSecretType, vs...))
}

// SecretTypeGT applies the GT predicate on the "secret_type" field.
func SecretTypeGT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldSecretType, v))
}

// SecretTypeGTE applies the GTE predicate on the "secret_type" field.
func SecretTypeGTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldSecretType, v))
}

// SecretTypeLT applies the LT predicate on the "secret_type" field.
func SecretTypeLT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldSecretType, v))
}

// SecretTypeLTE applies the LTE predicate on the "secret_type" field.
func SecretTypeLTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldSecretType, v))
}

// SecretTypeContains applies the Contains predicate on the "secret_type" field.
func SecretTypeContains(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContains(FieldSecretType, v))
}

// SecretTypeHasPrefix applies the HasPrefix predicate on the "secret_type" field.
func SecretTypeHasPrefix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasPrefix(FieldSecretType, v))
}

// SecretTypeHasSuffix applies the HasSuffix predicate on the "secret_type" field.
func SecretTypeHasSuffix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasSuffix(FieldSecretType, v))
}

// SecretTypeIsNil applies the IsNil predicate on the "secret_type" field.
func SecretTypeIsNil() predicate.Secret {
	return predicate.Secret(sql.FieldIsNull(FieldSecretType))
}

// SecretTypeNotNil applies the NotNil predicate on the "secret_type" field.
func SecretTypeNotNil() predicate.Secret {
	return predicate.Secret(sql.FieldNotNull(FieldSecretType))
}

// SecretTypeEqualFold applies the EqualFold predicate on the "secret_type" field.
func SecretTypeEqualFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEqualFold(FieldSecretType, v))
}

// SecretTypeContainsFold applies the ContainsFold predicate on the "secret_type" field.
func SecretTypeContainsFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContainsFold(FieldSecretType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Secret {
	return predicate.Secret(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Secret {
	return predicate.Secret(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Secret {
	return predicate.Secret(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Secret {
	return predicate.Secret(sql.FieldContainsFold(FieldDescription, v))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldAccessCount, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldLastAccessedAt, v))
}

// LastAccessedAtIsNil applies the IsNil predicate on the "last_accessed_at" field.
func LastAccessedAtIsNil() predicate.Secret {
	return predicate.Secret(sql.FieldIsNull(FieldLastAccessedAt))
}

// LastAccessedAtNotNil applies the NotNil predicate on the "last_accessed_at" field.
func LastAccessedAtNotNil() predicate.Secret {
	return predicate.Secret(sql.FieldNotNull(FieldLastAccessedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Secret {
	return predicate.Secret(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Secret {
	return predicate.Secret(sql.FieldNotNull(FieldExpiresAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Secret {
	return predicate.Secret(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Secret {
	return predicate.Secret(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Secret {
	return predicate.Secret(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Secret) predicate.Secret {
	return predicate.Secret(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Secret) predicate.Secret {
	return predicate.Secret(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Secret) predicate.Secret {
	return predicate.Secret(sql.NotPredicates(p))
}
