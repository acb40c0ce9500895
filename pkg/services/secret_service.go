package services

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/secret"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
	"github.com/praxisworks/supervisor/pkg/models"
)

// AnonymousAccessor is recorded when a secret operation has no session.
const AnonymousAccessor = "anonymous"

var keyPathPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+(/[A-Za-z0-9_.-]+)*$`)

// SecretService stores secrets encrypted at rest with AES-256-GCM and
// writes an audit row for every access attempt, successful or not.
// Values only exist in plaintext in memory, never in logs or listings.
type SecretService struct {
	client *ent.Client
	aead   cipher.AEAD
	keyID  string
	logger *slog.Logger

	// serializes writers per key_path
	locks sync.Map
}

// NewSecretService creates a secret service from a 32-byte master key.
// keyID names the key in stored rows so a rotation can tell old
// ciphertext from new.
func NewSecretService(client *ent.Client, masterKey []byte, keyID string) (*SecretService, error) {
	if len(masterKey) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(masterKey))
	}
	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("initializing GCM: %w", err)
	}
	return &SecretService{
		client: client,
		aead:   aead,
		keyID:  keyID,
		logger: slog.With("component", "secret_service"),
	}, nil
}

// ParseMasterKey decodes a hex-encoded 32-byte master key.
func ParseMasterKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("master key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes (64 hex characters), got %d bytes", len(key))
	}
	return key, nil
}

// Set stores or replaces a secret value. Writes to the same key_path are
// serialized; the audit row records who wrote it.
func (s *SecretService) Set(ctx context.Context, accessedBy string, req models.SetSecretRequest) error {
	if err := validateKeyPath(req.KeyPath); err != nil {
		return err
	}
	if req.Value == "" {
		return NewValidationError("value", "must not be empty")
	}
	accessedBy = normalizeAccessor(accessedBy)

	unlock := s.lockKeyPath(req.KeyPath)
	defer unlock()

	ciphertext := s.encrypt([]byte(req.Value))

	existing, err := s.client.Secret.Query().Where(secret.KeyPath(req.KeyPath)).Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().
			SetEncryptedValue(ciphertext).
			SetEncryptionKeyID(s.keyID)
		applySecretOptions(update.Mutation(), req)
		_, err = update.Save(ctx)
	case ent.IsNotFound(err):
		create := s.client.Secret.Create().
			SetID(uuid.NewString()).
			SetKeyPath(req.KeyPath).
			SetEncryptedValue(ciphertext).
			SetEncryptionKeyID(s.keyID)
		applySecretOptions(create.Mutation(), req)
		_, err = create.Save(ctx)
	default:
		err = fmt.Errorf("loading secret: %w", err)
	}

	if err != nil {
		s.logAccess(nil, req.KeyPath, accessedBy, secretaccesslog.AccessTypeSet, false, err.Error())
		return fmt.Errorf("storing secret %s: %w", req.KeyPath, err)
	}
	s.logAccess(nil, req.KeyPath, accessedBy, secretaccesslog.AccessTypeSet, true, "")
	return nil
}

// Get decrypts and returns a secret value, bumping access_count and
// last_accessed_at. Expired secrets behave as missing.
func (s *SecretService) Get(ctx context.Context, accessedBy, keyPath string) (string, error) {
	if err := validateKeyPath(keyPath); err != nil {
		return "", err
	}
	accessedBy = normalizeAccessor(accessedBy)

	row, err := s.client.Secret.Query().Where(secret.KeyPath(keyPath)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.logAccess(nil, keyPath, accessedBy, secretaccesslog.AccessTypeGet, false, "not found")
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, keyPath)
		}
		return "", fmt.Errorf("loading secret: %w", err)
	}
	if row.ExpiresAt != nil && time.Now().After(*row.ExpiresAt) {
		s.logAccess(&row.ID, keyPath, accessedBy, secretaccesslog.AccessTypeGet, false, "expired")
		return "", fmt.Errorf("%w: %s", ErrSecretExpired, keyPath)
	}

	plaintext, err := s.decrypt(row.EncryptedValue)
	if err != nil {
		s.logAccess(&row.ID, keyPath, accessedBy, secretaccesslog.AccessTypeGet, false, "decryption failed")
		return "", models.WrapKind(models.KindInternal, fmt.Sprintf("decrypting secret %s", keyPath), err)
	}

	if err := row.Update().
		AddAccessCount(1).
		SetLastAccessedAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to bump secret access count", "key_path", keyPath, "error", err)
	}

	s.logAccess(&row.ID, keyPath, accessedBy, secretaccesslog.AccessTypeGet, true, "")
	return string(plaintext), nil
}

// List returns metadata for secrets under a path prefix, never values.
// An empty prefix lists everything.
func (s *SecretService) List(ctx context.Context, accessedBy, pathPrefix string) ([]models.SecretInfo, error) {
	if pathPrefix != "" {
		if err := validateKeyPath(strings.TrimSuffix(pathPrefix, "/")); err != nil {
			return nil, err
		}
	}
	accessedBy = normalizeAccessor(accessedBy)

	q := s.client.Secret.Query()
	if pathPrefix != "" {
		q = q.Where(secret.KeyPathHasPrefix(pathPrefix))
	}
	rows, err := q.Order(ent.Asc(secret.FieldKeyPath)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	infos := make([]models.SecretInfo, 0, len(rows))
	for _, row := range rows {
		info := models.SecretInfo{
			KeyPath:        row.KeyPath,
			AccessCount:    row.AccessCount,
			LastAccessedAt: row.LastAccessedAt,
			ExpiresAt:      row.ExpiresAt,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		}
		if row.SecretType != nil {
			info.SecretType = *row.SecretType
		}
		if row.Description != nil {
			info.Description = *row.Description
		}
		infos = append(infos, info)
	}

	s.logAccess(nil, pathPrefix, accessedBy, secretaccesslog.AccessTypeList, true, "")
	return infos, nil
}

// Delete removes a secret. The audit trail keeps its rows; only the
// value disappears.
func (s *SecretService) Delete(ctx context.Context, accessedBy, keyPath string) error {
	if err := validateKeyPath(keyPath); err != nil {
		return err
	}
	accessedBy = normalizeAccessor(accessedBy)

	unlock := s.lockKeyPath(keyPath)
	defer unlock()

	row, err := s.client.Secret.Query().Where(secret.KeyPath(keyPath)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.logAccess(nil, keyPath, accessedBy, secretaccesslog.AccessTypeDelete, false, "not found")
			return fmt.Errorf("%w: %s", ErrSecretNotFound, keyPath)
		}
		return fmt.Errorf("loading secret: %w", err)
	}
	if err := s.client.Secret.DeleteOne(row).Exec(ctx); err != nil {
		s.logAccess(&row.ID, keyPath, accessedBy, secretaccesslog.AccessTypeDelete, false, err.Error())
		return fmt.Errorf("deleting secret %s: %w", keyPath, err)
	}

	s.logAccess(&row.ID, keyPath, accessedBy, secretaccesslog.AccessTypeDelete, true, "")
	s.logger.Info("Secret deleted", "key_path", keyPath, "accessed_by", accessedBy)
	return nil
}

// encrypt seals plaintext with a fresh random nonce: nonce || ciphertext || tag.
func (s *SecretService) encrypt(plaintext []byte) []byte {
	nonce := make([]byte, s.aead.NonceSize())
	_, _ = rand.Read(nonce)
	return s.aead.Seal(nonce, nonce, plaintext, nil)
}

func (s *SecretService) decrypt(blob []byte) ([]byte, error) {
	ns := s.aead.NonceSize()
	if len(blob) < ns {
		return nil, fmt.Errorf("ciphertext too short")
	}
	return s.aead.Open(nil, blob[:ns], blob[ns:], nil)
}

// logAccess writes an audit row on a background context. Audit failures
// are logged, never propagated: the operation outcome is already decided.
func (s *SecretService) logAccess(secretID *string, keyPath, accessedBy string, typ secretaccesslog.AccessType, success bool, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.SecretAccessLog.Create().
		SetKeyPath(keyPath).
		SetAccessedBy(accessedBy).
		SetAccessType(typ).
		SetSuccess(success)
	if secretID != nil {
		create.SetSecretID(*secretID)
	}
	if errMsg != "" {
		create.SetError(errMsg)
	}
	if err := create.Exec(ctx); err != nil {
		s.logger.Error("Failed to write secret access log",
			"key_path", keyPath, "access_type", typ, "error", err)
	}
}

func (s *SecretService) lockKeyPath(keyPath string) func() {
	v, _ := s.locks.LoadOrStore(keyPath, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func validateKeyPath(keyPath string) error {
	if keyPath == "" {
		return NewValidationError("key_path", "must not be empty")
	}
	if !keyPathPattern.MatchString(keyPath) {
		return NewValidationError("key_path", "must be segments of [A-Za-z0-9_.-] separated by '/'")
	}
	return nil
}

func normalizeAccessor(accessedBy string) string {
	if accessedBy == "" {
		return AnonymousAccessor
	}
	return accessedBy
}

// applySecretOptions sets the optional descriptive fields shared between
// create and update mutations.
func applySecretOptions(m *ent.SecretMutation, req models.SetSecretRequest) {
	if req.SecretType != "" {
		m.SetSecretType(req.SecretType)
	}
	if req.Description != "" {
		m.SetDescription(req.Description)
	}
	if req.ExpiresAt != nil {
		m.SetExpiresAt(*req.ExpiresAt)
	}
	if req.Metadata != nil {
		m.SetMetadata(req.Metadata)
	}
}
