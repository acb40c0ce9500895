package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/secret"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/test/util"
)

func setupSecrets(t *testing.T) (*SecretService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	key := bytes.Repeat([]byte{0x42}, 32)
	svc, err := NewSecretService(client, key, "test-key-1")
	require.NoError(t, err)
	return svc, client
}

func TestParseMasterKey(t *testing.T) {
	key, err := ParseMasterKey("4242424242424242424242424242424242424242424242424242424242424242")
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = ParseMasterKey("abcd")
	require.Error(t, err)

	_, err = ParseMasterKey("zz")
	require.Error(t, err)
}

func TestNewSecretService_KeyLength(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	_, err := NewSecretService(client, []byte("short"), "k")
	require.Error(t, err)
}

func TestSecretService_SetGet(t *testing.T) {
	svc, client := setupSecrets(t)
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		err := svc.Set(ctx, "billing-PS-abc123", models.SetSecretRequest{
			KeyPath:    "billing/stripe/api_key",
			Value:      "sk_live_xyz",
			SecretType: "api_key",
		})
		require.NoError(t, err)

		got, err := svc.Get(ctx, "billing-PS-abc123", "billing/stripe/api_key")
		require.NoError(t, err)
		assert.Equal(t, "sk_live_xyz", got)
	})

	t.Run("value is not stored in plaintext", func(t *testing.T) {
		row, err := client.Secret.Query().Where(secret.KeyPath("billing/stripe/api_key")).Only(ctx)
		require.NoError(t, err)
		assert.NotContains(t, string(row.EncryptedValue), "sk_live_xyz")
		assert.Equal(t, "test-key-1", row.EncryptionKeyID)
	})

	t.Run("set replaces and get bumps access count", func(t *testing.T) {
		err := svc.Set(ctx, "billing-PS-abc123", models.SetSecretRequest{
			KeyPath: "billing/stripe/api_key",
			Value:   "sk_live_rotated",
		})
		require.NoError(t, err)

		got, err := svc.Get(ctx, "billing-PS-abc123", "billing/stripe/api_key")
		require.NoError(t, err)
		assert.Equal(t, "sk_live_rotated", got)

		row, err := client.Secret.Query().Where(secret.KeyPath("billing/stripe/api_key")).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, row.AccessCount)
		assert.NotNil(t, row.LastAccessedAt)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := svc.Get(ctx, "", "billing/missing")
		require.ErrorIs(t, err, ErrSecretNotFound)
	})

	t.Run("expired behaves as missing", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		err := svc.Set(ctx, "", models.SetSecretRequest{
			KeyPath:   "billing/old_token",
			Value:     "v",
			ExpiresAt: &past,
		})
		require.NoError(t, err)

		_, err = svc.Get(ctx, "", "billing/old_token")
		require.ErrorIs(t, err, ErrSecretExpired)
		assert.True(t, models.IsKind(err, models.KindNotFound))
	})

	t.Run("rejects bad key paths", func(t *testing.T) {
		for _, bad := range []string{"", "/leading", "trailing/", "a//b", "sp ace"} {
			err := svc.Set(ctx, "", models.SetSecretRequest{KeyPath: bad, Value: "v"})
			require.Error(t, err, "key path %q", bad)
			assert.True(t, models.IsKind(err, models.KindValidation))
		}
	})
}

func TestSecretService_List(t *testing.T) {
	svc, _ := setupSecrets(t)
	ctx := context.Background()

	for _, kp := range []string{"billing/stripe/api_key", "billing/stripe/webhook", "infra/pg/password"} {
		require.NoError(t, svc.Set(ctx, "", models.SetSecretRequest{KeyPath: kp, Value: "v"}))
	}

	t.Run("prefix filter without values", func(t *testing.T) {
		infos, err := svc.List(ctx, "", "billing/")
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "billing/stripe/api_key", infos[0].KeyPath)
		assert.Equal(t, "billing/stripe/webhook", infos[1].KeyPath)
	})

	t.Run("empty prefix lists all", func(t *testing.T) {
		infos, err := svc.List(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, infos, 3)
	})
}

func TestSecretService_Delete(t *testing.T) {
	svc, client := setupSecrets(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "ops-MS-abc123", models.SetSecretRequest{KeyPath: "infra/token", Value: "v"}))
	require.NoError(t, svc.Delete(ctx, "ops-MS-abc123", "infra/token"))

	_, err := svc.Get(ctx, "ops-MS-abc123", "infra/token")
	require.ErrorIs(t, err, ErrSecretNotFound)

	err = svc.Delete(ctx, "ops-MS-abc123", "infra/token")
	require.ErrorIs(t, err, ErrSecretNotFound)

	t.Run("audit survives deletion", func(t *testing.T) {
		rows, err := client.SecretAccessLog.Query().
			Where(secretaccesslog.KeyPath("infra/token")).
			Order(ent.Asc(secretaccesslog.FieldAccessedAt)).
			All(ctx)
		require.NoError(t, err)
		// set, delete, failed get, failed delete
		require.GreaterOrEqual(t, len(rows), 4)

		var failed int
		for _, row := range rows {
			assert.Equal(t, "ops-MS-abc123", row.AccessedBy)
			if !row.Success {
				failed++
			}
		}
		assert.GreaterOrEqual(t, failed, 2)
	})
}

func TestSecretService_AuditTrail(t *testing.T) {
	svc, client := setupSecrets(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "", models.SetSecretRequest{KeyPath: "a/b", Value: "v"}))
	_, err := svc.Get(ctx, "", "a/b")
	require.NoError(t, err)
	_, err = svc.Get(ctx, "", "a/missing")
	require.Error(t, err)

	rows, err := client.SecretAccessLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byType := map[secretaccesslog.AccessType]int{}
	for _, row := range rows {
		assert.Equal(t, AnonymousAccessor, row.AccessedBy)
		byType[row.AccessType]++
	}
	assert.Equal(t, 1, byType[secretaccesslog.AccessTypeSet])
	assert.Equal(t, 2, byType[secretaccesslog.AccessTypeGet])

	missing, err := client.SecretAccessLog.Query().
		Where(secretaccesslog.KeyPath("a/missing")).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Nil(t, missing.SecretID)
}
