package auth

import (
	"testing"
	"time"

	"cityinbox_backend/internal/models"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse_Roundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	original := Principal{
		ID:        42,
		Role:      models.ActorRoleAdmin,
		AdminRole: models.AdminRoleSub,
		Section:   "vendors",
	}

	token, err := m.Issue(original)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, original, *parsed)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(Principal{ID: 1, Role: models.ActorRoleUser})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	m.ttl = -time.Minute

	token, err := m.Issue(Principal{ID: 1, Role: models.ActorRoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParse_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = m.Parse("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestNewTokenManager_DefaultsTTL(t *testing.T) {
	m := NewTokenManager("s", 0)
	assert.Equal(t, 24*time.Hour, m.ttl)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret-pass"))
}
