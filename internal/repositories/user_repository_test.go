package repositories

import (
	"testing"

	"cityinbox_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))
	return db
}

func seedUser(t *testing.T, repo UserRepository, email, mobile string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Priya",
		Email:        email,
		Mobile:       mobile,
		PasswordHash: "hashed",
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t, &models.User{}))
	seedUser(t, repo, "priya@example.com", "9876543210")

	err := repo.Create(&models.User{
		Name:         "Imposter",
		Email:        "priya@example.com",
		Mobile:       "9000000000",
		PasswordHash: "hashed",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUpdateDeviceToken_RepeatSameToken(t *testing.T) {
	repo := NewUserRepository(newTestDB(t, &models.User{}))
	user := seedUser(t, repo, "priya@example.com", "9876543210")
	require.NoError(t, repo.UpdateDeviceToken(user.ID, "tok-1"))

	// Logging in again from the same device rewrites an identical token.
	// That must read as success, never as a missing user.
	require.NoError(t, repo.UpdateDeviceToken(user.ID, "tok-1"))

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DeviceToken)
	assert.Equal(t, "tok-1", *stored.DeviceToken)
}

func TestUpdateDeviceToken_MissingUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t, &models.User{}))

	err := repo.UpdateDeviceToken(42, "tok-1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
