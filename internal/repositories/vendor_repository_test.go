package repositories

import (
	"testing"

	"cityinbox_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVendor(t *testing.T, repo VendorRepository, contact string, verified bool) *models.Vendor {
	t.Helper()
	vendor := &models.Vendor{
		ShopName:      "Sharma Electronics",
		Address:       "12 MG Road",
		ContactNumber: contact,
		Verified:      verified,
		PasswordHash:  "hashed",
	}
	require.NoError(t, repo.Create(vendor))
	return vendor
}

func TestVendorSetVerified_AlreadyVerified(t *testing.T) {
	repo := NewVendorRepository(newTestDB(t, &models.Vendor{}))
	vendor := seedVendor(t, repo, "9000000001", true)

	// Re-approving a verified vendor writes the value it already holds;
	// that is a no-op, not a missing vendor.
	require.NoError(t, repo.SetVerified(vendor.ID, true))

	stored, err := repo.FindByID(vendor.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
}

func TestVendorSetVerified_MissingVendor(t *testing.T) {
	repo := NewVendorRepository(newTestDB(t, &models.Vendor{}))

	err := repo.SetVerified(42, true)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestVendorCreate_DuplicateContact(t *testing.T) {
	repo := NewVendorRepository(newTestDB(t, &models.Vendor{}))
	seedVendor(t, repo, "9000000001", false)

	err := repo.Create(&models.Vendor{
		ShopName:      "Copy Shop",
		Address:       "14 MG Road",
		ContactNumber: "9000000001",
		PasswordHash:  "hashed",
	})
	assert.ErrorIs(t, err, ErrDuplicateContact)
}
