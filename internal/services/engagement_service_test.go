package services

import (
	"errors"
	"net/http"
	"testing"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngagementBookmarkRepo struct {
	repositories.BookmarkRepository

	added     [][2]uint
	removeErr error
}

func (r *fakeEngagementBookmarkRepo) Add(userID, vendorID uint) error {
	r.added = append(r.added, [2]uint{userID, vendorID})
	return nil
}

func (r *fakeEngagementBookmarkRepo) Remove(userID, vendorID uint) error {
	return r.removeErr
}

type fakeEngagementRatingRepo struct {
	repositories.RatingRepository

	upserted []*models.VendorRating
}

func (r *fakeEngagementRatingRepo) Upsert(rating *models.VendorRating) error {
	r.upserted = append(r.upserted, rating)
	return nil
}

func seededVendorRepo(t *testing.T) (*fakeVendorRepo, *models.Vendor) {
	t.Helper()
	repo := newFakeVendorRepo()
	vendor := &models.Vendor{ShopName: "Test Shop", ContactNumber: "9876500001"}
	require.NoError(t, repo.Create(vendor))
	return repo, vendor
}

func TestBookmarkAdd_VendorMustExist(t *testing.T) {
	vendors, vendor := seededVendorRepo(t)
	bookmarks := &fakeEngagementBookmarkRepo{}
	svc := NewBookmarkService(bookmarks, vendors)

	require.NoError(t, svc.Add(1, vendor.ID))
	require.Len(t, bookmarks.added, 1)

	err := svc.Add(1, 999)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	// The failed add never reached the repository.
	assert.Len(t, bookmarks.added, 1)
}

func TestBookmarkRemove_MissingRowIsNotFound(t *testing.T) {
	vendors, _ := seededVendorRepo(t)
	bookmarks := &fakeEngagementBookmarkRepo{removeErr: repositories.ErrBookmarkNotFound}
	svc := NewBookmarkService(bookmarks, vendors)

	err := svc.Remove(1, 5)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestRate_UpsertsForExistingVendor(t *testing.T) {
	vendors, vendor := seededVendorRepo(t)
	ratings := &fakeEngagementRatingRepo{}
	svc := NewRatingService(ratings, vendors)

	rating, err := svc.Rate(7, &dto.RateVendorRequest{
		VendorID: vendor.ID,
		Rating:   4,
		Review:   "Quick service",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), rating.UserID)
	assert.Equal(t, vendor.ID, rating.VendorID)
	assert.Equal(t, 4.0, rating.Rating)
	require.Len(t, ratings.upserted, 1)
}

func TestRate_UnknownVendor(t *testing.T) {
	vendors, _ := seededVendorRepo(t)
	ratings := &fakeEngagementRatingRepo{}
	svc := NewRatingService(ratings, vendors)

	_, err := svc.Rate(7, &dto.RateVendorRequest{VendorID: 999, Rating: 5})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Empty(t, ratings.upserted)
}
