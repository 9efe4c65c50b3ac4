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
	"gorm.io/datatypes"
)

type fakeVendorRepo struct {
	repositories.VendorRepository

	vendors    map[uint]*models.Vendor
	nextID     uint
	lastFilter repositories.VendorFilter
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[uint]*models.Vendor{}}
}

func (r *fakeVendorRepo) Create(vendor *models.Vendor) error {
	for _, v := range r.vendors {
		if v.ContactNumber == vendor.ContactNumber {
			return repositories.ErrDuplicateContact
		}
	}
	r.nextID++
	vendor.ID = r.nextID
	copied := *vendor
	r.vendors[vendor.ID] = &copied
	return nil
}

func (r *fakeVendorRepo) FindByID(id uint) (*models.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, repositories.ErrVendorNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVendorRepo) FindByIDWithRelations(id uint) (*models.Vendor, error) {
	return r.FindByID(id)
}

func (r *fakeVendorRepo) ContactNumberTaken(contact string, excludeID uint) (bool, error) {
	for id, v := range r.vendors {
		if v.ContactNumber == contact && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVendorRepo) Update(vendor *models.Vendor) error {
	if _, ok := r.vendors[vendor.ID]; !ok {
		return repositories.ErrVendorNotFound
	}
	copied := *vendor
	r.vendors[vendor.ID] = &copied
	return nil
}

func (r *fakeVendorRepo) Search(filter repositories.VendorFilter) ([]models.Vendor, error) {
	r.lastFilter = filter
	return nil, nil
}

type fakeRatingRepo struct {
	repositories.RatingRepository

	summary repositories.RatingSummary
}

func (r *fakeRatingRepo) SummaryByVendor(_ uint) (*repositories.RatingSummary, error) {
	s := r.summary
	return &s, nil
}

type fakeBookmarkRepo struct {
	repositories.BookmarkRepository

	bookmarked map[uint]bool
}

func (r *fakeBookmarkRepo) Exists(userID uint, _ uint) (bool, error) {
	return r.bookmarked[userID], nil
}

func newVendorService(repo *fakeVendorRepo) VendorService {
	return NewVendorService(repo, &fakeRatingRepo{}, &fakeBookmarkRepo{})
}

func createReq(contact string) *dto.CreateVendorRequest {
	return &dto.CreateVendorRequest{
		ShopName:      "Sharma Electronics",
		Address:       "12 MG Road",
		City:          "Indore",
		State:         "Madhya Pradesh",
		ContactNumber: contact,
		Images:        []string{"vendor/a.jpg"},
	}
}

func TestVendorCreate_VerifiedFollowsOrigin(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	byAdmin, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)
	assert.True(t, byAdmin.Verified)

	salesID := uint(3)
	bySales, err := svc.Create(createReq("9876500002"), models.VendorOriginSales, &salesID)
	require.NoError(t, err)
	assert.False(t, bySales.Verified)
	require.NotNil(t, bySales.SalesExecutiveID)
	assert.Equal(t, salesID, *bySales.SalesExecutiveID)

	bySelf, err := svc.Create(createReq("9876500003"), models.VendorOriginSelf, nil)
	require.NoError(t, err)
	assert.False(t, bySelf.Verified)
}

func TestVendorCreate_DuplicateContactRejected(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	_, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)

	_, err = svc.Create(createReq("9876500001"), models.VendorOriginSelf, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestVendorUpdatePublic_ResetsVerifiedAndAppendsImages(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	vendor, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)
	require.True(t, vendor.Verified)

	updated, err := svc.UpdatePublic(vendor.ID, &dto.UpdateVendorRequest{
		Facilities: "Parking, card payments",
		Images:     []string{"vendor/b.jpg", "vendor/c.jpg"},
	})
	require.NoError(t, err)

	assert.False(t, updated.Verified)
	assert.Equal(t, "Parking, card payments", updated.Facilities)
	// New images go after the existing ones.
	assert.Equal(t, datatypes.JSONSlice[string]{"vendor/a.jpg", "vendor/b.jpg", "vendor/c.jpg"}, updated.Images)

	stored, err := repo.FindByID(vendor.ID)
	require.NoError(t, err)
	assert.False(t, stored.Verified)
}

func TestVendorUpdateAdmin_ReplacesImagesKeepsVerified(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	vendor, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateAdmin(vendor.ID, &dto.UpdateVendorRequest{
		Images: []string{"vendor/new.jpg"},
	})
	require.NoError(t, err)

	assert.True(t, updated.Verified)
	assert.Equal(t, datatypes.JSONSlice[string]{"vendor/new.jpg"}, updated.Images)

	// Empty image list means keep what is stored.
	kept, err := svc.UpdateAdmin(vendor.ID, &dto.UpdateVendorRequest{ShopName: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", kept.ShopName)
	assert.Equal(t, datatypes.JSONSlice[string]{"vendor/new.jpg"}, kept.Images)
}

func TestVendorUpdate_ContactConflict(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	_, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)
	second, err := svc.Create(createReq("9876500002"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)

	_, err = svc.UpdateAdmin(second.ID, &dto.UpdateVendorRequest{ContactNumber: "9876500001"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)

	// Same number on the same vendor is not a conflict.
	_, err = svc.UpdateAdmin(second.ID, &dto.UpdateVendorRequest{ContactNumber: "9876500002"})
	assert.NoError(t, err)
}

func TestVendorSearch_PublicForcesVerifiedOnly(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	_, err := svc.Search(&dto.VendorSearchRequest{}, true)
	require.NoError(t, err)
	assert.True(t, repo.lastFilter.VerifiedOnly)

	_, err = svc.Search(&dto.VendorSearchRequest{}, false)
	require.NoError(t, err)
	assert.False(t, repo.lastFilter.VerifiedOnly)
}

func TestVendorSearch_DateBounds(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := newVendorService(repo)

	_, err := svc.Search(&dto.VendorSearchRequest{
		DateFrom: "2025-01-01",
		DateTo:   "2025-01-31",
	}, false)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.DateFrom)
	require.NotNil(t, repo.lastFilter.DateTo)
	assert.Equal(t, "2025-01-01", repo.lastFilter.DateFrom.Format("2006-01-02"))
	// Upper bound is inclusive: the filter covers the whole last day.
	assert.Equal(t, "2025-01-31", repo.lastFilter.DateTo.Format("2006-01-02"))
	assert.Equal(t, 23, repo.lastFilter.DateTo.Hour())

	_, err = svc.Search(&dto.VendorSearchRequest{DateFrom: "31-01-2025"}, false)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestVendorGetByID_IncludesRatingAndBookmark(t *testing.T) {
	repo := newFakeVendorRepo()
	ratings := &fakeRatingRepo{summary: repositories.RatingSummary{Average: 4.2, Count: 17}}
	bookmarks := &fakeBookmarkRepo{bookmarked: map[uint]bool{42: true}}
	svc := NewVendorService(repo, ratings, bookmarks)

	vendor, err := svc.Create(createReq("9876500001"), models.VendorOriginAdmin, nil)
	require.NoError(t, err)

	viewer := uint(42)
	resp, err := svc.GetByID(vendor.ID, &viewer)
	require.NoError(t, err)
	assert.Equal(t, 4.2, resp.RatingAverage)
	assert.Equal(t, int64(17), resp.RatingCount)
	assert.True(t, resp.Bookmarked)

	// Anonymous read: no bookmark lookup.
	resp, err = svc.GetByID(vendor.ID, nil)
	require.NoError(t, err)
	assert.False(t, resp.Bookmarked)
}

func TestVendorGetByID_NotFound(t *testing.T) {
	svc := newVendorService(newFakeVendorRepo())

	_, err := svc.GetByID(99, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
