package services

import (
	"time"

	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type VendorService interface {
	// Create registers a vendor. origin records which path created it;
	// salesExecutiveID is set only for the sales path.
	Create(req *dto.CreateVendorRequest, origin models.VendorOrigin, salesExecutiveID *uint) (*models.Vendor, error)

	Search(req *dto.VendorSearchRequest, publicRead bool) ([]models.Vendor, error)
	GetByID(id uint, viewerUserID *uint) (*dto.VendorResponse, error)

	// UpdatePublic is the vendor-facing profile edit: it resets the
	// verified flag and appends new images after the existing ones.
	UpdatePublic(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error)

	// UpdateAdmin edits from the dashboard without touching verification.
	UpdateAdmin(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error)

	SetVerified(vendorID uint, verified bool) error
	Delete(vendorID uint) error
}

type VendorServiceImpl struct {
	vendorRepo   repositories.VendorRepository
	ratingRepo   repositories.RatingRepository
	bookmarkRepo repositories.BookmarkRepository
}

func NewVendorService(
	vendorRepo repositories.VendorRepository,
	ratingRepo repositories.RatingRepository,
	bookmarkRepo repositories.BookmarkRepository,
) VendorService {
	return &VendorServiceImpl{
		vendorRepo:   vendorRepo,
		ratingRepo:   ratingRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *VendorServiceImpl) Create(req *dto.CreateVendorRequest, origin models.VendorOrigin, salesExecutiveID *uint) (*models.Vendor, error) {
	taken, err := s.vendorRepo.ContactNumberTaken(req.ContactNumber, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrContactNumberTaken
	}

	vendor := &models.Vendor{
		ShopName:         req.ShopName,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ContactNumber:    req.ContactNumber,
		Facilities:       req.Facilities,
		CategoryID:       req.CategoryID,
		SubcategoryID:    req.SubcategoryID,
		CreatedBy:        origin,
		SalesExecutiveID: salesExecutiveID,
		Images:           datatypes.NewJSONSlice(req.Images),
	}

	// Admin-created vendors go live immediately; the other paths wait
	// for verification.
	vendor.Verified = origin == models.VendorOriginAdmin

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		vendor.PasswordHash = hash
	}

	if err := s.vendorRepo.Create(vendor); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateContact) {
			return nil, apperrors.ErrContactNumberTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return vendor, nil
}

func (s *VendorServiceImpl) Search(req *dto.VendorSearchRequest, publicRead bool) ([]models.Vendor, error) {
	filter := repositories.VendorFilter{
		Origin:        models.VendorOrigin(req.Source),
		Search:        req.Search,
		SalesID:       req.SalesID,
		City:          req.City,
		State:         req.State,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		VerifiedOnly:  req.VerifiedOnly || publicRead,
	}

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"date_from": "Must be a date in YYYY-MM-DD format"})
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"date_to": "Must be a date in YYYY-MM-DD format"})
		}
		// Inclusive upper bound: cover the whole day.
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	vendors, err := s.vendorRepo.Search(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vendors, nil
}

func (s *VendorServiceImpl) GetByID(id uint, viewerUserID *uint) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDWithRelations(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	summary, err := s.ratingRepo.SummaryByVendor(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.VendorResponse{
		Vendor:        vendor,
		RatingAverage: summary.Average,
		RatingCount:   summary.Count,
	}

	if viewerUserID != nil {
		bookmarked, err := s.bookmarkRepo.Exists(*viewerUserID, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Bookmarked = bookmarked
	}

	return resp, nil
}

func (s *VendorServiceImpl) UpdatePublic(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.applyUpdate(vendorID, req)
	if err != nil {
		return nil, err
	}

	// A public edit puts the listing back in the review queue.
	vendor.Verified = false
	// Images append after what is already stored; existing order stays.
	vendor.Images = append(vendor.Images, req.Images...)

	if err := s.vendorRepo.Update(vendor); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateContact) {
			return nil, apperrors.ErrContactNumberTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return vendor, nil
}

func (s *VendorServiceImpl) UpdateAdmin(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.applyUpdate(vendorID, req)
	if err != nil {
		return nil, err
	}

	if len(req.Images) > 0 {
		vendor.Images = datatypes.NewJSONSlice(req.Images)
	}

	if err := s.vendorRepo.Update(vendor); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateContact) {
			return nil, apperrors.ErrContactNumberTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return vendor, nil
}

// applyUpdate loads the vendor and copies the non-empty request fields
// onto it, enforcing contact number uniqueness across other vendors.
func (s *VendorServiceImpl) applyUpdate(vendorID uint, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ContactNumber != "" && req.ContactNumber != vendor.ContactNumber {
		taken, err := s.vendorRepo.ContactNumberTaken(req.ContactNumber, vendorID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrContactNumberTaken
		}
		vendor.ContactNumber = req.ContactNumber
	}

	if req.ShopName != "" {
		vendor.ShopName = req.ShopName
	}
	if req.Address != "" {
		vendor.Address = req.Address
	}
	if req.City != "" {
		vendor.City = req.City
	}
	if req.State != "" {
		vendor.State = req.State
	}
	if req.Facilities != "" {
		vendor.Facilities = req.Facilities
	}
	if req.CategoryID != nil {
		vendor.CategoryID = req.CategoryID
	}
	if req.SubcategoryID != nil {
		vendor.SubcategoryID = req.SubcategoryID
	}

	return vendor, nil
}

func (s *VendorServiceImpl) SetVerified(vendorID uint, verified bool) error {
	if err := s.vendorRepo.SetVerified(vendorID, verified); err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VendorServiceImpl) Delete(vendorID uint) error {
	if err := s.vendorRepo.Delete(vendorID); err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
