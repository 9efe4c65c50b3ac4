package services

import (
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

// BookmarkService manages a user's saved vendors. Adding the same
// vendor twice is a no-op.
type BookmarkService interface {
	Add(userID, vendorID uint) error
	Remove(userID, vendorID uint) error
	List(userID uint) ([]models.Vendor, error)
}

type BookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
	vendorRepo   repositories.VendorRepository
}

func NewBookmarkService(
	bookmarkRepo repositories.BookmarkRepository,
	vendorRepo repositories.VendorRepository,
) BookmarkService {
	return &BookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
		vendorRepo:   vendorRepo,
	}
}

func (s *BookmarkServiceImpl) Add(userID, vendorID uint) error {
	if _, err := s.vendorRepo.FindByID(vendorID); err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.bookmarkRepo.Add(userID, vendorID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BookmarkServiceImpl) Remove(userID, vendorID uint) error {
	if err := s.bookmarkRepo.Remove(userID, vendorID); err != nil {
		if apperrors.Is(err, repositories.ErrBookmarkNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BookmarkServiceImpl) List(userID uint) ([]models.Vendor, error) {
	vendors, err := s.bookmarkRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vendors, nil
}

// RatingService manages per-user vendor ratings. A user has at most one
// rating per vendor; rating again replaces it.
type RatingService interface {
	Rate(userID uint, req *dto.RateVendorRequest) (*models.VendorRating, error)
	ListForVendor(vendorID uint) ([]models.VendorRating, error)
	Summary(vendorID uint) (*repositories.RatingSummary, error)
	Delete(userID, vendorID uint) error
}

type RatingServiceImpl struct {
	ratingRepo repositories.RatingRepository
	vendorRepo repositories.VendorRepository
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	vendorRepo repositories.VendorRepository,
) RatingService {
	return &RatingServiceImpl{
		ratingRepo: ratingRepo,
		vendorRepo: vendorRepo,
	}
}

func (s *RatingServiceImpl) Rate(userID uint, req *dto.RateVendorRequest) (*models.VendorRating, error) {
	if _, err := s.vendorRepo.FindByID(req.VendorID); err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	rating := &models.VendorRating{
		UserID:   userID,
		VendorID: req.VendorID,
		Rating:   req.Rating,
		Review:   req.Review,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

func (s *RatingServiceImpl) ListForVendor(vendorID uint) ([]models.VendorRating, error) {
	ratings, err := s.ratingRepo.ListByVendor(vendorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ratings, nil
}

func (s *RatingServiceImpl) Summary(vendorID uint) (*repositories.RatingSummary, error) {
	summary, err := s.ratingRepo.SummaryByVendor(vendorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return summary, nil
}

func (s *RatingServiceImpl) Delete(userID, vendorID uint) error {
	if err := s.ratingRepo.Delete(userID, vendorID); err != nil {
		if apperrors.Is(err, repositories.ErrRatingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
