package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
)

// RatingSummary is the aggregate a vendor card shows.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type RatingRepository interface {
	// Upsert writes the user's rating for the vendor, replacing any
	// earlier one. One row per (user, vendor) pair.
	Upsert(rating *models.VendorRating) error
	FindByUserAndVendor(userID, vendorID uint) (*models.VendorRating, error)
	ListByVendor(vendorID uint) ([]models.VendorRating, error)
	SummaryByVendor(vendorID uint) (*RatingSummary, error)
	Delete(userID, vendorID uint) error
}

type RatingRepositoryImpl struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &RatingRepositoryImpl{db: db}
}

func (r *RatingRepositoryImpl) Upsert(rating *models.VendorRating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "vendor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
	}).Create(rating).Error
}

func (r *RatingRepositoryImpl) FindByUserAndVendor(userID, vendorID uint) (*models.VendorRating, error) {
	var rating models.VendorRating
	err := r.db.First(&rating, "user_id = ? AND vendor_id = ?", userID, vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) ListByVendor(vendorID uint) ([]models.VendorRating, error) {
	var ratings []models.VendorRating
	err := r.db.Where("vendor_id = ?", vendorID).
		Preload("User").
		Order("updated_at DESC, id DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) SummaryByVendor(vendorID uint) (*RatingSummary, error) {
	var summary RatingSummary
	err := r.db.Model(&models.VendorRating{}).
		Select("COALESCE(AVG(rating), 0) AS average", "COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *RatingRepositoryImpl) Delete(userID, vendorID uint) error {
	result := r.db.Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Delete(&models.VendorRating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}
