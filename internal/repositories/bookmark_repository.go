package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

type BookmarkRepository interface {
	// Add stores the bookmark if it does not already exist. Re-adding an
	// existing pair succeeds without creating a second row.
	Add(userID, vendorID uint) error
	Remove(userID, vendorID uint) error
	Exists(userID, vendorID uint) (bool, error)
	ListByUser(userID uint) ([]models.Vendor, error)
}

type BookmarkRepositoryImpl struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &BookmarkRepositoryImpl{db: db}
}

func (r *BookmarkRepositoryImpl) Add(userID, vendorID uint) error {
	bookmark := models.Bookmark{UserID: userID, VendorID: vendorID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark).Error
}

func (r *BookmarkRepositoryImpl) Remove(userID, vendorID uint) error {
	result := r.db.Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *BookmarkRepositoryImpl) Exists(userID, vendorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Count(&count).Error
	return count > 0, err
}

func (r *BookmarkRepositoryImpl) ListByUser(userID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.
		Joins("JOIN bookmarks ON bookmarks.vendor_id = vendors.id").
		Where("bookmarks.user_id = ?", userID).
		Preload("Category").
		Preload("Subcategory").
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Find(&vendors).Error
	return vendors, err
}
