package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSalesExecutiveNotFound = errors.New("sales executive not found")
)

type SalesExecutiveRepository interface {
	Create(executive *models.SalesExecutive) error
	FindByID(id uint) (*models.SalesExecutive, error)
	FindByContactNumber(contactNumber string) (*models.SalesExecutive, error)
	FindAll() ([]models.SalesExecutive, error)
	Update(executive *models.SalesExecutive) error
	SetVerified(id uint, verified bool) error
	Delete(id uint) error
	Count() (int64, error)
}

type SalesExecutiveRepositoryImpl struct {
	db *gorm.DB
}

func NewSalesExecutiveRepository(db *gorm.DB) SalesExecutiveRepository {
	return &SalesExecutiveRepositoryImpl{db: db}
}

func (r *SalesExecutiveRepositoryImpl) Create(executive *models.SalesExecutive) error {
	err := r.db.Create(executive).Error
	if err != nil && isDuplicateKeyError(err) {
		return ErrDuplicateContact
	}
	return err
}

func (r *SalesExecutiveRepositoryImpl) FindByID(id uint) (*models.SalesExecutive, error) {
	var executive models.SalesExecutive
	err := r.db.First(&executive, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalesExecutiveNotFound
		}
		return nil, err
	}
	return &executive, nil
}

func (r *SalesExecutiveRepositoryImpl) FindByContactNumber(contactNumber string) (*models.SalesExecutive, error) {
	var executive models.SalesExecutive
	err := r.db.First(&executive, "contact_number = ?", contactNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalesExecutiveNotFound
		}
		return nil, err
	}
	return &executive, nil
}

func (r *SalesExecutiveRepositoryImpl) FindAll() ([]models.SalesExecutive, error) {
	var executives []models.SalesExecutive
	err := r.db.Order("created_at DESC, id DESC").Find(&executives).Error
	return executives, err
}

func (r *SalesExecutiveRepositoryImpl) Update(executive *models.SalesExecutive) error {
	return r.db.Save(executive).Error
}

func (r *SalesExecutiveRepositoryImpl) SetVerified(id uint, verified bool) error {
	result := r.db.Model(&models.SalesExecutive{}).
		Where("id = ?", id).
		Update("verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Re-verifying an already verified executive affects no rows on
		// mysql.
		missing, err := rowMissing(r.db, &models.SalesExecutive{}, id)
		if err != nil {
			return err
		}
		if missing {
			return ErrSalesExecutiveNotFound
		}
	}
	return nil
}

func (r *SalesExecutiveRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.SalesExecutive{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSalesExecutiveNotFound
	}
	return nil
}

func (r *SalesExecutiveRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SalesExecutive{}).Count(&count).Error
	return count, err
}
