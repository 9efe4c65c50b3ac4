package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id uint) (*models.Category, error)
	FindAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error

	CreateSubcategory(subcategory *models.Subcategory) error
	FindSubcategoryByID(id uint) (*models.Subcategory, error)
	FindSubcategoriesByCategory(categoryID uint) ([]models.Subcategory, error)
	FindAllSubcategories() ([]models.Subcategory, error)
	UpdateSubcategory(subcategory *models.Subcategory) error
	DeleteSubcategory(id uint) error
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	// Explicitly ordered categories first, then the unordered tail by name.
	err := r.db.Order("sort_order = 0 ASC, sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(category *models.Category) error {
	result := r.db.Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"image":      category.Image,
			"sort_order": category.SortOrder,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// A save with nothing changed affects no rows on mysql.
		missing, err := rowMissing(r.db, &models.Category{}, category.ID)
		if err != nil {
			return err
		}
		if missing {
			return ErrCategoryNotFound
		}
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

func (r *CategoryRepositoryImpl) CreateSubcategory(subcategory *models.Subcategory) error {
	return r.db.Create(subcategory).Error
}

func (r *CategoryRepositoryImpl) FindSubcategoryByID(id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *CategoryRepositoryImpl) FindSubcategoriesByCategory(categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error
	return subcategories, err
}

func (r *CategoryRepositoryImpl) FindAllSubcategories() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.Preload("Category").Order("name ASC").Find(&subcategories).Error
	return subcategories, err
}

func (r *CategoryRepositoryImpl) UpdateSubcategory(subcategory *models.Subcategory) error {
	result := r.db.Model(&models.Subcategory{}).
		Where("id = ?", subcategory.ID).
		Updates(map[string]interface{}{
			"category_id": subcategory.CategoryID,
			"name":        subcategory.Name,
			"image":       subcategory.Image,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		missing, err := rowMissing(r.db, &models.Subcategory{}, subcategory.ID)
		if err != nil {
			return err
		}
		if missing {
			return ErrSubcategoryNotFound
		}
	}
	return nil
}

func (r *CategoryRepositoryImpl) DeleteSubcategory(id uint) error {
	result := r.db.Delete(&models.Subcategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}
