package services

import (
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

// CatalogService covers the lookup data the app browses by: categories,
// subcategories, and the state/city reference list.
type CatalogService interface {
	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req *dto.UpdateCategoryRequest) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	DeleteCategory(id uint) error

	CreateSubcategory(req *dto.CreateSubcategoryRequest) (*models.Subcategory, error)
	UpdateSubcategory(id uint, req *dto.UpdateSubcategoryRequest) (*models.Subcategory, error)
	ListSubcategories(categoryID uint) ([]models.Subcategory, error)
	DeleteSubcategory(id uint) error

	ListStates() ([]string, error)
	ListCities(state string) ([]string, error)
}

type CatalogServiceImpl struct {
	categoryRepo  repositories.CategoryRepository
	stateCityRepo repositories.StateCityRepository
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	stateCityRepo repositories.StateCityRepository,
) CatalogService {
	return &CatalogServiceImpl{
		categoryRepo:  categoryRepo,
		stateCityRepo: stateCityRepo,
	}
}

func (s *CatalogServiceImpl) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:      req.Name,
		Image:     req.Image,
		SortOrder: req.SortOrder,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CatalogServiceImpl) UpdateCategory(id uint, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:      req.Name,
		Image:     req.Image,
		SortOrder: req.SortOrder,
	}
	category.ID = id

	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CatalogServiceImpl) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CatalogServiceImpl) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) CreateSubcategory(req *dto.CreateSubcategoryRequest) (*models.Subcategory, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	subcategory := &models.Subcategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Image:      req.Image,
	}
	if err := s.categoryRepo.CreateSubcategory(subcategory); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subcategory, nil
}

func (s *CatalogServiceImpl) UpdateSubcategory(id uint, req *dto.UpdateSubcategoryRequest) (*models.Subcategory, error) {
	subcategory := &models.Subcategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Image:      req.Image,
	}
	subcategory.ID = id

	if err := s.categoryRepo.UpdateSubcategory(subcategory); err != nil {
		if apperrors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return subcategory, nil
}

func (s *CatalogServiceImpl) ListSubcategories(categoryID uint) ([]models.Subcategory, error) {
	if categoryID == 0 {
		subcategories, err := s.categoryRepo.FindAllSubcategories()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return subcategories, nil
	}

	subcategories, err := s.categoryRepo.FindSubcategoriesByCategory(categoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subcategories, nil
}

func (s *CatalogServiceImpl) DeleteSubcategory(id uint) error {
	if err := s.categoryRepo.DeleteSubcategory(id); err != nil {
		if apperrors.Is(err, repositories.ErrSubcategoryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) ListStates() ([]string, error) {
	states, err := s.stateCityRepo.ListStates()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return states, nil
}

func (s *CatalogServiceImpl) ListCities(state string) ([]string, error) {
	cities, err := s.stateCityRepo.ListCitiesByState(state)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cities, nil
}
