package repositories

import (
	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

type StateCityRepository interface {
	ListStates() ([]string, error)
	ListCitiesByState(state string) ([]string, error)
	Create(entry *models.StateCity) error
}

type StateCityRepositoryImpl struct {
	db *gorm.DB
}

func NewStateCityRepository(db *gorm.DB) StateCityRepository {
	return &StateCityRepositoryImpl{db: db}
}

func (r *StateCityRepositoryImpl) ListStates() ([]string, error) {
	var states []string
	err := r.db.Model(&models.StateCity{}).
		Distinct("state").
		Order("state ASC").
		Pluck("state", &states).Error
	return states, err
}

func (r *StateCityRepositoryImpl) ListCitiesByState(state string) ([]string, error) {
	var cities []string
	err := r.db.Model(&models.StateCity{}).
		Where("state = ?", state).
		Order("city ASC").
		Pluck("city", &cities).Error
	return cities, err
}

func (r *StateCityRepositoryImpl) Create(entry *models.StateCity) error {
	return r.db.Create(entry).Error
}
