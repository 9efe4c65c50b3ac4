package repositories

import (
	"errors"
	"strings"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPageContentNotFound = errors.New("page content not found")
	ErrSliderNotFound      = errors.New("slider not found")
	ErrFeedbackNotFound    = errors.New("feedback not found")
)

// FeedbackFilter narrows the admin feedback listing.
type FeedbackFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type ContentRepository interface {
	UpsertPage(page *models.PageContent) error
	FindPageByKey(key string) (*models.PageContent, error)
	ListPages() ([]models.PageContent, error)

	CreateSlider(slider *models.Slider) error
	FindSliderByID(id uint) (*models.Slider, error)
	ListSliders() ([]models.Slider, error)
	UpdateSlider(id uint, imagePath string) error
	DeleteSlider(id uint) error

	CreateFeedback(feedback *models.Feedback) error
	FindFeedbackByID(id uint) (*models.Feedback, error)
	ListFeedback(filter FeedbackFilter) ([]models.Feedback, int64, error)
	UpdateFeedbackStatus(id uint, status string, reply string) error
}

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) UpsertPage(page *models.PageContent) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "updated_at"}),
	}).Create(page).Error
}

func (r *ContentRepositoryImpl) FindPageByKey(key string) (*models.PageContent, error) {
	var page models.PageContent
	err := r.db.First(&page, "`key` = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageContentNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *ContentRepositoryImpl) ListPages() ([]models.PageContent, error) {
	var pages []models.PageContent
	err := r.db.Order("`key` ASC").Find(&pages).Error
	return pages, err
}

func (r *ContentRepositoryImpl) CreateSlider(slider *models.Slider) error {
	return r.db.Create(slider).Error
}

func (r *ContentRepositoryImpl) FindSliderByID(id uint) (*models.Slider, error) {
	var slider models.Slider
	err := r.db.First(&slider, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSliderNotFound
		}
		return nil, err
	}
	return &slider, nil
}

func (r *ContentRepositoryImpl) ListSliders() ([]models.Slider, error) {
	var sliders []models.Slider
	err := r.db.Order("created_at DESC, id DESC").Find(&sliders).Error
	return sliders, err
}

func (r *ContentRepositoryImpl) UpdateSlider(id uint, imagePath string) error {
	result := r.db.Model(&models.Slider{}).Where("id = ?", id).Update("image_path", imagePath)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Re-saving the same image affects no rows on mysql.
		missing, err := rowMissing(r.db, &models.Slider{}, id)
		if err != nil {
			return err
		}
		if missing {
			return ErrSliderNotFound
		}
	}
	return nil
}

func (r *ContentRepositoryImpl) DeleteSlider(id uint) error {
	result := r.db.Delete(&models.Slider{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSliderNotFound
	}
	return nil
}

func (r *ContentRepositoryImpl) CreateFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *ContentRepositoryImpl) FindFeedbackByID(id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *ContentRepositoryImpl) ListFeedback(filter FeedbackFilter) ([]models.Feedback, int64, error) {
	query := r.db.Model(&models.Feedback{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			r.db.Where("LOWER(name) LIKE ?", pattern).
				Or("LOWER(email) LIKE ?", pattern).
				Or("LOWER(message) LIKE ?", pattern),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var feedback []models.Feedback
	err := query.Order("created_at DESC, id DESC").Find(&feedback).Error
	return feedback, total, err
}

func (r *ContentRepositoryImpl) UpdateFeedbackStatus(id uint, status string, reply string) error {
	updates := map[string]interface{}{"status": status}
	if reply != "" {
		updates["reply"] = reply
	}
	result := r.db.Model(&models.Feedback{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Re-applying the current status affects no rows on mysql.
		missing, err := rowMissing(r.db, &models.Feedback{}, id)
		if err != nil {
			return err
		}
		if missing {
			return ErrFeedbackNotFound
		}
	}
	return nil
}
