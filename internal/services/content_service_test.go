package services

import (
	"errors"
	"testing"

	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentRepo struct {
	repositories.ContentRepository

	sliders map[uint]*models.Slider
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{sliders: map[uint]*models.Slider{}}
}

func (r *fakeContentRepo) CreateSlider(slider *models.Slider) error {
	slider.ID = uint(len(r.sliders) + 1)
	r.sliders[slider.ID] = slider
	return nil
}

func (r *fakeContentRepo) FindSliderByID(id uint) (*models.Slider, error) {
	if s, ok := r.sliders[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrSliderNotFound
}

func (r *fakeContentRepo) UpdateSlider(id uint, imagePath string) error {
	s, ok := r.sliders[id]
	if !ok {
		return repositories.ErrSliderNotFound
	}
	s.ImagePath = imagePath
	return nil
}

func newContentService(repo repositories.ContentRepository) ContentService {
	return NewContentService(repo, nil, "")
}

func TestUpdateSlider_ReplacesImage(t *testing.T) {
	repo := newFakeContentRepo()
	svc := newContentService(repo)

	created, err := svc.AddSlider("sliders/summer.jpg")
	require.NoError(t, err)

	updated, err := svc.UpdateSlider(created.ID, "sliders/monsoon.jpg")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "sliders/monsoon.jpg", updated.ImagePath)
}

func TestUpdateSlider_MissingSlider(t *testing.T) {
	svc := newContentService(newFakeContentRepo())

	_, err := svc.UpdateSlider(42, "sliders/monsoon.jpg")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateSlider_EmptyImageRejected(t *testing.T) {
	svc := newContentService(newFakeContentRepo())

	_, err := svc.UpdateSlider(1, "")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}
