package services

import (
	"fmt"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/email"
	"cityinbox_backend/internal/logger"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

// ContentService covers editable page content, home sliders, and the
// help desk feedback flow.
type ContentService interface {
	UpsertPage(req *dto.UpsertPageRequest) (*models.PageContent, error)
	GetPage(key string) (*models.PageContent, error)
	GetOrCreatePage(key string) (*models.PageContent, error)
	ListPages() ([]models.PageContent, error)

	AddSlider(imagePath string) (*models.Slider, error)
	ListSliders() ([]models.Slider, error)
	UpdateSlider(id uint, imagePath string) (*models.Slider, error)
	DeleteSlider(id uint) error

	SubmitFeedback(req *dto.SubmitFeedbackRequest, userID *uint) (*models.Feedback, error)
	ListFeedback(req *dto.FeedbackListRequest) ([]models.Feedback, int64, error)
	UpdateFeedback(id uint, req *dto.UpdateFeedbackRequest) error
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
	mailer      email.Provider
	adminEmail  string
}

func NewContentService(
	contentRepo repositories.ContentRepository,
	mailer email.Provider,
	adminEmail string,
) ContentService {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		mailer:      mailer,
		adminEmail:  adminEmail,
	}
}

func (s *ContentServiceImpl) UpsertPage(req *dto.UpsertPageRequest) (*models.PageContent, error) {
	page := &models.PageContent{
		Key:     req.Key,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.contentRepo.UpsertPage(page); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

func (s *ContentServiceImpl) GetPage(key string) (*models.PageContent, error) {
	page, err := s.contentRepo.FindPageByKey(key)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPageContentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

// GetOrCreatePage is the admin editor read: opening a key that has never
// been saved creates an empty page row for it.
func (s *ContentServiceImpl) GetOrCreatePage(key string) (*models.PageContent, error) {
	page, err := s.contentRepo.FindPageByKey(key)
	if err == nil {
		return page, nil
	}
	if !apperrors.Is(err, repositories.ErrPageContentNotFound) {
		return nil, apperrors.InternalError(err)
	}

	page = &models.PageContent{Key: key}
	if err := s.contentRepo.UpsertPage(page); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

func (s *ContentServiceImpl) ListPages() ([]models.PageContent, error) {
	pages, err := s.contentRepo.ListPages()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pages, nil
}

func (s *ContentServiceImpl) AddSlider(imagePath string) (*models.Slider, error) {
	if imagePath == "" {
		return nil, apperrors.NewBadRequestError("Slider image is required")
	}
	slider := &models.Slider{ImagePath: imagePath}
	if err := s.contentRepo.CreateSlider(slider); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slider, nil
}

func (s *ContentServiceImpl) ListSliders() ([]models.Slider, error) {
	sliders, err := s.contentRepo.ListSliders()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sliders, nil
}

func (s *ContentServiceImpl) UpdateSlider(id uint, imagePath string) (*models.Slider, error) {
	if imagePath == "" {
		return nil, apperrors.NewBadRequestError("Slider image is required")
	}
	if err := s.contentRepo.UpdateSlider(id, imagePath); err != nil {
		if apperrors.Is(err, repositories.ErrSliderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	slider, err := s.contentRepo.FindSliderByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slider, nil
}

func (s *ContentServiceImpl) DeleteSlider(id uint) error {
	if err := s.contentRepo.DeleteSlider(id); err != nil {
		if apperrors.Is(err, repositories.ErrSliderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContentServiceImpl) SubmitFeedback(req *dto.SubmitFeedbackRequest, userID *uint) (*models.Feedback, error) {
	feedback := &models.Feedback{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.FeedbackStatusNew,
	}
	if err := s.contentRepo.CreateFeedback(feedback); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The admin alert is best effort; the submission is already stored.
	if s.adminEmail != "" {
		go s.notifyAdmin(feedback)
	}

	return feedback, nil
}

func (s *ContentServiceImpl) notifyAdmin(feedback *models.Feedback) {
	err := s.mailer.Send(&email.Message{
		To:      []string{s.adminEmail},
		Subject: fmt.Sprintf("New feedback: %s", feedback.Subject),
		Body: fmt.Sprintf("From: %s <%s>\n\n%s",
			feedback.Name, feedback.Email, feedback.Message),
	})
	if err != nil {
		logger.Warn("feedback admin alert failed", "feedback_id", feedback.ID, "error", err.Error())
	}
}

func (s *ContentServiceImpl) ListFeedback(req *dto.FeedbackListRequest) ([]models.Feedback, int64, error) {
	feedback, total, err := s.contentRepo.ListFeedback(repositories.FeedbackFilter{
		Status: req.Status,
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return feedback, total, nil
}

func (s *ContentServiceImpl) UpdateFeedback(id uint, req *dto.UpdateFeedbackRequest) error {
	feedback, err := s.contentRepo.FindFeedbackByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.contentRepo.UpdateFeedbackStatus(id, req.Status, req.Reply); err != nil {
		return apperrors.InternalError(err)
	}

	// Replying mails the submitter back.
	if req.Reply != "" && feedback.Email != "" {
		go func() {
			err := s.mailer.Send(&email.Message{
				To:      []string{feedback.Email},
				Subject: fmt.Sprintf("Re: %s", feedback.Subject),
				Body:    req.Reply,
			})
			if err != nil {
				logger.Warn("feedback reply mail failed", "feedback_id", id, "error", err.Error())
			}
		}()
	}

	return nil
}
