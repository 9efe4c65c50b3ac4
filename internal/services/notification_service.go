package services

import (
	"context"
	"net/http"
	"strings"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/logger"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/push"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/internal/storage"
	"cityinbox_backend/pkg/apperrors"
)

// defaultMarkSeenLimit bounds one mark-seen call when the client does
// not send its own limit.
const defaultMarkSeenLimit = 10

type NotificationService interface {
	// CreateAndFanOut stores the broadcast, snapshots every current user
	// into a delivery row, and then pushes to token holders in the
	// background. The HTTP response does not wait for the push round.
	CreateAndFanOut(req *dto.CreateNotificationRequest) (*models.Notification, error)

	// EditAndRedispatch updates the broadcast in place, re-reads the
	// current token holders, and pushes synchronously, reporting the
	// per-token outcome.
	EditAndRedispatch(id uint, req *dto.UpdateNotificationRequest) (*dto.DispatchSummary, error)

	ListAll() ([]models.Notification, error)
	Delete(id uint) error

	FeedForUser(userID uint) (*dto.NotificationFeedResponse, error)
	UnseenCount(userID uint) (int64, error)
	MarkSeen(userID uint, limit int) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	dispatcher       *push.Dispatcher
	store            storage.Storage
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	dispatcher *push.Dispatcher,
	store storage.Storage,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		dispatcher:       dispatcher,
		store:            store,
	}
}

// pushImageURL resolves the stored image path into the public URL a
// device can actually fetch. FCM drops relative paths, so the payload
// must carry the full address. Values the admin already submitted as a
// URL pass through untouched.
func (s *NotificationServiceImpl) pushImageURL(image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	url, err := s.store.GetURL(context.Background(), image)
	if err != nil {
		logger.Warn("push image url lookup failed", "image", image, "error", err.Error())
		return ""
	}
	return url
}

func (s *NotificationServiceImpl) CreateAndFanOut(req *dto.CreateNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		Title:   req.Title,
		Message: req.Message,
		Image:   req.Image,
	}

	recipients, err := s.notificationRepo.CreateWithFanOut(notification, s.userRepo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Push only after the transaction committed, and off the request
	// goroutine. Recipients without a token are skipped.
	tokens := make([]string, 0, len(recipients))
	for _, rec := range recipients {
		if rec.DeviceToken != nil && *rec.DeviceToken != "" {
			tokens = append(tokens, *rec.DeviceToken)
		}
	}
	if len(tokens) > 0 {
		s.dispatcher.DispatchAsync(tokens, push.Message{
			Title: notification.Title,
			Body:  notification.Message,
			Image: s.pushImageURL(notification.Image),
		})
	}

	return notification, nil
}

func (s *NotificationServiceImpl) EditAndRedispatch(id uint, req *dto.UpdateNotificationRequest) (*dto.DispatchSummary, error) {
	notification := &models.Notification{
		Title:   req.Title,
		Message: req.Message,
		Image:   req.Image,
	}
	notification.ID = id

	if err := s.notificationRepo.Update(notification); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Edits re-read the token list instead of reusing the creation
	// snapshot, so devices registered since then are included.
	tokens, err := s.userRepo.TokenHolders()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := s.dispatcher.Dispatch(context.Background(), tokens, push.Message{
		Title: notification.Title,
		Body:  notification.Message,
		Image: s.pushImageURL(notification.Image),
	})

	return &dto.DispatchSummary{
		Recipients: len(tokens),
		Sent:       result.Sent,
		Failed:     result.Failed,
		Skipped:    result.Skipped,
	}, nil
}

func (s *NotificationServiceImpl) ListAll() ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) Delete(id uint) error {
	if err := s.notificationRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) FeedForUser(userID uint) (*dto.NotificationFeedResponse, error) {
	views, err := s.notificationRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unseen, err := s.notificationRepo.UnseenCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.NotificationFeedResponse{
		Notifications: views,
		UnseenCount:   unseen,
	}, nil
}

func (s *NotificationServiceImpl) UnseenCount(userID uint) (int64, error) {
	count, err := s.notificationRepo.UnseenCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) MarkSeen(userID uint, limit int) (int64, error) {
	if limit <= 0 {
		limit = defaultMarkSeenLimit
	}
	marked, err := s.notificationRepo.MarkSeenBatch(userID, limit)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if marked == 0 {
		return 0, apperrors.New(apperrors.CodeNotFound, "notification", "No unseen notifications", http.StatusNotFound)
	}
	return marked, nil
}
