package repositories

import (
	"errors"
	"time"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

const fanOutBatchSize = 500

type NotificationRepository interface {
	// CreateWithFanOut creates the notification and one per-user delivery
	// row for every current user in a single transaction. Either everything
	// commits or nothing does.
	CreateWithFanOut(notification *models.Notification, users UserRepository) ([]Recipient, error)

	FindByID(id uint) (*models.Notification, error)
	FindAll() ([]models.Notification, error)
	Update(notification *models.Notification) error
	Delete(id uint) error

	// ListForUser returns the user's delivery rows joined with the
	// notification payload, newest first.
	ListForUser(userID uint) ([]UserNotificationView, error)
	UnseenCount(userID uint) (int64, error)

	// MarkSeenBatch marks up to limit of the user's oldest unseen
	// deliveries as seen and returns how many rows changed.
	MarkSeenBatch(userID uint, limit int) (int64, error)
}

// UserNotificationView is a delivery row flattened with its notification.
type UserNotificationView struct {
	ID             uint      `json:"id"`
	NotificationID uint      `json:"notification_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Image          string    `json:"image"`
	Seen           bool      `json:"seen"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateWithFanOut(notification *models.Notification, users UserRepository) ([]Recipient, error) {
	var recipients []Recipient

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}

		snapshot, err := users.SnapshotRecipients(tx)
		if err != nil {
			return err
		}
		recipients = snapshot

		if len(recipients) == 0 {
			return nil
		}

		rows := make([]models.UserNotification, 0, len(recipients))
		for _, rec := range recipients {
			rows = append(rows, models.UserNotification{
				UserID:         rec.ID,
				NotificationID: notification.ID,
			})
		}
		return tx.CreateInBatches(rows, fanOutBatchSize).Error
	})
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

func (r *NotificationRepositoryImpl) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindAll() ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) Update(notification *models.Notification) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", notification.ID).
		Updates(map[string]interface{}{
			"title":   notification.Title,
			"message": notification.Message,
			"image":   notification.Image,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// An edit that resubmits identical content affects no rows on
		// mysql; only treat a truly absent row as not found.
		missing, err := rowMissing(r.db, &models.Notification{}, notification.ID)
		if err != nil {
			return err
		}
		if missing {
			return ErrNotificationNotFound
		}
	}
	return nil
}

func (r *NotificationRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&models.UserNotification{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Notification{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (r *NotificationRepositoryImpl) ListForUser(userID uint) ([]UserNotificationView, error) {
	var views []UserNotificationView
	err := r.db.Model(&models.UserNotification{}).
		Select("user_notifications.id", "user_notifications.notification_id",
			"notifications.title", "notifications.message", "notifications.image",
			"user_notifications.seen", "user_notifications.created_at").
		Joins("JOIN notifications ON notifications.id = user_notifications.notification_id").
		Where("user_notifications.user_id = ?", userID).
		Order("user_notifications.created_at DESC, user_notifications.id DESC").
		Scan(&views).Error
	return views, err
}

func (r *NotificationRepositoryImpl) UnseenCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserNotification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkSeenBatch(userID uint, limit int) (int64, error) {
	var ids []uint
	err := r.db.Model(&models.UserNotification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Model(&models.UserNotification{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"seen":    true,
			"seen_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	return result.RowsAffected, result.Error
}
