package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("email or mobile already registered")
)

// Recipient is the projection the fan-out needs: a user id and its optional
// device token.
type Recipient struct {
	ID          uint
	DeviceToken *string
}

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByMobile(mobile string) (*models.User, error)
	Update(user *models.User) error
	UpdateDeviceToken(userID uint, token string) error
	FindAll() ([]models.User, error)
	Count() (int64, error)

	// SnapshotRecipients reads the id and device token of every user. The
	// fan-out transaction calls this so the snapshot happens inside the
	// transaction boundary.
	SnapshotRecipients(tx *gorm.DB) ([]Recipient, error)

	// TokenHolders returns the device tokens of all users that currently
	// have one. Used by edit-and-redispatch, which works off a fresh read.
	TokenHolders() ([]string, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil && isDuplicateKeyError(err) {
		// The service pre-checks email and mobile, but two concurrent
		// registrations can both pass; the unique indexes decide.
		return ErrDuplicateUser
	}
	return err
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByMobile(mobile string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "mobile = ?", mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateDeviceToken(userID uint, token string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("device_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// A repeat login from the same device writes the token it
		// already holds, which mysql counts as zero affected rows.
		missing, err := rowMissing(r.db, &models.User{}, userID)
		if err != nil {
			return err
		}
		if missing {
			return ErrUserNotFound
		}
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC, id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) SnapshotRecipients(tx *gorm.DB) ([]Recipient, error) {
	if tx == nil {
		tx = r.db
	}
	var recipients []Recipient
	err := tx.Model(&models.User{}).
		Select("id", "device_token").
		Order("id ASC").
		Scan(&recipients).Error
	return recipients, err
}

func (r *UserRepositoryImpl) TokenHolders() ([]string, error) {
	var tokens []string
	err := r.db.Model(&models.User{}).
		Where("device_token IS NOT NULL AND device_token <> ''").
		Pluck("device_token", &tokens).Error
	return tokens, err
}
