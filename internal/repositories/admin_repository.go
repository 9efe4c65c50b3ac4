package repositories

import (
	"errors"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAdminNotFound       = errors.New("admin not found")
	ErrDuplicateAdminEmail = errors.New("admin email already registered")
)

// DashboardCounts is the admin home-screen summary.
type DashboardCounts struct {
	Users           int64 `json:"users"`
	Vendors         int64 `json:"vendors"`
	PendingVendors  int64 `json:"pending_vendors"`
	SalesExecutives int64 `json:"sales_executives"`
	Notifications   int64 `json:"notifications"`
}

type AdminRepository interface {
	Create(admin *models.Admin) error
	FindByID(id uint) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	FindSubAdmins() ([]models.Admin, error)
	Update(admin *models.Admin) error
	Delete(id uint) error
	CountByRole(role models.AdminRole) (int64, error)
	DashboardCounts() (*DashboardCounts, error)
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	err := r.db.Create(admin).Error
	if err != nil && isDuplicateKeyError(err) {
		return ErrDuplicateAdminEmail
	}
	return err
}

func (r *AdminRepositoryImpl) FindByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindSubAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Where("role = ?", models.AdminRoleSub).
		Order("created_at DESC, id DESC").
		Find(&admins).Error
	return admins, err
}

func (r *AdminRepositoryImpl) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

func (r *AdminRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("role = ?", models.AdminRoleSub).
		Delete(&models.Admin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryImpl) CountByRole(role models.AdminRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *AdminRepositoryImpl) DashboardCounts() (*DashboardCounts, error) {
	var counts DashboardCounts
	if err := r.db.Model(&models.User{}).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Vendor{}).Count(&counts.Vendors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Vendor{}).Where("verified = ?", false).Count(&counts.PendingVendors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SalesExecutive{}).Count(&counts.SalesExecutives).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Notification{}).Count(&counts.Notifications).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}
