package services

import (
	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

type AdminService interface {
	CreateSubAdmin(req *dto.CreateSubAdminRequest) (*models.Admin, error)
	ListSubAdmins() ([]models.Admin, error)
	UpdateSubAdmin(id uint, req *dto.UpdateSubAdminRequest) (*models.Admin, error)
	DeleteSubAdmin(id uint) error
	DashboardCounts() (*repositories.DashboardCounts, error)
}

type AdminServiceImpl struct {
	adminRepo repositories.AdminRepository
}

func NewAdminService(adminRepo repositories.AdminRepository) AdminService {
	return &AdminServiceImpl{adminRepo: adminRepo}
}

func (s *AdminServiceImpl) CreateSubAdmin(req *dto.CreateSubAdminRequest) (*models.Admin, error) {
	if _, err := s.adminRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.Admin{
		Role:            models.AdminRoleSub,
		Name:            req.Name,
		Email:           req.Email,
		Mobile:          req.Mobile,
		PasswordHash:    hash,
		AllottedSection: req.AllottedSection,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateAdminEmail) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return admin, nil
}

func (s *AdminServiceImpl) ListSubAdmins() ([]models.Admin, error) {
	admins, err := s.adminRepo.FindSubAdmins()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return admins, nil
}

func (s *AdminServiceImpl) UpdateSubAdmin(id uint, req *dto.UpdateSubAdminRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if admin.Role != models.AdminRoleSub {
		return nil, apperrors.NewForbiddenError("Only sub admin accounts can be edited")
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.Mobile != "" {
		admin.Mobile = req.Mobile
	}
	if req.AllottedSection != "" {
		admin.AllottedSection = req.AllottedSection
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		admin.PasswordHash = hash
	}

	if err := s.adminRepo.Update(admin); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return admin, nil
}

func (s *AdminServiceImpl) DeleteSubAdmin(id uint) error {
	if err := s.adminRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DashboardCounts() (*repositories.DashboardCounts, error) {
	counts, err := s.adminRepo.DashboardCounts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return counts, nil
}
