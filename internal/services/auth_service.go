package services

import (
	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

type AuthService interface {
	RegisterUser(req *dto.RegisterUserRequest) (*dto.LoginResponse, error)
	LoginUser(req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginVendor(req *dto.VendorLoginRequest) (*dto.LoginResponse, error)
	LoginSalesExecutive(req *dto.SalesLoginRequest) (*dto.LoginResponse, error)
	ChangeUserPassword(userID uint, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	adminRepo  repositories.AdminRepository
	vendorRepo repositories.VendorRepository
	salesRepo  repositories.SalesExecutiveRepository
	tokens     *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	vendorRepo repositories.VendorRepository,
	salesRepo repositories.SalesExecutiveRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		vendorRepo: vendorRepo,
		salesRepo:  salesRepo,
		tokens:     tokens,
	}
}

func (s *AuthServiceImpl) RegisterUser(req *dto.RegisterUserRequest) (*dto.LoginResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if _, err := s.userRepo.FindByMobile(req.Mobile); err == nil {
		return nil, apperrors.ErrMobileAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: hash,
		City:         req.City,
		State:        req.State,
	}
	if req.DeviceToken != "" {
		user.DeviceToken = &req.DeviceToken
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateUser) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueFor(user.ID, models.ActorRoleUser, user)
}

func (s *AuthServiceImpl) LoginUser(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Logging in from a device refreshes the stored push token.
	if req.DeviceToken != "" {
		if err := s.userRepo.UpdateDeviceToken(user.ID, req.DeviceToken); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.DeviceToken = &req.DeviceToken
	}

	return s.issueFor(user.ID, models.ActorRoleUser, user)
}

func (s *AuthServiceImpl) LoginAdmin(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Principal{
		ID:        admin.ID,
		Role:      models.ActorRoleAdmin,
		AdminRole: admin.Role,
		Section:   admin.AllottedSection,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Role:  string(models.ActorRoleAdmin),
		Actor: admin,
	}, nil
}

func (s *AuthServiceImpl) LoginVendor(req *dto.VendorLoginRequest) (*dto.LoginResponse, error) {
	vendor, err := s.vendorRepo.FindByContactNumber(req.ContactNumber)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(vendor.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueFor(vendor.ID, models.ActorRoleVendor, vendor)
}

func (s *AuthServiceImpl) LoginSalesExecutive(req *dto.SalesLoginRequest) (*dto.LoginResponse, error) {
	executive, err := s.salesRepo.FindByContactNumber(req.ContactNumber)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSalesExecutiveNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(executive.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !executive.Verified {
		return nil, apperrors.NewForbiddenError("Account is pending verification")
	}

	return s.issueFor(executive.ID, models.ActorRoleSales, executive)
}

func (s *AuthServiceImpl) ChangeUserPassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueFor(id uint, role models.ActorRole, actor interface{}) (*dto.LoginResponse, error) {
	token, err := s.tokens.Issue(auth.Principal{ID: id, Role: role})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LoginResponse{
		Token: token,
		Role:  string(role),
		Actor: actor,
	}, nil
}
