package services

import (
	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"
)

type SalesExecutiveService interface {
	Register(req *dto.RegisterSalesExecutiveRequest) (*models.SalesExecutive, error)
	GetByID(id uint) (*models.SalesExecutive, error)
	ListAll() ([]models.SalesExecutive, error)
	Update(id uint, req *dto.UpdateSalesExecutiveRequest) (*models.SalesExecutive, error)
	SetVerified(id uint, verified bool) error
	Delete(id uint) error

	// VendorsRegisteredBy lists the vendors a sales executive signed up.
	VendorsRegisteredBy(salesID uint) ([]models.Vendor, error)
}

type SalesExecutiveServiceImpl struct {
	salesRepo  repositories.SalesExecutiveRepository
	vendorRepo repositories.VendorRepository
}

func NewSalesExecutiveService(
	salesRepo repositories.SalesExecutiveRepository,
	vendorRepo repositories.VendorRepository,
) SalesExecutiveService {
	return &SalesExecutiveServiceImpl{
		salesRepo:  salesRepo,
		vendorRepo: vendorRepo,
	}
}

func (s *SalesExecutiveServiceImpl) Register(req *dto.RegisterSalesExecutiveRequest) (*models.SalesExecutive, error) {
	if _, err := s.salesRepo.FindByContactNumber(req.ContactNumber); err == nil {
		return nil, apperrors.ErrMobileAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	executive := &models.SalesExecutive{
		Name:              req.Name,
		ContactNumber:     req.ContactNumber,
		PasswordHash:      hash,
		DocumentTitle:     req.DocumentTitle,
		DocumentFile:      req.DocumentFile,
		BankName:          req.BankName,
		BankAccountName:   req.BankAccountName,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
		BankPassbookImg:   req.BankPassbookImg,
	}

	if err := s.salesRepo.Create(executive); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateContact) {
			return nil, apperrors.ErrMobileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return executive, nil
}

func (s *SalesExecutiveServiceImpl) GetByID(id uint) (*models.SalesExecutive, error) {
	executive, err := s.salesRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSalesExecutiveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return executive, nil
}

func (s *SalesExecutiveServiceImpl) ListAll() ([]models.SalesExecutive, error) {
	executives, err := s.salesRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return executives, nil
}

func (s *SalesExecutiveServiceImpl) Update(id uint, req *dto.UpdateSalesExecutiveRequest) (*models.SalesExecutive, error) {
	executive, err := s.salesRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSalesExecutiveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		executive.Name = req.Name
	}
	if req.DocumentTitle != "" {
		executive.DocumentTitle = req.DocumentTitle
	}
	if req.DocumentFile != "" {
		executive.DocumentFile = req.DocumentFile
	}
	if req.BankName != "" {
		executive.BankName = req.BankName
	}
	if req.BankAccountName != "" {
		executive.BankAccountName = req.BankAccountName
	}
	if req.BankAccountNumber != "" {
		executive.BankAccountNumber = req.BankAccountNumber
	}
	if req.BankIFSC != "" {
		executive.BankIFSC = req.BankIFSC
	}
	if req.BankPassbookImg != "" {
		executive.BankPassbookImg = req.BankPassbookImg
	}

	if err := s.salesRepo.Update(executive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return executive, nil
}

func (s *SalesExecutiveServiceImpl) SetVerified(id uint, verified bool) error {
	if err := s.salesRepo.SetVerified(id, verified); err != nil {
		if apperrors.Is(err, repositories.ErrSalesExecutiveNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SalesExecutiveServiceImpl) Delete(id uint) error {
	if err := s.salesRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrSalesExecutiveNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SalesExecutiveServiceImpl) VendorsRegisteredBy(salesID uint) ([]models.Vendor, error) {
	vendors, err := s.vendorRepo.Search(repositories.VendorFilter{
		Origin:  models.VendorOriginSales,
		SalesID: &salesID,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vendors, nil
}
