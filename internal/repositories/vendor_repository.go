package repositories

import (
	"errors"
	"strings"
	"time"

	"cityinbox_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrDuplicateContact = errors.New("contact number already registered")
)

// VendorFilter is the typed filter specification for vendor listings.
// Every present field becomes an equality condition; Search expands into an
// OR group of substring matches. VerifiedOnly is forced for public reads and
// left false for admin queries.
type VendorFilter struct {
	Origin        models.VendorOrigin
	Search        string
	SalesID       *uint
	DateFrom      *time.Time
	DateTo        *time.Time
	City          string
	State         string
	CategoryID    *uint
	SubcategoryID *uint
	VerifiedOnly  bool
}

// searchColumns are the fields the free-text OR group matches against.
var searchColumns = []string{
	"shop_name", "city", "state", "contact_number", "address", "facilities",
}

type VendorRepository interface {
	Create(vendor *models.Vendor) error
	FindByID(id uint) (*models.Vendor, error)
	FindByIDWithRelations(id uint) (*models.Vendor, error)
	FindByContactNumber(contact string) (*models.Vendor, error)
	ContactNumberTaken(contact string, excludeID uint) (bool, error)
	Search(filter VendorFilter) ([]models.Vendor, error)
	Update(vendor *models.Vendor) error
	SetVerified(id uint, verified bool) error
	Delete(id uint) error
	Count() (int64, error)
}

type VendorRepositoryImpl struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

func (r *VendorRepositoryImpl) Create(vendor *models.Vendor) error {
	err := r.db.Create(vendor).Error
	if err != nil && isDuplicateKeyError(err) {
		// The pre-check in the service is racy by nature; the unique index
		// on contact_number is the authority.
		return ErrDuplicateContact
	}
	return err
}

func (r *VendorRepositoryImpl) FindByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) FindByIDWithRelations(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.
		Preload("Category").
		Preload("Subcategory").
		First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) FindByContactNumber(contact string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "contact_number = ?", contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) ContactNumberTaken(contact string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Vendor{}).Where("contact_number = ?", contact)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search applies the filter and returns vendors newest first. The secondary
// sort on id keeps the order total when created_at ties.
func (r *VendorRepositoryImpl) Search(filter VendorFilter) ([]models.Vendor, error) {
	var vendors []models.Vendor

	query := r.db.Model(&models.Vendor{})

	if filter.Origin != "" {
		query = query.Where("created_by = ?", filter.Origin)
	}
	if filter.SalesID != nil {
		query = query.Where("sales_executive_id = ?", *filter.SalesID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	if filter.VerifiedOnly {
		query = query.Where("verified = ?", true)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		or := r.db.Where("LOWER("+searchColumns[0]+") LIKE ?", pattern)
		for _, col := range searchColumns[1:] {
			or = or.Or("LOWER("+col+") LIKE ?", pattern)
		}
		query = query.Where(or)
	}

	if filter.DateFrom != nil && filter.DateTo != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.DateFrom, *filter.DateTo)
	} else if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	} else if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	err := query.
		Preload("Category").
		Preload("Subcategory").
		Preload("SalesExecutive").
		Order("created_at DESC, id DESC").
		Find(&vendors).Error

	return vendors, err
}

func (r *VendorRepositoryImpl) Update(vendor *models.Vendor) error {
	err := r.db.Save(vendor).Error
	if err != nil && isDuplicateKeyError(err) {
		return ErrDuplicateContact
	}
	return err
}

func (r *VendorRepositoryImpl) SetVerified(id uint, verified bool) error {
	result := r.db.Model(&models.Vendor{}).Where("id = ?", id).Update("verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Setting the flag a vendor already carries affects no rows on
		// mysql, so confirm the vendor is really gone.
		missing, err := rowMissing(r.db, &models.Vendor{}, id)
		if err != nil {
			return err
		}
		if missing {
			return ErrVendorNotFound
		}
	}
	return nil
}

func (r *VendorRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Vendor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func (r *VendorRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Count(&count).Error
	return count, err
}