package models

// SalesExecutive registers vendors in the field. DocumentFile and
// BankPassbookImg hold stored filenames.
type SalesExecutive struct {
	BaseModel
	Name              string `gorm:"not null" json:"name"`
	ContactNumber     string `gorm:"size:15;uniqueIndex;not null" json:"contact_number"`
	DocumentTitle     string `gorm:"not null" json:"document_title"`
	DocumentFile      string `gorm:"not null" json:"document_file"`
	BankName          string `gorm:"not null" json:"bank_name"`
	BankAccountName   string `gorm:"not null" json:"bank_account_name"`
	BankAccountNumber string `gorm:"size:30;not null" json:"bank_account_number"`
	BankIFSC          string `gorm:"column:bank_ifsc;size:20;not null" json:"bank_ifsc"`
	BankPassbookImg   string `json:"bank_passbook_img,omitempty"`
	PasswordHash      string `gorm:"column:password;size:255;not null" json:"-"`
	Verified          bool   `gorm:"default:false" json:"verified"`
}

func (SalesExecutive) TableName() string { return "sales_executives" }
