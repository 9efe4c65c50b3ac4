package dto

// RegisterSalesExecutiveRequest onboards a field sales executive. The
// document and passbook images arrive as already-stored filenames from
// the upload endpoint.
type RegisterSalesExecutiveRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=150"`
	ContactNumber     string `json:"contact_number" validate:"required,is-mobile"`
	Password          string `json:"password" validate:"required,min=6"`
	DocumentTitle     string `json:"document_title" validate:"required,max=200"`
	DocumentFile      string `json:"document_file" validate:"required,max=255"`
	BankName          string `json:"bank_name" validate:"required,max=200"`
	BankAccountName   string `json:"bank_account_name" validate:"required,max=200"`
	BankAccountNumber string `json:"bank_account_number" validate:"required,max=30"`
	BankIFSC          string `json:"bank_ifsc" validate:"required,max=20"`
	BankPassbookImg   string `json:"bank_passbook_img" validate:"omitempty,max=255"`
}

// SalesLoginRequest logs a sales executive in by contact number.
type SalesLoginRequest struct {
	ContactNumber string `json:"contact_number" validate:"required,is-mobile"`
	Password      string `json:"password" validate:"required,min=6"`
}

// UpdateSalesExecutiveRequest edits a sales executive from the admin panel.
type UpdateSalesExecutiveRequest struct {
	Name              string `json:"name" validate:"omitempty,min=2,max=150"`
	DocumentTitle     string `json:"document_title" validate:"omitempty,max=200"`
	DocumentFile      string `json:"document_file" validate:"omitempty,max=255"`
	BankName          string `json:"bank_name" validate:"omitempty,max=200"`
	BankAccountName   string `json:"bank_account_name" validate:"omitempty,max=200"`
	BankAccountNumber string `json:"bank_account_number" validate:"omitempty,max=30"`
	BankIFSC          string `json:"bank_ifsc" validate:"omitempty,max=20"`
	BankPassbookImg   string `json:"bank_passbook_img" validate:"omitempty,max=255"`
}
