package services

import (
	"testing"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesRegisterReq(contact string) *dto.RegisterSalesExecutiveRequest {
	return &dto.RegisterSalesExecutiveRequest{
		Name:              "Ravi",
		ContactNumber:     contact,
		Password:          "secret1",
		DocumentTitle:     "Aadhaar",
		DocumentFile:      "documents/aadhaar.jpg",
		BankName:          "SBI",
		BankAccountName:   "Ravi Kumar",
		BankAccountNumber: "123456789",
		BankIFSC:          "SBIN0000001",
	}
}

func TestSalesRegister_StartsUnverified(t *testing.T) {
	sales := &fakeSalesRepo{byContact: map[string]*models.SalesExecutive{}}
	svc := NewSalesExecutiveService(sales, nil)

	executive, err := svc.Register(salesRegisterReq("9000000001"))
	require.NoError(t, err)
	assert.False(t, executive.Verified)
	assert.NotEqual(t, "secret1", executive.PasswordHash)
}

func TestSalesRegister_DuplicateContact(t *testing.T) {
	sales := &fakeSalesRepo{byContact: map[string]*models.SalesExecutive{
		"9000000001": {ContactNumber: "9000000001"},
	}}
	svc := NewSalesExecutiveService(sales, nil)

	_, err := svc.Register(salesRegisterReq("9000000001"))
	assert.ErrorIs(t, err, apperrors.ErrMobileAlreadyExists)
}

func TestSalesRegister_RacedInsertIsConflict(t *testing.T) {
	// The pre-check can miss a concurrent signup; the unique index error
	// must still surface as a conflict rather than an internal error.
	sales := &fakeSalesRepo{
		byContact: map[string]*models.SalesExecutive{},
		createErr: repositories.ErrDuplicateContact,
	}
	svc := NewSalesExecutiveService(sales, nil)

	_, err := svc.Register(salesRegisterReq("9000000002"))
	assert.ErrorIs(t, err, apperrors.ErrMobileAlreadyExists)
}
