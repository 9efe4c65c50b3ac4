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

type fakeAdminRepo struct {
	repositories.AdminRepository

	byEmail   map[string]*models.Admin
	createErr error
}

func (r *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	if a, ok := r.byEmail[email]; ok {
		return a, nil
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	if r.createErr != nil {
		return r.createErr
	}
	admin.ID = uint(len(r.byEmail) + 1)
	if r.byEmail == nil {
		r.byEmail = map[string]*models.Admin{}
	}
	r.byEmail[admin.Email] = admin
	return nil
}

func subAdminReq(email string) *dto.CreateSubAdminRequest {
	return &dto.CreateSubAdminRequest{
		Name:            "Asha",
		Email:           email,
		Mobile:          "9000000010",
		Password:        "secret1",
		AllottedSection: "vendors",
	}
}

func TestCreateSubAdmin_AssignsSubRole(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*models.Admin{}}
	svc := NewAdminService(repo)

	admin, err := svc.CreateSubAdmin(subAdminReq("asha@example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.AdminRoleSub, admin.Role)
	assert.NotEqual(t, "secret1", admin.PasswordHash)
}

func TestCreateSubAdmin_DuplicateEmail(t *testing.T) {
	repo := &fakeAdminRepo{byEmail: map[string]*models.Admin{
		"asha@example.com": {Email: "asha@example.com"},
	}}
	svc := NewAdminService(repo)

	_, err := svc.CreateSubAdmin(subAdminReq("asha@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestCreateSubAdmin_RacedInsertIsConflict(t *testing.T) {
	// Two admins can submit the same email at once; the losing insert
	// still reads as a conflict, not an internal error.
	repo := &fakeAdminRepo{
		byEmail:   map[string]*models.Admin{},
		createErr: repositories.ErrDuplicateAdminEmail,
	}
	svc := NewAdminService(repo)

	_, err := svc.CreateSubAdmin(subAdminReq("asha@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}
