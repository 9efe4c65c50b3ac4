package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUserRepo struct {
	repositories.UserRepository

	byEmail   map[string]*models.User
	byMobile  map[string]*models.User
	created   []*models.User
	createErr error
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		byEmail:  map[string]*models.User{},
		byMobile: map[string]*models.User{},
	}
}

func (r *fakeAuthUserRepo) FindByEmail(email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeAuthUserRepo) FindByMobile(mobile string) (*models.User, error) {
	if u, ok := r.byMobile[mobile]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeAuthUserRepo) Create(user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uint(len(r.created) + 1)
	r.created = append(r.created, user)
	r.byEmail[user.Email] = user
	r.byMobile[user.Mobile] = user
	return nil
}

func (r *fakeAuthUserRepo) UpdateDeviceToken(userID uint, token string) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.DeviceToken = &token
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeAuthUserRepo) add(user *models.User) {
	r.byEmail[user.Email] = user
	r.byMobile[user.Mobile] = user
}

type fakeSalesRepo struct {
	repositories.SalesExecutiveRepository

	byContact map[string]*models.SalesExecutive
	createErr error
}

func (r *fakeSalesRepo) FindByContactNumber(contact string) (*models.SalesExecutive, error) {
	if e, ok := r.byContact[contact]; ok {
		return e, nil
	}
	return nil, repositories.ErrSalesExecutiveNotFound
}

func (r *fakeSalesRepo) Create(executive *models.SalesExecutive) error {
	if r.createErr != nil {
		return r.createErr
	}
	executive.ID = uint(len(r.byContact) + 1)
	if r.byContact == nil {
		r.byContact = map[string]*models.SalesExecutive{}
	}
	r.byContact[executive.ContactNumber] = executive
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func newAuthService(users repositories.UserRepository, sales repositories.SalesExecutiveRepository) AuthService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, nil, nil, sales, tokens)
}

func TestRegisterUser_IssuesToken(t *testing.T) {
	users := newFakeAuthUserRepo()
	svc := newAuthService(users, nil)

	resp, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Mobile:   "9876543210",
		Password: "secret1",
		City:     "Pune",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, string(models.ActorRoleUser), resp.Role)

	require.Len(t, users.created, 1)
	// Stored as a hash, never as the plaintext.
	assert.NotEqual(t, "secret1", users.created[0].PasswordHash)
	assert.True(t, auth.CheckPassword(users.created[0].PasswordHash, "secret1"))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := newFakeAuthUserRepo()
	users.add(&models.User{Email: "priya@example.com", Mobile: "9999999999"})
	svc := newAuthService(users, nil)

	_, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Mobile:   "9876543210",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterUser_RacedInsertIsConflict(t *testing.T) {
	// Both requests can pass the pre-checks; the losing insert must still
	// come back as a conflict, not an internal error.
	users := newFakeAuthUserRepo()
	users.createErr = repositories.ErrDuplicateUser
	svc := newAuthService(users, nil)

	_, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Mobile:   "9876543210",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	users := newFakeAuthUserRepo()
	users.add(&models.User{
		Email:        "priya@example.com",
		Mobile:       "9876543210",
		PasswordHash: mustHash(t, "correct-pass"),
	})
	svc := newAuthService(users, nil)

	_, err := svc.LoginUser(&dto.LoginRequest{Email: "priya@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown email reads the same as a wrong password.
	_, err = svc.LoginUser(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUser_CapturesDeviceToken(t *testing.T) {
	users := newFakeAuthUserRepo()
	users.add(&models.User{
		BaseModel:    models.BaseModel{ID: 9},
		Email:        "priya@example.com",
		Mobile:       "9876543210",
		PasswordHash: mustHash(t, "correct-pass"),
	})
	svc := newAuthService(users, nil)

	_, err := svc.LoginUser(&dto.LoginRequest{
		Email:       "priya@example.com",
		Password:    "correct-pass",
		DeviceToken: "fcm-token-1",
	})
	require.NoError(t, err)

	stored := users.byEmail["priya@example.com"]
	require.NotNil(t, stored.DeviceToken)
	assert.Equal(t, "fcm-token-1", *stored.DeviceToken)

	// Logging in without a token leaves the stored one alone.
	_, err = svc.LoginUser(&dto.LoginRequest{Email: "priya@example.com", Password: "correct-pass"})
	require.NoError(t, err)
	require.NotNil(t, stored.DeviceToken)
	assert.Equal(t, "fcm-token-1", *stored.DeviceToken)
}

func TestLoginSalesExecutive_RequiresVerification(t *testing.T) {
	sales := &fakeSalesRepo{byContact: map[string]*models.SalesExecutive{
		"9000000001": {
			Name:          "Ravi",
			ContactNumber: "9000000001",
			PasswordHash:  mustHash(t, "sales-pass"),
			Verified:      false,
		},
	}}
	svc := newAuthService(newFakeAuthUserRepo(), sales)

	_, err := svc.LoginSalesExecutive(&dto.SalesLoginRequest{
		ContactNumber: "9000000001",
		Password:      "sales-pass",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)

	// Wrong password is reported before the verification state.
	_, err = svc.LoginSalesExecutive(&dto.SalesLoginRequest{
		ContactNumber: "9000000001",
		Password:      "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	sales.byContact["9000000001"].Verified = true
	resp, err := svc.LoginSalesExecutive(&dto.SalesLoginRequest{
		ContactNumber: "9000000001",
		Password:      "sales-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.ActorRoleSales), resp.Role)
	assert.NotEmpty(t, resp.Token)
}
