package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "sahakarita-test",
		},
	}
}

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	return NewUserUC(testConfig(), repo), repo, ctrl
}

func TestRegister(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req := &models.RegisterRequest{
		Name:     "Asha Devi",
		Email:    "Asha@Example.com",
		Phone:    "+919876543210",
		Password: "s3cret-pass",
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(nil, apperrors.ErrNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			assert.Equal(t, "asha@example.com", user.Email)
			assert.Equal(t, models.UserRoleVendor, user.Role)
			assert.True(t, user.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			return nil
		})

	user, err := uc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", user.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(&models.User{ID: uuid.New(), Email: "asha@example.com"}, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Asha Devi",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
}

func TestRegister_ShortPassword(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Asha Devi",
		Email:    "asha@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	password := "s3cret-pass"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleVendor,
		IsActive:     true,
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: password,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").
		Return(&models.User{ID: uuid.New(), Email: "asha@example.com", IsActive: false}, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestUpdateProfile(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Name: "Asha Devi", Phone: "+911111111111"}
	newName := "Asha D"

	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateProfile(context.Background(), user.ID, &models.UpdateProfileRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Asha D", updated.Name)
	assert.Equal(t, "+911111111111", updated.Phone)
}
