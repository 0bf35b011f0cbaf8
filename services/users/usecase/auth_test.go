package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dostavka-go/user-service/internal/pkg/jwt"
	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/services/users/mocks"
)

type usecaseMocks struct {
	repo      *mocks.MockUserRepo
	cache     *mocks.MockLocationCache
	geocoding *mocks.MockGeocodingGW
	stores    *mocks.MockStoreGW
	events    *mocks.MockEventGW
}

func newTestUsecase(t *testing.T) (*UserUsecase, usecaseMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := usecaseMocks{
		repo:      mocks.NewMockUserRepo(ctrl),
		cache:     mocks.NewMockLocationCache(ctrl),
		geocoding: mocks.NewMockGeocodingGW(ctrl),
		stores:    mocks.NewMockStoreGW(ctrl),
		events:    mocks.NewMockEventGW(ctrl),
	}

	tokens := jwt.NewService(models.JWTConfig{
		Secret:                      "test-secret",
		Issuer:                      "user-service",
		SessionExpirationMinutes:    24 * 60,
		RememberMeExpirationMinutes: 7 * 24 * 60,
	})

	log, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	location := models.LocationConfig{
		DefaultRadiusKm:   10,
		MaxRadiusKm:       50,
		DefaultLimit:      20,
		MaxResults:        100,
		FallbackLatitude:  50.0,
		FallbackLongitude: 20.0,
		Delivery: models.DeliveryConfig{
			BaseTimeMinutes: 15,
			SpeedKmh:        30,
			BaseFee:         50,
			FeePerKm:        10,
		},
	}

	uc := NewUserUsecase(m.repo, m.cache, m.geocoding, m.stores, m.events, tokens, location, log)
	return uc, m
}

func TestRegister(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, "user@example.com", user.Email)
			assert.Equal(t, models.RoleCustomer, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))
			user.ID = 1
			return user, nil
		})

	resp, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:     "User@Example.com",
		Password:  "secret-password",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "user@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrEmailTaken)

	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "secret-password",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})

	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	uc, m := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	m.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", Password: string(hash), Role: models.RoleCustomer}, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "user@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, m := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	m.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", Password: string(hash)}, nil)

	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, models.ErrUserNotFound)

	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// The caller cannot distinguish a missing account from a bad password
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_RememberMe(t *testing.T) {
	uc, m := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	m.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", Password: string(hash)}, nil)

	short, err := uc.Login(context.Background(), models.LoginRequest{
		Email: "user@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	m.repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", Password: string(hash)}, nil)

	long, err := uc.Login(context.Background(), models.LoginRequest{
		Email: "user@example.com", Password: "secret-password", RememberMe: true,
	})
	require.NoError(t, err)

	assert.Greater(t, long.ExpiresAt, short.ExpiresAt)
}
