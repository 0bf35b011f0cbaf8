package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

func locatedUser(lat, lon float64) *models.User {
	now := time.Now()
	return &models.User{
		ID: 1, Email: "user@example.com", Role: models.RoleCustomer,
		Latitude: &lat, Longitude: &lon,
		City: "Киев", Country: "Украина",
		LocationUpdatedAt: &now,
	}
}

func TestGetUserLocation(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(locatedUser(50.4501, 30.5234), nil)

	view, err := uc.GetUserLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, view.HasLocation)
	assert.Equal(t, "Киев, Украина", view.ShortAddress)
	assert.Equal(t, "Координаты: 50.450100, 30.523400", view.FormattedCoordinates)
}

func TestGetUserLocation_NoLocation(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(&models.User{ID: 1}, nil)

	view, err := uc.GetUserLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, view.HasLocation)
	assert.Empty(t, view.FormattedCoordinates)
}

func TestUpdateUserLocation_AutoGeocode(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(&models.User{ID: 1, Role: models.RoleCustomer}, nil)

	m.geocoding.EXPECT().
		ReverseGeocode(gomock.Any(), 50.4501, 30.5234).
		Return("Khreshchatyk St, 1, Kyiv")

	m.repo.EXPECT().
		UpdateLocation(gomock.Any(), int64(1), 50.4501, 30.5234, nil, "Khreshchatyk St, 1, Kyiv").
		Return(locatedUser(50.4501, 30.5234), nil)

	m.cache.EXPECT().
		SetLastLocation(gomock.Any(), int64(1), models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}, gomock.Any()).
		Return(nil)

	m.events.EXPECT().
		PublishLocationUpdate(gomock.Any(), gomock.Any()).
		Return(nil)

	view, err := uc.UpdateUserLocation(context.Background(), 1, models.UpdateLocationRequest{
		Latitude:    50.4501,
		Longitude:   30.5234,
		AutoGeocode: true,
	})

	require.NoError(t, err)
	assert.True(t, view.HasLocation)
}

func TestUpdateUserLocation_AutoGeocodeKeepsStoredAddress(t *testing.T) {
	uc, m := newTestUsecase(t)

	stored := locatedUser(50.4501, 30.5234)
	stored.FullAddress = "Khreshchatyk St, 1, Kyiv"

	m.repo.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(stored, nil)

	// No ReverseGeocode call: the stored address stays as is
	m.repo.EXPECT().
		UpdateLocation(gomock.Any(), int64(1), 50.4600, 30.5300, nil, "").
		Return(stored, nil)

	m.cache.EXPECT().SetLastLocation(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	view, err := uc.UpdateUserLocation(context.Background(), 1, models.UpdateLocationRequest{
		Latitude:    50.4600,
		Longitude:   30.5300,
		AutoGeocode: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Khreshchatyk St, 1, Kyiv", view.FullAddress)
}

func TestUpdateUserLocation_ExplicitAddressSkipsGeocoding(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		UpdateLocation(gomock.Any(), int64(1), 50.4501, 30.5234,
			&models.Address{Street: "Khreshchatyk 1", City: "Kyiv"}, "Khreshchatyk 1, Kyiv").
		Return(locatedUser(50.4501, 30.5234), nil)

	m.cache.EXPECT().SetLastLocation(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.UpdateUserLocation(context.Background(), 1, models.UpdateLocationRequest{
		Latitude:    50.4501,
		Longitude:   30.5234,
		Street:      "Khreshchatyk 1",
		City:        "Kyiv",
		AutoGeocode: true,
	})

	require.NoError(t, err)
}

func TestUpdateUserLocation_CacheFailureIsNotFatal(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		UpdateLocation(gomock.Any(), int64(1), 50.4501, 30.5234, nil, "").
		Return(locatedUser(50.4501, 30.5234), nil)

	m.cache.EXPECT().
		SetLastLocation(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	m.events.EXPECT().
		PublishLocationUpdate(gomock.Any(), gomock.Any()).
		Return(errors.New("nsqd down"))

	_, err := uc.UpdateUserLocation(context.Background(), 1, models.UpdateLocationRequest{
		Latitude:  50.4501,
		Longitude: 30.5234,
	})

	assert.NoError(t, err)
}

func TestUpdateUserAddress_AutoGeocode(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.geocoding.EXPECT().
		ForwardGeocode(gomock.Any(), "Сумская 1, Харьков, Украина").
		Return(models.Coordinate{Latitude: 49.9935, Longitude: 36.2304})

	m.repo.EXPECT().
		UpdateLocation(gomock.Any(), int64(1), 49.9935, 36.2304, gomock.Any(), "Сумская 1, Харьков, Украина").
		Return(locatedUser(49.9935, 36.2304), nil)

	m.cache.EXPECT().SetLastLocation(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.UpdateUserAddress(context.Background(), 1, models.UpdateAddressRequest{
		Street:      "Сумская 1",
		City:        "Харьков",
		Country:     "Украина",
		AutoGeocode: true,
	})

	require.NoError(t, err)
}

func TestUpdateUserAddress_WithoutGeocoding(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		UpdateAddress(gomock.Any(), int64(1),
			models.Address{Street: "Сумская 1", City: "Харьков"}, "Сумская 1, Харьков").
		Return(locatedUser(49.9935, 36.2304), nil)

	_, err := uc.UpdateUserAddress(context.Background(), 1, models.UpdateAddressRequest{
		Street: "Сумская 1",
		City:   "Харьков",
	})

	require.NoError(t, err)
}

func TestClearUserLocation(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().ClearLocation(gomock.Any(), int64(1)).Return(nil)
	m.cache.EXPECT().DeleteLastLocation(gomock.Any(), int64(1)).Return(nil)

	assert.NoError(t, uc.ClearUserLocation(context.Background(), 1))
}

func TestClearUserLocation_NotFound(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().ClearLocation(gomock.Any(), int64(404)).Return(models.ErrUserNotFound)

	err := uc.ClearUserLocation(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestGetLocationStatus(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(locatedUser(50.4501, 30.5234), nil)

	status, err := uc.GetLocationStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.HasLocation)
	assert.Equal(t, "Киев", status.City)
	assert.NotNil(t, status.LastUpdated)
}
