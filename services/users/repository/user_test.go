package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	log, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	return NewUserRepository(db, log), mock
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "password", "role",
		"latitude", "longitude", "street", "city", "region", "country",
		"postal_code", "full_address", "location_updated_at", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Email, user.FirstName, user.LastName, user.Password, user.Role,
		user.Latitude, user.Longitude, user.Street, user.City, user.Region, user.Country,
		user.PostalCode, user.FullAddress, user.LocationUpdatedAt, user.CreatedAt, user.UpdatedAt,
	)
}

func TestCreateUser(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user@example.com", "Ivan", "Petrov", "hashed", models.RoleCustomer).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	user, err := repo.CreateUser(context.Background(), &models.User{
		Email:     "user@example.com",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Password:  "hashed",
		Role:      models.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateUser(context.Background(), &models.User{Email: "dup@example.com"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestGetUserByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	lat, lon := 50.4501, 30.5234
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(userRows(models.User{
			ID: 5, Email: "user@example.com", Role: models.RoleCustomer,
			Latitude: &lat, Longitude: &lon, City: "Киев", Country: "Украина",
		}))

	user, err := repo.GetUserByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.True(t, user.HasLocation())
	assert.Equal(t, "Киев, Украина", user.ShortAddress())
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUpdateLocation_EmptyAddressKeepsStored(t *testing.T) {
	repo, mock := newTestRepo(t)

	lat, lon := 50.4600, 30.5300

	// The coordinates-only update must not blank an existing full_address
	mock.ExpectQuery(regexp.QuoteMeta("full_address = COALESCE(NULLIF($3, ''), full_address)")).
		WithArgs(lat, lon, "", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(userRows(models.User{
			ID: 7, Email: "user@example.com", Role: models.RoleCustomer,
			Latitude: &lat, Longitude: &lon,
			FullAddress: "Khreshchatyk St, 1, Kyiv",
		}))

	user, err := repo.UpdateLocation(context.Background(), 7, lat, lon, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Khreshchatyk St, 1, Kyiv", user.FullAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearLocation(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE users SET").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearLocation(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearLocation_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE users SET").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearLocation(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestCountQueries(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(100)))

	total, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE latitude IS NOT NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(60)))

	withLocation, err := repo.CountUsersWithLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(60), withLocation)

	since := time.Now().Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE location_updated_at").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(10)))

	updated, err := repo.CountLocationUpdatedSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated)
}

func TestGetCityStats(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT city, (.+) FROM users").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"city", "country", "user_count"}).
			AddRow("Киев", "Украина", int64(40)).
			AddRow("Харьков", "Украина", int64(20)))

	stats, err := repo.GetCityStats(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Киев", stats[0].City)
	assert.Equal(t, int64(40), stats[0].UserCount)
}
