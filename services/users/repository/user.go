package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

const pgUniqueViolation = "23505"

const userColumns = `
	id, email, first_name, last_name, password, role,
	latitude, longitude,
	COALESCE(street, '') AS street,
	COALESCE(city, '') AS city,
	COALESCE(region, '') AS region,
	COALESCE(country, '') AS country,
	COALESCE(postal_code, '') AS postal_code,
	COALESCE(full_address, '') AS full_address,
	location_updated_at, created_at, updated_at`

// CreateUser inserts a new user and returns the stored record
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.FirstName, user.LastName, user.Password, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, models.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByID fetches a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// GetUserByEmail fetches a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateLocation stores new coordinates, optionally replacing the address
// fields, and stamps location_updated_at in the same statement
func (r *UserRepository) UpdateLocation(ctx context.Context, userID int64, latitude, longitude float64, address *models.Address, fullAddress string) (*models.User, error) {
	var err error
	var row *sql.Row

	if address != nil {
		query := `
			UPDATE users SET
				latitude = $1, longitude = $2,
				street = $3, city = $4, region = $5, country = $6, postal_code = $7,
				full_address = $8,
				location_updated_at = NOW(), updated_at = NOW()
			WHERE id = $9
			RETURNING id`
		row = r.db.QueryRowContext(ctx, query,
			latitude, longitude,
			address.Street, address.City, address.Region, address.Country, address.PostalCode,
			fullAddress, userID)
	} else {
		// An empty fullAddress keeps whatever address is already stored
		query := `
			UPDATE users SET
				latitude = $1, longitude = $2,
				full_address = COALESCE(NULLIF($3, ''), full_address),
				location_updated_at = NOW(), updated_at = NOW()
			WHERE id = $4
			RETURNING id`
		row = r.db.QueryRowContext(ctx, query, latitude, longitude, fullAddress, userID)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return r.GetUserByID(ctx, userID)
}

// UpdateAddress replaces the address fields without touching the coordinates
func (r *UserRepository) UpdateAddress(ctx context.Context, userID int64, address models.Address, fullAddress string) (*models.User, error) {
	query := `
		UPDATE users SET
			street = $1, city = $2, region = $3, country = $4, postal_code = $5,
			full_address = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		address.Street, address.City, address.Region, address.Country, address.PostalCode,
		fullAddress, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return r.GetUserByID(ctx, userID)
}

// ClearLocation resets the coordinates, address fields and the location
// timestamp in a single statement so they can never diverge
func (r *UserRepository) ClearLocation(ctx context.Context, userID int64) error {
	query := `
		UPDATE users SET
			latitude = NULL, longitude = NULL,
			street = NULL, city = NULL, region = NULL, country = NULL, postal_code = NULL,
			full_address = NULL,
			location_updated_at = NULL, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear location: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to clear location: %w", err)
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
