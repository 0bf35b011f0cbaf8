package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// CountUsers returns the total user population
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountUsersWithLocation returns the number of users with stored coordinates
func (r *UserRepository) CountUsersWithLocation(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE latitude IS NOT NULL AND longitude IS NOT NULL`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count users with location: %w", err)
	}
	return count, nil
}

// CountLocationUpdatedSince returns how many users updated their location at
// or after the given instant
func (r *UserRepository) CountLocationUpdatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE location_updated_at >= $1`
	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count location updates: %w", err)
	}
	return count, nil
}

// GetCityStats returns user counts per city, largest first with a stable
// alphabetical tie-break
func (r *UserRepository) GetCityStats(ctx context.Context, limit int) ([]models.CityStats, error) {
	query := `
		SELECT city, COALESCE(country, '') AS country, COUNT(*) AS user_count
		FROM users
		WHERE city IS NOT NULL AND city <> ''
		GROUP BY city, country
		ORDER BY user_count DESC, city ASC
		LIMIT $1`

	stats := []models.CityStats{}
	if err := r.db.SelectContext(ctx, &stats, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get city stats: %w", err)
	}
	return stats, nil
}

// GetCountryStats returns user counts per country, largest first with a
// stable alphabetical tie-break
func (r *UserRepository) GetCountryStats(ctx context.Context, limit int) ([]models.CountryStats, error) {
	query := `
		SELECT country, COUNT(*) AS user_count
		FROM users
		WHERE country IS NOT NULL AND country <> ''
		GROUP BY country
		ORDER BY user_count DESC, country ASC
		LIMIT $1`

	stats := []models.CountryStats{}
	if err := r.db.SelectContext(ctx, &stats, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get country stats: %w", err)
	}
	return stats, nil
}
