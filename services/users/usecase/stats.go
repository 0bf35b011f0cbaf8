package usecase

import (
	"context"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

const topLocationsLimit = 10

// GetLocationStats computes the population-wide coverage aggregate. All
// period boundaries derive from a single reference instant so the buckets
// stay consistent within one response.
func (uc *UserUsecase) GetLocationStats(ctx context.Context) (*models.LocationStats, error) {
	now := time.Now()

	total, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	withLocation, err := uc.repo.CountUsersWithLocation(ctx)
	if err != nil {
		return nil, err
	}

	// "Today" is the calendar day, not a rolling 24-hour window
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	updatedToday, err := uc.repo.CountLocationUpdatedSince(ctx, todayStart)
	if err != nil {
		return nil, err
	}

	updatedWeek, err := uc.repo.CountLocationUpdatedSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}

	updatedMonth, err := uc.repo.CountLocationUpdatedSince(ctx, now.Add(-30*24*time.Hour))
	if err != nil {
		return nil, err
	}

	cities, err := uc.repo.GetCityStats(ctx, topLocationsLimit)
	if err != nil {
		return nil, err
	}

	countries, err := uc.repo.GetCountryStats(ctx, topLocationsLimit)
	if err != nil {
		return nil, err
	}

	stats := &models.LocationStats{
		TotalUsers:           total,
		UsersWithLocation:    withLocation,
		UsersWithoutLocation: total - withLocation,
		UpdatedToday:         updatedToday,
		UpdatedThisWeek:      updatedWeek,
		UpdatedThisMonth:     updatedMonth,
		TopCities:            cities,
		TopCountries:         countries,
	}

	if total > 0 {
		stats.LocationCoverage = percentage(withLocation, total)
		for i := range stats.TopCities {
			stats.TopCities[i].Percentage = percentage(stats.TopCities[i].UserCount, total)
		}
		for i := range stats.TopCountries {
			stats.TopCountries[i].Percentage = percentage(stats.TopCountries[i].UserCount, total)
		}
	}

	stats.UpdateDistribution = buildDistribution(total, withLocation, updatedToday, updatedWeek, updatedMonth)

	return stats, nil
}

// buildDistribution derives mutually exclusive histogram buckets from the
// cumulative counts. Every user lands in exactly one bucket.
func buildDistribution(total, withLocation, today, week, month int64) []models.UpdatePeriod {
	buckets := []models.UpdatePeriod{
		{Period: models.PeriodToday, UserCount: today},
		{Period: models.PeriodThisWeek, UserCount: week - today},
		{Period: models.PeriodThisMonth, UserCount: month - week},
		{Period: models.PeriodOlder, UserCount: withLocation - month},
		{Period: models.PeriodNever, UserCount: total - withLocation},
	}

	for i := range buckets {
		if buckets[i].UserCount < 0 {
			buckets[i].UserCount = 0
		}
		if total > 0 {
			buckets[i].Percentage = percentage(buckets[i].UserCount, total)
		}
	}

	return buckets
}

func percentage(part, total int64) float64 {
	return float64(part) / float64(total) * 100
}
