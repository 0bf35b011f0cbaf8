package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

func TestGetLocationStats(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().CountUsers(gomock.Any()).Return(int64(100), nil)
	m.repo.EXPECT().CountUsersWithLocation(gomock.Any()).Return(int64(60), nil)

	// Cumulative windows: 10 today, 25 within a week, 40 within a month
	gomock.InOrder(
		m.repo.EXPECT().CountLocationUpdatedSince(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (int64, error) {
				// The first boundary is the start of the calendar day
				now := time.Now()
				expected := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				assert.Equal(t, expected, since)
				return 10, nil
			}),
		m.repo.EXPECT().CountLocationUpdatedSince(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), since, time.Minute)
				return 25, nil
			}),
		m.repo.EXPECT().CountLocationUpdatedSince(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)
				return 40, nil
			}),
	)

	m.repo.EXPECT().GetCityStats(gomock.Any(), 10).Return([]models.CityStats{
		{City: "Киев", Country: "Украина", UserCount: 40},
		{City: "Харьков", Country: "Украина", UserCount: 20},
	}, nil)
	m.repo.EXPECT().GetCountryStats(gomock.Any(), 10).Return([]models.CountryStats{
		{Country: "Украина", UserCount: 60},
	}, nil)

	stats, err := uc.GetLocationStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(100), stats.TotalUsers)
	assert.Equal(t, int64(60), stats.UsersWithLocation)
	assert.Equal(t, int64(40), stats.UsersWithoutLocation)
	assert.InDelta(t, 60.0, stats.LocationCoverage, 1e-9)

	assert.InDelta(t, 40.0, stats.TopCities[0].Percentage, 1e-9)
	assert.InDelta(t, 60.0, stats.TopCountries[0].Percentage, 1e-9)

	// Exclusive buckets derived from the cumulative counts
	require.Len(t, stats.UpdateDistribution, 5)
	byPeriod := map[string]models.UpdatePeriod{}
	var sum int64
	for _, bucket := range stats.UpdateDistribution {
		byPeriod[bucket.Period] = bucket
		sum += bucket.UserCount
	}

	assert.Equal(t, int64(10), byPeriod[models.PeriodToday].UserCount)
	assert.Equal(t, int64(15), byPeriod[models.PeriodThisWeek].UserCount)
	assert.Equal(t, int64(15), byPeriod[models.PeriodThisMonth].UserCount)
	assert.Equal(t, int64(20), byPeriod[models.PeriodOlder].UserCount)
	assert.Equal(t, int64(40), byPeriod[models.PeriodNever].UserCount)

	// Every user lands in exactly one bucket
	assert.Equal(t, stats.TotalUsers, sum)
}

func TestGetLocationStats_EmptyPopulation(t *testing.T) {
	uc, m := newTestUsecase(t)

	m.repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
	m.repo.EXPECT().CountUsersWithLocation(gomock.Any()).Return(int64(0), nil)
	m.repo.EXPECT().CountLocationUpdatedSince(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(3)
	m.repo.EXPECT().GetCityStats(gomock.Any(), 10).Return([]models.CityStats{}, nil)
	m.repo.EXPECT().GetCountryStats(gomock.Any(), 10).Return([]models.CountryStats{}, nil)

	stats, err := uc.GetLocationStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.LocationCoverage)
	for _, bucket := range stats.UpdateDistribution {
		assert.Zero(t, bucket.UserCount)
		assert.Zero(t, bucket.Percentage)
	}
}
