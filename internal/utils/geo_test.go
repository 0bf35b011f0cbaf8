package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	kharkiv := models.Coordinate{Latitude: 49.9935, Longitude: 36.2304}
	kyiv := models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}

	distance := CalculateDistance(kharkiv, kyiv)

	// Kharkiv to Kyiv is roughly 410 km as the crow flies
	assert.InDelta(t, 410, distance, 10)
}

func TestCalculateDistance_SamePoint(t *testing.T) {
	point := models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}
	assert.Zero(t, CalculateDistance(point, point))
}

func TestCalculateDistance_OneDegreeAtEquator(t *testing.T) {
	a := models.Coordinate{Latitude: 0, Longitude: 0}
	b := models.Coordinate{Latitude: 1, Longitude: 0}

	assert.InDelta(t, 111.2, CalculateDistance(a, b), 0.5)
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Coordinate{Latitude: 49.9935, Longitude: 36.2304}
	b := models.Coordinate{Latitude: 46.4825, Longitude: 30.7233}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       string
	}{
		{"meters", 0.35, "350 м"},
		{"just under a km", 0.999, "999 м"},
		{"one km", 1.0, "1.0 км"},
		{"kilometers", 12.34, "12.3 км"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.distanceKm))
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	got := FormatCoordinates(49.9935, 36.2304)
	assert.Equal(t, "Координаты: 49.993500, 36.230400", got)
}

func TestEstimateDeliveryMinutes(t *testing.T) {
	// 10 km at 30 km/h is 20 minutes of travel plus the 15 minute base
	assert.Equal(t, 35, EstimateDeliveryMinutes(10, 30, 15))

	// Zero distance still costs the base time
	assert.Equal(t, 15, EstimateDeliveryMinutes(0, 30, 15))

	// Degenerate speed falls back to the base time
	assert.Equal(t, 15, EstimateDeliveryMinutes(10, 0, 15))
}

func TestCalculateDeliveryFee(t *testing.T) {
	assert.InDelta(t, 100.0, CalculateDeliveryFee(5, 50, 10), 1e-9)
	assert.InDelta(t, 150.0, CalculateDeliveryFee(10, 50, 10), 1e-9)
	assert.InDelta(t, 50.0, CalculateDeliveryFee(0, 50, 10), 1e-9)
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(50.4501, 30.5234)
	assert.Len(t, hash, 12)

	// Nearby points share a prefix
	other := EncodeGeohash(50.4502, 30.5235)
	assert.Equal(t, hash[:6], other[:6])
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(50.45, 30.52))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(0, -181))
}
