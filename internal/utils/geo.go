package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance between two coordinates
// in kilometers
func CalculateDistance(from, to models.Coordinate) float64 {
	lat1 := degreesToRadians(from.Latitude)
	lon1 := degreesToRadians(from.Longitude)
	lat2 := degreesToRadians(to.Latitude)
	lon2 := degreesToRadians(to.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// FormatDistance renders a distance for display: meters below one kilometer,
// one-decimal kilometers above
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%.0f м", distanceKm*1000)
	}
	return fmt.Sprintf("%.1f км", distanceKm)
}

// FormatCoordinates renders a coordinate pair as a display string, used when
// no textual address is available
func FormatCoordinates(latitude, longitude float64) string {
	return fmt.Sprintf("Координаты: %.6f, %.6f", latitude, longitude)
}

// EstimateDeliveryMinutes converts a distance to a delivery estimate using the
// linear travel model
func EstimateDeliveryMinutes(distanceKm, speedKmh float64, baseTimeMinutes int) int {
	if speedKmh <= 0 {
		return baseTimeMinutes
	}
	travel := distanceKm / speedKmh * 60
	return int(math.Round(travel + float64(baseTimeMinutes)))
}

// CalculateDeliveryFee computes the linear delivery fee for a distance
func CalculateDeliveryFee(distanceKm, baseFee, feePerKm float64) float64 {
	return baseFee + feePerKm*distanceKm
}

// EncodeGeohash returns a 12-character geohash for the coordinate
func EncodeGeohash(latitude, longitude float64) string {
	return geohash.Encode(latitude, longitude)
}

// ValidCoordinate reports whether a latitude/longitude pair is within range
func ValidCoordinate(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
