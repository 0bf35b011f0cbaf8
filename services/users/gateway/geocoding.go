package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/internal/utils"
)

// knownCities maps address keywords to fallback coordinates used when the
// geocoding provider cannot be reached
var knownCities = []struct {
	keyword    string
	coordinate models.Coordinate
}{
	{"харьков", models.Coordinate{Latitude: 49.9935, Longitude: 36.2304}},
	{"kharkiv", models.Coordinate{Latitude: 49.9935, Longitude: 36.2304}},
	{"киев", models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}},
	{"kiev", models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}},
	{"kyiv", models.Coordinate{Latitude: 50.4501, Longitude: 30.5234}},
	{"одесса", models.Coordinate{Latitude: 46.4825, Longitude: 30.7233}},
	{"odesa", models.Coordinate{Latitude: 46.4825, Longitude: 30.7233}},
	{"москва", models.Coordinate{Latitude: 55.7558, Longitude: 37.6176}},
	{"moscow", models.Coordinate{Latitude: 55.7558, Longitude: 37.6176}},
	{"петербург", models.Coordinate{Latitude: 59.9311, Longitude: 30.3609}},
	{"spb", models.Coordinate{Latitude: 59.9311, Longitude: 30.3609}},
	{"new york", models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}},
	{"los angeles", models.Coordinate{Latitude: 34.0522, Longitude: -118.2437}},
	{"berlin", models.Coordinate{Latitude: 52.5200, Longitude: 13.4050}},
}

// MapboxGateway resolves addresses through the Mapbox geocoding API.
// Availability is decided once at startup; per-call failures degrade to the
// keyword table and the configured fallback center. No method returns an
// error.
type MapboxGateway struct {
	client    *http.Client
	cfg       models.MapboxConfig
	fallback  models.Coordinate
	available bool
	log       *logger.ZapLogger
}

// mapboxResponse mirrors the provider's feature collection. Coordinates come
// as [longitude, latitude].
type mapboxResponse struct {
	Features []struct {
		Text      string `json:"text"`
		PlaceName string `json:"place_name"`
		Geometry  struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// NewMapboxGateway creates the geocoding gateway and probes the provider once
// to decide availability
func NewMapboxGateway(client *http.Client, cfg models.MapboxConfig, location models.LocationConfig, log *logger.ZapLogger) *MapboxGateway {
	g := &MapboxGateway{
		client: client,
		cfg:    cfg,
		fallback: models.Coordinate{
			Latitude:  location.FallbackLatitude,
			Longitude: location.FallbackLongitude,
		},
		log: log,
	}

	g.available = g.probe()
	if g.available {
		log.Info("geocoding provider available")
	} else {
		log.Warn("geocoding provider unavailable, using fallback coordinates")
	}

	return g
}

// probe checks the token shape and performs one test request
func (g *MapboxGateway) probe() bool {
	if !g.cfg.Enabled {
		return false
	}
	if !strings.HasPrefix(g.cfg.Token, "pk.") {
		g.log.Warn("geocoding token missing or malformed")
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := g.request(ctx, "Kyiv", nil, 1)
	if err != nil {
		g.log.Warn("geocoding probe request failed", logger.ErrorField(err))
		return false
	}
	return true
}

// Available reports the startup availability decision
func (g *MapboxGateway) Available() bool {
	return g.available
}

// ForwardGeocode resolves an address to coordinates. Failures fall back to the
// keyword table, then to the configured center.
func (g *MapboxGateway) ForwardGeocode(ctx context.Context, address string) models.Coordinate {
	if g.available {
		resp, err := g.request(ctx, address, nil, g.cfg.Limit)
		if err == nil && len(resp.Features) > 0 && len(resp.Features[0].Geometry.Coordinates) >= 2 {
			coords := resp.Features[0].Geometry.Coordinates
			return models.Coordinate{Latitude: coords[1], Longitude: coords[0]}
		}
		if err != nil {
			g.log.Warn("forward geocode failed", logger.String("address", address), logger.ErrorField(err))
		}
	}

	return g.fallbackCoordinate(address)
}

// ReverseGeocode resolves coordinates to an address string. Failures fall
// back to a formatted coordinate pair.
func (g *MapboxGateway) ReverseGeocode(ctx context.Context, latitude, longitude float64) string {
	if g.available {
		query := fmt.Sprintf("%f,%f", longitude, latitude)
		resp, err := g.request(ctx, query, nil, 1)
		if err == nil && len(resp.Features) > 0 && resp.Features[0].PlaceName != "" {
			return resp.Features[0].PlaceName
		}
		if err != nil {
			g.log.Warn("reverse geocode failed", logger.Float64("latitude", latitude), logger.Float64("longitude", longitude), logger.ErrorField(err))
		}
	}

	return utils.FormatCoordinates(latitude, longitude)
}

// SearchNearbyPlaces finds points of interest around a center. Failures
// degrade to an empty result.
func (g *MapboxGateway) SearchNearbyPlaces(ctx context.Context, query string, center models.Coordinate, limit int) []models.Place {
	if !g.available {
		return []models.Place{}
	}

	resp, err := g.request(ctx, query, &center, limit)
	if err != nil {
		g.log.Warn("nearby place search failed", logger.String("query", query), logger.ErrorField(err))
		return []models.Place{}
	}

	places := make([]models.Place, 0, len(resp.Features))
	for _, feature := range resp.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}
		places = append(places, models.Place{
			Name:     feature.Text,
			FullName: feature.PlaceName,
			Coordinate: models.Coordinate{
				Latitude:  feature.Geometry.Coordinates[1],
				Longitude: feature.Geometry.Coordinates[0],
			},
		})
	}
	return places
}

func (g *MapboxGateway) request(ctx context.Context, query string, proximity *models.Coordinate, limit int) (*mapboxResponse, error) {
	endpoint := fmt.Sprintf("%s/%s.json", g.cfg.BaseURL, url.PathEscape(query))

	params := url.Values{}
	params.Set("access_token", g.cfg.Token)
	params.Set("limit", fmt.Sprintf("%d", limit))
	if g.cfg.Country != "" {
		params.Set("country", g.cfg.Country)
	}
	if g.cfg.Types != "" {
		params.Set("types", g.cfg.Types)
	}
	if proximity != nil {
		params.Set("proximity", fmt.Sprintf("%f,%f", proximity.Longitude, proximity.Latitude))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var parsed mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return &parsed, nil
}

// fallbackCoordinate matches the address against the keyword table, falling
// through to the configured center
func (g *MapboxGateway) fallbackCoordinate(address string) models.Coordinate {
	lower := strings.ToLower(address)
	for _, city := range knownCities {
		if strings.Contains(lower, city.keyword) {
			return city.coordinate
		}
	}
	return g.fallback
}
