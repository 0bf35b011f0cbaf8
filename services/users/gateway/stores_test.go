package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

func TestStoreGateway_FindNearbyStores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stores/nearby", r.URL.Path)

		var req nearbyStoresRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 50.45, req.Latitude, 1e-6)
		assert.InDelta(t, 10.0, req.RadiusKm, 1e-6)
		assert.Equal(t, 20, req.Limit)

		json.NewEncoder(w).Encode(nearbyStoresResponse{Stores: []models.NearbyStore{
			{StoreID: 1, Name: "Сильпо", Latitude: 50.451, Longitude: 30.524, Rating: 4.5, IsOpen: true},
			{StoreID: 2, Name: "АТБ", Latitude: 50.452, Longitude: 30.525, Rating: 4.1, IsOpen: true},
		}})
	}))
	defer server.Close()

	gw := NewStoreGateway(server.Client(), server.URL)

	stores, err := gw.FindNearbyStores(context.Background(), models.Coordinate{Latitude: 50.45, Longitude: 30.52}, 10, 20)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Сильпо", stores[0].Name)
}

func TestStoreGateway_GetStoreLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stores/42/location", r.URL.Path)
		json.NewEncoder(w).Encode(models.StoreLocation{
			StoreID: 42, Name: "Сильпо", Latitude: 50.451, Longitude: 30.524,
		})
	}))
	defer server.Close()

	gw := NewStoreGateway(server.Client(), server.URL)

	location, err := gw.GetStoreLocation(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), location.StoreID)
	assert.Equal(t, "Сильпо", location.Name)
}

func TestStoreGateway_GetStoreLocation_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := NewStoreGateway(server.Client(), server.URL)

	_, err := gw.GetStoreLocation(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrStoreNotFound)
}

func TestStoreGateway_FindNearbyStores_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewStoreGateway(server.Client(), server.URL)

	_, err := gw.FindNearbyStores(context.Background(), models.Coordinate{}, 10, 20)
	assert.Error(t, err)
}
