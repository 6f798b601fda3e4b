package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/adapters/out/geo"
)

func Test_HTTPGeocoder_Resolve_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/HU/1117", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"post code": "1117",
			"country": "Hungary",
			"places": [{"place name": "Budapest", "latitude": "47.4689", "longitude": "19.0508"}]
		}`))
	}))
	defer server.Close()

	geocoder := geo.NewHTTPGeocoder(geo.WithBaseURL(server.URL))

	point, err := geocoder.Resolve(t.Context(), "HU", "1117")

	require.NoError(t, err)
	require.True(t, point.IsResolved())
	assert.InDelta(t, 47.4689, point.Latitude(), 1e-9)
	assert.InDelta(t, 19.0508, point.Longitude(), 1e-9)
}

func Test_HTTPGeocoder_Resolve_UnknownPostalCodeIsUnresolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	geocoder := geo.NewHTTPGeocoder(geo.WithBaseURL(server.URL))

	point, err := geocoder.Resolve(t.Context(), "HU", "0000")

	require.NoError(t, err)
	assert.False(t, point.IsResolved())
}

func Test_HTTPGeocoder_Resolve_EmptyPlacesIsUnresolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"places": []}`))
	}))
	defer server.Close()

	geocoder := geo.NewHTTPGeocoder(geo.WithBaseURL(server.URL))

	point, err := geocoder.Resolve(t.Context(), "HU", "9999")

	require.NoError(t, err)
	assert.False(t, point.IsResolved())
}

func Test_HTTPGeocoder_Resolve_ServerErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := geo.NewHTTPGeocoder(geo.WithBaseURL(server.URL))

	_, err := geocoder.Resolve(t.Context(), "HU", "1117")

	assert.Error(t, err)
}

func Test_HTTPGeocoder_Resolve_MalformedCoordinatesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"places": [{"latitude": "not-a-number", "longitude": "19.05"}]}`))
	}))
	defer server.Close()

	geocoder := geo.NewHTTPGeocoder(geo.WithBaseURL(server.URL))

	_, err := geocoder.Resolve(t.Context(), "HU", "1117")

	assert.Error(t, err)
}

func Test_HTTPGeocoder_Resolve_RequiresAddressFields(t *testing.T) {
	geocoder := geo.NewHTTPGeocoder()

	_, err := geocoder.Resolve(t.Context(), "", "1117")
	assert.Error(t, err)

	_, err = geocoder.Resolve(t.Context(), "HU", "")
	assert.Error(t, err)
}
