package decoder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/metrics"
)

const testVin = "W0L0AHM75B2123456"

// fakeNHTSA runs an httptest server that answers like the NHTSA API and
// counts how many requests it has seen.
type fakeNHTSA struct {
	srv      *httptest.Server
	requests int
	status   int
	rows     []map[string]any
}

func newFakeNHTSA(t *testing.T, status int, rows []map[string]any) *fakeNHTSA {
	t.Helper()
	f := &fakeNHTSA{status: status, rows: rows}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Count":   len(f.rows),
			"Results": f.rows,
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := Config{
		BaseURL:           baseURL,
		Timeout:           5 * time.Second,
		CacheTTL:          time.Minute,
		RequestsPerSecond: 1000,
		Burst:             1000,
	}
	return New(cfg, metrics.NopSink{}, logger)
}

func TestDecodeRejectsInvalidVinBeforeNetwork(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, nil)
	c := newTestClient(upstream.srv.URL)

	tests := []string{"", "TOO_SHORT", "W0L0AHM75B212345I", "w0l0ahm75b2123456"}
	for _, bad := range tests {
		_, err := c.Decode(context.Background(), bad)
		assert.ErrorIs(t, err, apperror.ErrValidation, "vin %q", bad)
	}

	assert.Equal(t, 0, upstream.requests, "invalid VINs must never reach the upstream")
}

func TestDecodeMapsFields(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{{
		"Make":            "SAAB",
		"Model":           "9-5",
		"ModelYear":       "2011",
		"DisplacementL":   "2.0",
		"EngineCylinders": "4",
		"EngineModel":     "A20DTH",
		"FuelTypePrimary": "Diesel",
		"PlantCountry":    "Sweden",
	}})
	c := newTestClient(upstream.srv.URL)

	v, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)

	require.NotNil(t, v.Make)
	assert.Equal(t, "SAAB", *v.Make)
	require.NotNil(t, v.Model)
	assert.Equal(t, "9-5", *v.Model)
	require.NotNil(t, v.Year)
	assert.Equal(t, 2011, *v.Year)
	require.NotNil(t, v.Engine)
	assert.Equal(t, "2.0L 4 cyl A20DTH", *v.Engine)
	require.NotNil(t, v.Fuel)
	assert.Equal(t, "Diesel", *v.Fuel)
	require.NotNil(t, v.Country)
	assert.Equal(t, "Sweden", *v.Country)
}

func TestDecodeEngineSynthesis(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]any
		want *string
	}{
		{
			name: "cc fallback when liters missing, no unit suffix",
			row:  map[string]any{"DisplacementCC": "1998", "EngineCylinders": "4"},
			want: str("1998 4 cyl"),
		},
		{
			name: "liters without decimal point passes through",
			row:  map[string]any{"DisplacementL": "2"},
			want: str("2"),
		},
		{
			name: "engine model only",
			row:  map[string]any{"EngineModel": "EA288"},
			want: str("EA288"),
		},
		{
			name: "no engine fields means unknown",
			row:  map[string]any{"Make": "VW"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{tt.row})
			c := newTestClient(upstream.srv.URL)

			v, err := c.Decode(context.Background(), testVin)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, v.Engine)
			} else {
				require.NotNil(t, v.Engine)
				assert.Equal(t, *tt.want, *v.Engine)
			}
		})
	}
}

func TestDecodeFuelPriority(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{{
		"FuelTypePrimary":     "0",
		"FuelTypePrimaryDesc": "Diesel",
		"FuelTypeSecondary":   "Gasoline",
	}})
	c := newTestClient(upstream.srv.URL)

	v, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)
	require.NotNil(t, v.Fuel)
	assert.Equal(t, "Diesel", *v.Fuel, "primary code is a sentinel, desc wins over secondary")
}

func TestDecodeCountryFallback(t *testing.T) {
	// Both country-ish fields meaningless: the fixed label, never null.
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{{
		"Make":         "SAAB",
		"PlantCountry": "Not Applicable",
		"Manufacturer": "0",
	}})
	c := newTestClient(upstream.srv.URL)

	v, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)
	require.NotNil(t, v.Country)
	assert.Equal(t, FallbackCountry, *v.Country)
}

func TestDecodeManufacturerFallback(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{{
		"PlantCountry": "",
		"Manufacturer": "SAAB AUTOMOBILE AB",
	}})
	c := newTestClient(upstream.srv.URL)

	v, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)
	require.NotNil(t, v.Country)
	assert.Equal(t, "SAAB AUTOMOBILE AB", *v.Country)
}

func TestDecodeUpstreamError(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusServiceUnavailable, nil)
	c := newTestClient(upstream.srv.URL)

	_, err := c.Decode(context.Background(), testVin)
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.EqualError(t, err, "NHTSA fejl: 503")
	assert.Equal(t, 1, upstream.requests, "no retries on upstream failure")
}

func TestDecodeUpstreamEmpty(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{})
	c := newTestClient(upstream.srv.URL)

	_, err := c.Decode(context.Background(), testVin)
	assert.ErrorIs(t, err, apperror.ErrUpstreamEmpty)
	assert.EqualError(t, err, "NHTSA svarede uden Results")
}

func TestDecodeCachesByVin(t *testing.T) {
	upstream := newFakeNHTSA(t, http.StatusOK, []map[string]any{{
		"Make": "SAAB",
	}})
	c := newTestClient(upstream.srv.URL)

	first, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)
	second, err := c.Decode(context.Background(), testVin)
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.requests, "second lookup must be served from cache")
	assert.Equal(t, first, second)
}

func str(s string) *string { return &s }
