package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/handler"
	"github.com/sakif/vin-lookup/internal/model"
	"github.com/sakif/vin-lookup/internal/service"
)

// MockDecoder stands in for the NHTSA adapter. The handler tests run the
// real LookupService on top of it, so validation behaves end to end.
type MockDecoder struct {
	ReturnVeh *model.Vehicle
	ReturnErr error
}

func (m *MockDecoder) Decode(ctx context.Context, vinCode string) (*model.Vehicle, error) {
	if m.ReturnErr != nil {
		return nil, m.ReturnErr
	}
	return m.ReturnVeh, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newVinHandler(dec *MockDecoder) *handler.VinHandler {
	logger := testLogger()
	return handler.NewVinHandler(service.NewLookupService(dec, logger), logger)
}

func postVin(t *testing.T, h *handler.VinHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/vin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.HandleDecode(rr, req)
	return rr
}

func TestHandleDecode(t *testing.T) {
	t.Run("valid VIN", func(t *testing.T) {
		mk := "SAAB"
		country := "Sweden"
		h := newVinHandler(&MockDecoder{ReturnVeh: &model.Vehicle{Make: &mk, Country: &country}})

		rr := postVin(t, h, `{"vin":"w0l0ahm75b2123456"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			OK      bool           `json:"ok"`
			Vin     string         `json:"vin"`
			Message string         `json:"message"`
			Vehicle *model.Vehicle `json:"vehicle"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.True(t, res.OK)
		assert.Equal(t, "W0L0AHM75B2123456", res.Vin, "VIN is echoed back normalized")
		assert.Equal(t, "VIN er gyldigt", res.Message)
		require.NotNil(t, res.Vehicle)
		require.NotNil(t, res.Vehicle.Make)
		assert.Equal(t, "SAAB", *res.Vehicle.Make)
	})

	t.Run("too short VIN", func(t *testing.T) {
		h := newVinHandler(&MockDecoder{})

		rr := postVin(t, h, `{"vin":"TOO_SHORT"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.False(t, res.OK)
		assert.Equal(t, "Ugyldigt VIN (tjek længde/tegn)", res.Error)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		h := newVinHandler(&MockDecoder{})

		rr := postVin(t, h, `{"vin":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		h := newVinHandler(&MockDecoder{ReturnErr: apperror.Upstream("NHTSA fejl: 503")})

		rr := postVin(t, h, `{"vin":"W0L0AHM75B2123456"}`)

		assert.Equal(t, http.StatusBadGateway, rr.Code)

		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.False(t, res.OK)
		assert.Equal(t, "NHTSA fejl: 503", res.Error)
	})

	t.Run("upstream empty result", func(t *testing.T) {
		h := newVinHandler(&MockDecoder{ReturnErr: apperror.UpstreamEmpty("NHTSA svarede uden Results")})

		rr := postVin(t, h, `{"vin":"W0L0AHM75B2123456"}`)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("unexpected error is a generic 500", func(t *testing.T) {
		h := newVinHandler(&MockDecoder{ReturnErr: assert.AnError})

		rr := postVin(t, h, `{"vin":"W0L0AHM75B2123456"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Serverfejl", res.Error, "internal details must not leak")
	})
}
