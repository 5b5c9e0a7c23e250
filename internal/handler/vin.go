// Package handler contains the HTTP request handlers.
//
// Handlers are the glue between HTTP and the application: they parse the
// request, call a service, and write the response. Business rules (what makes
// a VIN valid, how upstream failures are classified) live below this layer.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/model"
)

// VinLookup is what the handler needs from the lookup service.
type VinLookup interface {
	Decode(ctx context.Context, raw string) (string, *model.Vehicle, error)
}

// VinHandler serves the VIN decode endpoint.
type VinHandler struct {
	lookup VinLookup
	logger *slog.Logger
}

func NewVinHandler(lookup VinLookup, logger *slog.Logger) *VinHandler {
	return &VinHandler{lookup: lookup, logger: logger}
}

type vinRequest struct {
	Vin string `json:"vin"`
}

// vinResponse is the success shape for a decode.
type vinResponse struct {
	OK      bool           `json:"ok"`
	Vin     string         `json:"vin"`
	Message string         `json:"message"`
	Vehicle *model.Vehicle `json:"vehicle"`
}

// HandleDecode decodes a VIN.
//
// HTTP: POST /api/vin
// REQUEST BODY: {"vin": "W0L0AHM75B2123456"}
//
// Responses: 200 with the vehicle, 400 on a malformed VIN or body, 502 when
// the decoding service fails or answers empty, 500 otherwise. Non-POST
// methods never reach this handler — the router answers 405 for those, which
// is documented, expected behaviour.
func (h *VinHandler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var req vinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid VIN request body", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "Ugyldig JSON-body"))
		return
	}

	cleaned, vehicle, err := h.lookup.Decode(r.Context(), req.Vin)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, vinResponse{
		OK:      true,
		Vin:     cleaned,
		Message: "VIN er gyldigt",
		Vehicle: vehicle,
	})
}
