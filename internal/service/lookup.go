// Package service contains the business logic layer of the application.
//
// The layering follows the usual split:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → normalizes, validates, orchestrates
//	Decoder (adapter layer)  → talks to the external decoding service
//
// The service accepts plain strings and returns domain values and apperror
// errors — it has zero knowledge of HTTP, so the same logic could serve a
// CLI tool or a batch job unchanged.
package service

import (
	"context"
	"log/slog"

	"github.com/rs/xid"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/model"
	"github.com/sakif/vin-lookup/internal/vin"
)

// VinDecoder is what the service needs from the decode adapter. Defined here,
// at the consumer, so tests can substitute a mock without touching the real
// NHTSA client.
type VinDecoder interface {
	Decode(ctx context.Context, vinCode string) (*model.Vehicle, error)
}

// LookupService orchestrates one VIN lookup: normalize, validate, decode.
type LookupService struct {
	decoder VinDecoder
	logger  *slog.Logger
}

func NewLookupService(decoder VinDecoder, logger *slog.Logger) *LookupService {
	return &LookupService{
		decoder: decoder,
		logger:  logger,
	}
}

// Decode runs the lookup for a raw user-supplied VIN and returns the
// normalized VIN (echoed back to the client) together with the vehicle.
//
// Validation here is authoritative: the browser runs the same check for fast
// feedback, but its result is never trusted. An invalid VIN is rejected
// before the decoder — and therefore before any network call — is involved.
func (s *LookupService) Decode(ctx context.Context, raw string) (string, *model.Vehicle, error) {
	lookupID := xid.New().String()

	cleaned := vin.Normalize(raw)
	if !vin.Validate(cleaned) {
		s.logger.Info("VIN rejected",
			slog.String("lookup_id", lookupID),
			slog.Int("length", len(cleaned)),
		)
		return "", nil, apperror.ValidationFailed("vin", "Ugyldigt VIN (tjek længde/tegn)")
	}

	vehicle, err := s.decoder.Decode(ctx, cleaned)
	if err != nil {
		// The decoder already classified the error (validation, upstream,
		// upstream-empty); log it and let it propagate to the handler.
		s.logger.Warn("VIN decode failed",
			slog.String("lookup_id", lookupID),
			slog.String("vin", cleaned),
			slog.String("error", err.Error()),
		)
		return "", nil, err
	}

	s.logger.Info("VIN decoded",
		slog.String("lookup_id", lookupID),
		slog.String("vin", cleaned),
	)

	return cleaned, vehicle, nil
}
