// Package decoder is the adapter around the external NHTSA VIN decoding
// service. It owns the one outbound dependency this application has.
//
// RESPONSIBILITIES:
// 1. Refuse invalid VINs before any network traffic happens
// 2. Serve repeated lookups for the same VIN from a 24h cache
// 3. Make exactly one GET per cache miss — no retries, no backoff; a
//    transient upstream failure is surfaced to the caller as an error
// 4. Map the vendor-specific response row into a normalized model.Vehicle
//
// The cache is a policy, not a correctness requirement: staleness inside the
// window is acceptable, there is no invalidation, and two concurrent misses
// for the same VIN may both hit the upstream (no single-flight dedup).
package decoder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/metrics"
	"github.com/sakif/vin-lookup/internal/model"
	"github.com/sakif/vin-lookup/internal/vin"
)

// DefaultBaseURL is the NHTSA vPIC API root. Overridable in config, which is
// also how tests point the client at an httptest server.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

// FallbackCountry is the display default used when neither plant country nor
// manufacturer yields a meaningful value. A deliberate UX choice inherited
// from the product: the region chip in the UI should never be blank.
const FallbackCountry = "Europa"

// Config holds the decoder's tunables.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerSecond float64 // outbound rate limit towards NHTSA
	Burst             int
}

// DefaultConfig returns production defaults: the public NHTSA endpoint, a
// 10s request timeout, the 24h cache window and a polite outbound rate.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           10 * time.Second,
		CacheTTL:          24 * time.Hour,
		RequestsPerSecond: 5,
		Burst:             5,
	}
}

// Client decodes VINs against the NHTSA service.
type Client struct {
	http    *resty.Client
	cache   *gocache.Cache
	limiter *rate.Limiter
	sink    metrics.Sink
	logger  *slog.Logger
}

// New creates a decoder client. sink may be metrics.NopSink{} when metrics
// are not wanted (tests).
func New(cfg Config, sink metrics.Sink, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:    httpClient,
		cache:   gocache.New(cfg.CacheTTL, cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		sink:    sink,
		logger:  logger,
	}
}

// decodeResponse is the slice of the NHTSA payload we actually read.
// Field values are decoded as `any` because the vendor is not consistent
// about types — normalization handles whatever arrives.
type decodeResponse struct {
	Results []map[string]any `json:"Results"`
}

// Decode looks up a VIN and returns the normalized vehicle record.
//
// The VIN must already be normalized (trimmed, upper-cased); Decode is the
// authoritative validation point regardless of what the browser checked.
// Errors are apperror values: validation (bad VIN), upstream (non-success
// status or unreachable), upstream-empty (no usable result row).
func (c *Client) Decode(ctx context.Context, vinCode string) (*model.Vehicle, error) {
	if !vin.Validate(vinCode) {
		c.sink.RecordDecode(metrics.OutcomeInvalidVin)
		return nil, apperror.ValidationFailed("vin", "Ugyldigt VIN (tjek længde/tegn)")
	}

	if cached, ok := c.cache.Get(vinCode); ok {
		c.sink.RecordCacheHit()
		c.sink.RecordDecode(metrics.OutcomeOK)
		return cached.(*model.Vehicle), nil
	}

	// Rate-limiter wait is context-aware: if the caller gives up, we stop
	// queueing for an upstream slot.
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for decode slot: %w", err)
	}

	var result decodeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("vin", vinCode).
		SetQueryParam("format", "json").
		SetResult(&result).
		Get("/vehicles/DecodeVinValuesExtended/{vin}")
	if err != nil {
		c.logger.Error("NHTSA request failed",
			slog.String("vin", vinCode),
			slog.String("error", err.Error()),
		)
		c.sink.RecordDecode(metrics.OutcomeUpstreamError)
		return nil, apperror.Upstream("NHTSA utilgængelig")
	}
	if resp.IsError() {
		c.logger.Warn("NHTSA returned non-success status",
			slog.String("vin", vinCode),
			slog.Int("status", resp.StatusCode()),
		)
		c.sink.RecordDecode(metrics.OutcomeUpstreamError)
		return nil, apperror.Upstream(fmt.Sprintf("NHTSA fejl: %d", resp.StatusCode()))
	}

	if len(result.Results) == 0 {
		c.sink.RecordDecode(metrics.OutcomeUpstreamEmpty)
		return nil, apperror.UpstreamEmpty("NHTSA svarede uden Results")
	}

	vehicle := mapRow(result.Results[0])
	c.cache.SetDefault(vinCode, vehicle)
	c.sink.RecordDecode(metrics.OutcomeOK)

	c.logger.Debug("VIN decoded",
		slog.String("vin", vinCode),
	)

	return vehicle, nil
}
