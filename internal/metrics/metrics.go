// Package metrics records operational counters for the decode pipeline.
//
// The decoder talks to a Sink interface rather than prometheus directly, so
// tests run with NopSink and production wires in PromSink. Exposure happens
// via the /metrics endpoint registered in internal/server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcomes, used as the label on the request counter.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidVin    = "invalid_vin"
	OutcomeUpstreamError = "upstream_error"
	OutcomeUpstreamEmpty = "upstream_empty"
)

// Sink receives decode pipeline events.
type Sink interface {
	RecordDecode(outcome string)
	RecordCacheHit()
}

// NopSink discards all events. Used in tests and as a safe default.
type NopSink struct{}

func (NopSink) RecordDecode(string) {}
func (NopSink) RecordCacheHit()     {}

// PromSink records decode events as Prometheus metrics.
type PromSink struct {
	decodes   *prometheus.CounterVec
	cacheHits prometheus.Counter
}

// NewPromSink registers the decode metrics on the provided registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	decodes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vin_decode_requests_total",
		Help: "Total number of VIN decode requests by outcome",
	}, []string{"outcome"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vin_decode_cache_hits_total",
		Help: "Decode requests served from the response cache",
	})

	if err := reg.Register(decodes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			decodes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(cacheHits); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cacheHits = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &PromSink{decodes: decodes, cacheHits: cacheHits}, nil
}

// RecordDecode increments the outcome counter for one decode request.
func (s *PromSink) RecordDecode(outcome string) {
	s.decodes.WithLabelValues(outcome).Inc()
}

// RecordCacheHit increments the cache hit counter.
func (s *PromSink) RecordCacheHit() {
	s.cacheHits.Inc()
}
