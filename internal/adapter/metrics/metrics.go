package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PlaybackMetrics holds all Prometheus metrics for the playback service.
type PlaybackMetrics struct {
	TranslationsTotal     *prometheus.CounterVec
	TranslateDuration     prometheus.Histogram
	NarrationCacheHits    prometheus.Counter
	NarrationCacheMisses  prometheus.Counter
	ReplayFramesTotal     prometheus.Counter
	NarrationsPrecomputed prometheus.Counter
	APIKeyCacheHits       prometheus.Counter
	APIKeyCacheMisses     prometheus.Counter
}

// NewPlaybackMetrics initializes and registers the Prometheus metrics.
func NewPlaybackMetrics() *PlaybackMetrics {
	return &PlaybackMetrics{
		TranslationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "translate",
			Name:      "events_total",
			Help:      "Total number of event codes translated, by category.",
		}, []string{"category"}), // category: S, D, HR, K, ..., unrecognized
		TranslateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "playback",
			Subsystem: "translate",
			Name:      "duration_seconds",
			Help:      "Time spent parsing and rendering one event code.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}),
		NarrationCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "cache",
			Name:      "narration_hits_total",
			Help:      "Total number of narration cache hits.",
		}),
		NarrationCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "cache",
			Name:      "narration_misses_total",
			Help:      "Total number of narration cache misses.",
		}),
		ReplayFramesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "replay",
			Name:      "frames_total",
			Help:      "Total number of replay frames streamed to clients.",
		}),
		NarrationsPrecomputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "narrator",
			Name:      "narrations_precomputed_total",
			Help:      "Total number of narrations written by the precompute worker.",
		}),
		APIKeyCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "auth",
			Name:      "api_key_cache_hits_total",
			Help:      "Total number of API key cache hits.",
		}),
		APIKeyCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "playback",
			Subsystem: "auth",
			Name:      "api_key_cache_misses_total",
			Help:      "Total number of API key cache misses.",
		}),
	}
}
