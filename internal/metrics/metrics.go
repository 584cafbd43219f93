package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	CryptRequests   *prometheus.CounterVec
	CryptErrors     *prometheus.CounterVec
	CryptCharacters *prometheus.CounterVec
	CryptDurations  *prometheus.HistogramVec

	KeyOperations *prometheus.CounterVec

	WheelsetSearches  prometheus.Counter
	WheelsetErrors    prometheus.Counter
	WheelsetMatches   prometheus.Counter
	WheelsetDurations prometheus.Histogram

	KeyRepositorySize     prometheus.Gauge
	KeyCacheSize          prometheus.Gauge
	MessageRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		CryptRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "crypt_requests_total",
			Help: "The total number of successfully processed messages",
		}, []string{"direction"}),
		CryptErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "crypt_errors_total",
			Help: "The total number of messages that could not be processed",
		}, []string{"direction"}),
		CryptCharacters: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "crypt_characters_total",
			Help: "The total number of characters passed through the machine",
		}, []string{"direction"}),
		CryptDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "crypt_duration_seconds",
			Help: "Duration of message processing",
		}, []string{"direction"}),
		KeyOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "key_operations_total",
			Help: "The total number of successful key changes",
		}, []string{"operation"}),
		WheelsetSearches: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "wheelset_searches_total",
			Help: "The total number of completed wheelsetting searches",
		}),
		WheelsetErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "wheelset_errors_total",
			Help: "The total number of failed or aborted wheelsetting searches",
		}),
		WheelsetMatches: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "wheelset_matches_total",
			Help: "The total number of indicators recovered by wheelsetting searches",
		}),
		WheelsetDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "wheelset_duration_seconds",
			Help:    "Duration of wheelsetting searches",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		KeyRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_keys_size",
			Help: "The number of keys stored in the repository",
		}),
		KeyCacheSize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "cache_keys_size",
			Help: "The number of keys held in memory",
		}),
		MessageRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_messages_size",
			Help: "The number of messages kept in the journal",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := c.observers
	c.mutex.Unlock()
	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
