package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "co2_monitor"

// MonitorMetrics covers the live data pipeline: inventory refreshes, feed
// events, warnings and ledger writes.
type MonitorMetrics struct {
	RefreshTotal       *prometheus.CounterVec
	InventoryDevices   prometheus.Gauge
	FeedEventsTotal    *prometheus.CounterVec
	WarningsTotal      prometheus.Counter
	LedgerPersistTotal *prometheus.CounterVec
}

// NewMonitorMetrics creates the collectors and registers them with reg.
func NewMonitorMetrics(reg prometheus.Registerer, namespace string) *MonitorMetrics {
	m := &MonitorMetrics{
		RefreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inventory",
				Name:      "refresh_total",
				Help:      "Total number of device inventory refreshes",
			},
			[]string{"status"}, // status: success, error
		),
		InventoryDevices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "inventory",
				Name:      "devices",
				Help:      "Number of devices currently known to the inventory",
			},
		),
		FeedEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "feed",
				Name:      "events_total",
				Help:      "Total number of live feed events by outcome",
			},
			[]string{"status"}, // status: merged, unknown_device, parse_error, detached
		),
		WarningsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "feed",
				Name:      "warnings_total",
				Help:      "Total number of measurements at or above the warning threshold",
			},
		),
		LedgerPersistTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "persist_total",
				Help:      "Total number of warning ledger writes",
			},
			[]string{"status"}, // status: success, error
		),
	}

	reg.MustRegister(
		m.RefreshTotal,
		m.InventoryDevices,
		m.FeedEventsTotal,
		m.WarningsTotal,
		m.LedgerPersistTotal,
	)

	return m
}

var (
	monitorMetrics *MonitorMetrics
	monitorOnce    sync.Once
)

// Monitor returns the process wide MonitorMetrics on the global Registry.
func Monitor() *MonitorMetrics {
	monitorOnce.Do(func() {
		monitorMetrics = NewMonitorMetrics(Registry, Namespace)
	})
	return monitorMetrics
}
