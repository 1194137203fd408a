// Package metrics exposes optional Prometheus instrumentation for the
// dashboard refresh loop. It is disabled unless metrics.enabled is set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives instrumentation events from the dashboard.
type Recorder interface {
	// RecordParse reports the outcome of a plan-file parse.
	RecordParse(days, events int)
	// RecordRefresh is called once per dashboard evaluation tick.
	RecordRefresh()
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordParse(int, int) {}
func (NopRecorder) RecordRefresh()       {}

// PromRecorder records dashboard activity in Prometheus metrics.
type PromRecorder struct {
	refreshes prometheus.Counter
	days      prometheus.Gauge
	events    prometheus.Gauge
}

// NewPromRecorder registers metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartServer.
func NewPromRecorder() (Recorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "secretary_refresh_ticks_total",
		Help: "Total number of dashboard refresh ticks",
	})
	days := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "secretary_plan_days",
		Help: "Number of day blocks in the loaded plan file",
	})
	events := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "secretary_plan_events",
		Help: "Number of events in the loaded plan file",
	})

	if err := reg.Register(refreshes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			refreshes = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(days); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			days = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(events); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			events = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromRecorder{refreshes: refreshes, days: days, events: events}, nil
}

func (r *PromRecorder) RecordParse(days, events int) {
	r.days.Set(float64(days))
	r.events.Set(float64(events))
}

func (r *PromRecorder) RecordRefresh() {
	r.refreshes.Inc()
}
