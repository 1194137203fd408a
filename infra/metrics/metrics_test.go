package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestPromRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorderWithRegistry(reg)
	assert.NoError(t, err)

	rec.RecordParse(3, 12)
	rec.RecordRefresh()
	rec.RecordRefresh()

	mfs, err := reg.Gather()
	assert.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				got[mf.GetName()] = c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				got[mf.GetName()] = g.GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, got["secretary_refresh_ticks_total"])
	assert.Equal(t, 3.0, got["secretary_plan_days"])
	assert.Equal(t, 12.0, got["secretary_plan_events"])
}

func TestPromRecorderDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromRecorderWithRegistry(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := NewPromRecorderWithRegistry(reg); err != nil {
		t.Fatalf("second register should reuse collectors: %v", err)
	}
}
