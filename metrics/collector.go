// Package metrics exports simulation events as prometheus collectors
package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/vi-cosmos/autopilot"
	"github.com/lixenwraith/vi-cosmos/generator"
)

const namespace = "cosmos"

// Collector observes a simulation and updates its prometheus series
type Collector struct {
	generations *prometheus.CounterVec
	genSeconds  *prometheus.HistogramVec
	bodies      *prometheus.GaugeVec
	transitions *prometheus.CounterVec
	actions     *prometheus.CounterVec
}

// NewCollector creates the series and registers them on reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Populations generated, by tier.",
		}, []string{"tier"}),
		genSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one generator pass.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"tier"}),
		bodies: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population_bodies",
			Help:      "Body count of the last population generated per tier.",
		}, []string{"tier"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Completed scale transitions.",
		}, []string{"from", "to"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "autopilot_actions_total",
			Help:      "Actions issued by the autopilot.",
		}, []string{"action"}),
	}

	for _, col := range []prometheus.Collector{c.generations, c.genSeconds, c.bodies, c.transitions, c.actions} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) ObserveGeneration(tier generator.Tier, bodies int, elapsed time.Duration) {
	label := tierLabel(tier)
	c.generations.WithLabelValues(label).Inc()
	c.genSeconds.WithLabelValues(label).Observe(elapsed.Seconds())
	c.bodies.WithLabelValues(label).Set(float64(bodies))
}

func (c *Collector) ObserveTransition(from, to generator.Tier) {
	c.transitions.WithLabelValues(tierLabel(from), tierLabel(to)).Inc()
}

func (c *Collector) ObserveAutopilotAction(action autopilot.Action) {
	c.actions.WithLabelValues(action.String()).Inc()
}

func tierLabel(t generator.Tier) string {
	return strings.ToLower(t.String())
}
