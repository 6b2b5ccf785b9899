package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-cosmos/autopilot"
	"github.com/lixenwraith/vi-cosmos/config"
	"github.com/lixenwraith/vi-cosmos/cosmos"
	"github.com/lixenwraith/vi-cosmos/generator"
)

var _ cosmos.Observer = (*Collector)(nil)

func TestCollector_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveGeneration(generator.TierGalaxy, 300, 2*time.Millisecond)
	c.ObserveGeneration(generator.TierGalaxy, 200, time.Millisecond)
	c.ObserveTransition(generator.TierUniverse, generator.TierGalaxy)
	c.ObserveAutopilotAction(autopilot.ActionGoBack)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.generations.WithLabelValues("galaxy")))
	assert.Equal(t, 200.0, testutil.ToFloat64(c.bodies.WithLabelValues("galaxy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("universe", "galaxy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.actions.WithLabelValues("go_back")))

	expected := `
# HELP cosmos_autopilot_actions_total Actions issued by the autopilot.
# TYPE cosmos_autopilot_actions_total counter
cosmos_autopilot_actions_total{action="go_back"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "cosmos_autopilot_actions_total"))
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)
	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestCollector_ObservesSimulation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.StarCount = 1000
	cfg.GalaxyStarCount = 200
	sim, err := cosmos.New(cfg, nil, c)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.generations.WithLabelValues("universe")))

	require.True(t, sim.TravelTo(0))
	for i := 0; i < 100 && sim.Navigator().Transitioning(); i++ {
		sim.Step(100 * time.Millisecond)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("universe", "galaxy")))
	assert.Equal(t, 200.0, testutil.ToFloat64(c.bodies.WithLabelValues("galaxy")))
}
