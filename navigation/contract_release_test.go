//go:build !cosmosdebug

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

func TestNavigator_InvalidSubSeedDefaults(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	snap, _ := nav.Inspect(42, 0)
	snap.Seed = 0

	require.True(t, nav.TravelTo(snap, 1))
	settle(t, nav)
	assert.Equal(t, generator.TierGalaxy, nav.Level())
	assert.Equal(t, []uint64{vmath.SubSeed(1337, 42)}, f.seeds)
}
