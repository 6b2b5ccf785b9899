//go:build cosmosdebug

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_InvalidSubSeedPanics(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	snap, _ := nav.Inspect(42, 0)
	snap.Seed = 0

	require.True(t, nav.TravelTo(snap, 1))
	assert.Panics(t, func() { settle(t, nav) })
}
