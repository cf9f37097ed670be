package consumers

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchIsHealthyWithoutSignals(t *testing.T) {
	require.True(t, searchIsHealthy(nil))
	require.True(t, searchIsHealthy([]*atomic.Bool{}))
}

func TestSearchIsHealthyFollowsSignal(t *testing.T) {
	healthy := &atomic.Bool{}
	healthy.Store(true)
	require.True(t, searchIsHealthy([]*atomic.Bool{healthy}))

	healthy.Store(false)
	require.False(t, searchIsHealthy([]*atomic.Bool{healthy}))
}

func TestSearchIsHealthyAnyDownSignalWins(t *testing.T) {
	up := &atomic.Bool{}
	up.Store(true)
	down := &atomic.Bool{}

	require.False(t, searchIsHealthy([]*atomic.Bool{up, down}))
}
