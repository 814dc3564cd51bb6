//go:build unit

package metrics_test

import (
	"strings"
	"testing"

	"bookmyvenue/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePool struct{ acquired, idle int32 }

func (p fakePool) AcquiredConns() int32 { return p.acquired }
func (p fakePool) IdleConns() int32     { return p.idle }
func (p fakePool) TotalConns() int32    { return p.acquired + p.idle }

func TestWatchPool(t *testing.T) {
	m := metrics.New()
	current := fakePool{acquired: 3, idle: 2}
	m.WatchPool(func() metrics.PoolStats { return current })

	expected := `
# HELP db_pool_acquired_conns Connections currently in use
# TYPE db_pool_acquired_conns gauge
db_pool_acquired_conns 3
# HELP db_pool_total_conns Open connections
# TYPE db_pool_total_conns gauge
db_pool_total_conns 5
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"db_pool_acquired_conns", "db_pool_total_conns"))

	current = fakePool{acquired: 0, idle: 1}
	n, err := testutil.GatherAndCount(m.Registry, "db_pool_idle_conns")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountersArePerInstance(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.TrackBookingRequest(metrics.ResultAccepted)
	a.TrackTransition("cancel", "ok")

	assert.InDelta(t, 1, testutil.ToFloat64(a.BookingRequests().WithLabelValues(metrics.ResultAccepted)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.BookingRequests().WithLabelValues(metrics.ResultAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(a.BookingTransitions().WithLabelValues("cancel", "ok")), 0)
}
