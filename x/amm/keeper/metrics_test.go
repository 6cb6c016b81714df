package keeper_test

import (
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestMetricsTrackCommittedState verifies the Prometheus counters and gauges
// follow executed operations. Counters accumulate across the process, so the
// assertions work on deltas.
func (s *KeeperTestSuite) TestMetricsTrackCommittedState() {
	metrics := keeper.GetAMMMetrics()
	direction := types.PrimaryToSecondary.String()
	swapsBefore := ptestutil.ToFloat64(metrics.SwapsTotal.WithLabelValues(direction))
	volumeBefore := ptestutil.ToFloat64(metrics.SwapVolume.WithLabelValues(direction))
	lpFeesBefore := ptestutil.ToFloat64(metrics.SwapFeesCollected.WithLabelValues("lp"))

	s.addLiquidity(100_000, 100_000)
	res, err := s.keeper.Swap(s.ctx, s.trader, 1000, types.PrimaryToSecondary)
	s.Require().NoError(err)

	s.Equal(swapsBefore+1, ptestutil.ToFloat64(metrics.SwapsTotal.WithLabelValues(direction)))
	s.Equal(volumeBefore+1000, ptestutil.ToFloat64(metrics.SwapVolume.WithLabelValues(direction)))
	s.Equal(lpFeesBefore+float64(res.LpFee), ptestutil.ToFloat64(metrics.SwapFeesCollected.WithLabelValues("lp")))

	// gauges mirror the committed pool record
	pool := s.pool()
	s.Equal(float64(pool.PrimaryReserve), ptestutil.ToFloat64(metrics.PoolReserves.WithLabelValues("primary")))
	s.Equal(float64(pool.SecondaryReserve), ptestutil.ToFloat64(metrics.PoolReserves.WithLabelValues("secondary")))
	s.Equal(float64(pool.IssuedLPUnits()), ptestutil.ToFloat64(metrics.LPUnitsIssued))
}
