package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// AMMMetrics holds all Prometheus metrics for the amm module
type AMMMetrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	LPUnitsIssued    prometheus.Gauge
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers amm metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			// Swap metrics
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"direction"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"direction"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees collected by recipient share",
				},
				[]string{"share"},
			),

			// Liquidity metrics
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited by reserve side",
				},
				[]string{"side"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn by reserve side",
				},
				[]string{"side"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "pool_reserves",
					Help:      "Current pool reserves by side",
				},
				[]string{"side"},
			),
			LPUnitsIssued: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "lp_units_issued",
					Help:      "LP units currently issued to providers",
				},
			),
		}
	})
	return ammMetrics
}

// GetAMMMetrics returns the singleton amm metrics instance
func GetAMMMetrics() *AMMMetrics {
	if ammMetrics == nil {
		return NewAMMMetrics()
	}
	return ammMetrics
}

// recordPoolGauges refreshes the gauges derived from the committed pool
// record.
func (m *AMMMetrics) recordPoolGauges(pool types.PoolState) {
	m.PoolReserves.WithLabelValues("primary").Set(float64(pool.PrimaryReserve))
	m.PoolReserves.WithLabelValues("secondary").Set(float64(pool.SecondaryReserve))
	m.LPUnitsIssued.Set(float64(pool.IssuedLPUnits()))
}
