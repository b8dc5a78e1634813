package metrics

import "github.com/prometheus/client_golang/prometheus"

var RenkoTicksMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bricks_renko_ticks_total",
		Help: "number of ticks fed into the renko aggregator",
	}, []string{"symbol"})

var RenkoBricksClosedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bricks_renko_bricks_closed_total",
		Help: "number of closed renko bricks",
	}, []string{"symbol", "direction"})

var RenkoRefeedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bricks_renko_refeed_total",
		Help: "number of bricks closed by re-feeding the excess of a price gap",
	}, []string{"symbol"})

var RenkoOpenBrickPriceMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bricks_renko_open_brick_price",
		Help: "open price of the current renko brick",
	}, []string{"symbol"})

func init() {
	prometheus.MustRegister(
		RenkoTicksMetrics,
		RenkoBricksClosedMetrics,
		RenkoRefeedMetrics,
		RenkoOpenBrickPriceMetrics,
	)
}
