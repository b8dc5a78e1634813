package metrics

import "github.com/prometheus/client_golang/prometheus"

var BollingerBandMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bricks_bollinger_band",
		Help: "latest bollinger band values",
	}, []string{"symbol", "indicator", "band"})

var IndicatorReadyMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bricks_indicator_ready",
		Help: "1 when the indicator has observed enough samples",
	}, []string{"symbol", "indicator"})

func init() {
	prometheus.MustRegister(BollingerBandMetrics, IndicatorReadyMetrics)
}

// UpdateBollingerMetrics records one band update of the named indicator.
func UpdateBollingerMetrics(symbol, name string, ready bool, mid, upBand, downBand float64) {
	readyValue := 0.0
	if ready {
		readyValue = 1.0
	}
	IndicatorReadyMetrics.WithLabelValues(symbol, name).Set(readyValue)

	if !ready {
		return
	}

	BollingerBandMetrics.WithLabelValues(symbol, name, "middle").Set(mid)
	BollingerBandMetrics.WithLabelValues(symbol, name, "upper").Set(upBand)
	BollingerBandMetrics.WithLabelValues(symbol, name, "lower").Set(downBand)
}
