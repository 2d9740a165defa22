package parse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1parse_parses_total",
			Help: "Total number of element strings parsed",
		},
		[]string{"engine", "status"}, // engine: fast, solver, beam, none
	)

	diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1parse_diagnostics_total",
			Help: "Total number of parse diagnostics by code",
		},
		[]string{"code"},
	)

	elementsPerParse = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1parse_elements_per_parse",
			Help:    "Number of decoded elements per parse",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 8, 12, 20},
		},
	)

	parseConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1parse_confidence",
			Help:    "Confidence of the returned best parse",
			Buckets: []float64{0, 0.25, 0.5, 0.7, 0.8, 0.9, 0.95, 1},
		},
	)

	beamRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1parse_beam_rounds",
			Help:    "Beam search rounds per no-separator parse",
			Buckets: []float64{1, 2, 4, 6, 8, 10, 15, 20},
		},
	)
)

func observeParse(engine string, res *Result) {
	status := "ok"
	if len(res.Elements) == 0 {
		status = "empty"
	}
	parsesTotal.WithLabelValues(engine, status).Inc()
	elementsPerParse.Observe(float64(len(res.Elements)))
	parseConfidence.Observe(res.Confidence)
	for _, d := range res.Diagnostics {
		diagnosticsTotal.WithLabelValues(string(d.Code)).Inc()
	}
}

func observeBeamRounds(n int) {
	beamRounds.Observe(float64(n))
}
