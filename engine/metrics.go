package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors. A nil registerer is
// accepted: collectors are created but never registered, which keeps
// instrumentation out of the way in tests and library use.
type Metrics struct {
	DocumentsProcessed     prometheus.Counter
	ConceptsExtracted      prometheus.Counter
	RelationshipsExtracted prometheus.Counter
	AnalyzeDuration        prometheus.Histogram
	ValidationIssues       *prometheus.GaugeVec
	ExportsTotal           *prometheus.CounterVec
}

// NewMetrics creates the engine collectors, registering them when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "documents_processed_total",
			Help:      "Documents consumed by corpus analysis.",
		}),
		ConceptsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "concepts_extracted_total",
			Help:      "Concepts produced by extraction runs.",
		}),
		RelationshipsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "relationships_extracted_total",
			Help:      "Relationships produced by extraction runs.",
		}),
		AnalyzeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ontograph",
			Name:      "analyze_duration_seconds",
			Help:      "Wall time of full corpus analysis runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		ValidationIssues: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ontograph",
			Name:      "validation_issues",
			Help:      "Issue counts from the most recent validation run.",
		}, []string{"category"}),
		ExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "exports_total",
			Help:      "Completed RDF exports by format.",
		}, []string{"format"}),
	}
}
