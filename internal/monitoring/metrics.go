package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"careme/internal/models"
)

// MetricsCollector handles metrics collection and reporting for the
// planning engines
type MetricsCollector struct {
	registry *prometheus.Registry

	yieldConversions      *prometheus.CounterVec
	plansComputed         prometheus.Counter
	planEfficiency        prometheus.Gauge
	complianceEvaluations prometheus.Counter
	complianceIssues      *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector with its own
// registry
func NewMetricsCollector() *MetricsCollector {
	c := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		yieldConversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yield_conversions_total",
				Help: "Yield conversions computed",
			},
			[]string{"item"},
		),
		plansComputed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "prep_plans_computed_total",
				Help: "Event prep plans computed",
			},
		),
		planEfficiency: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "prep_plan_worst_day_efficiency",
				Help: "Worst per-day efficiency of the most recent prep plan; above 1.0 means over capacity",
			},
		),
		complianceEvaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "compliance_evaluations_total",
				Help: "Schedule compliance evaluations run",
			},
		),
		complianceIssues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_issues_total",
				Help: "Compliance issues found, by rule",
			},
			[]string{"rule"},
		),
	}

	c.registry.MustRegister(
		c.yieldConversions,
		c.plansComputed,
		c.planEfficiency,
		c.complianceEvaluations,
		c.complianceIssues,
	)
	return c
}

// Registry returns the underlying registry for the metrics endpoint
func (c *MetricsCollector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordYieldConversion records one completed yield conversion
func (c *MetricsCollector) RecordYieldConversion(itemID string) {
	c.yieldConversions.WithLabelValues(itemID).Inc()
}

// RecordPrepPlan records a computed prep plan and its worst day
func (c *MetricsCollector) RecordPrepPlan(counts []models.DailyPrepCount) {
	c.plansComputed.Inc()
	worst := 0.0
	for _, count := range counts {
		if count.Efficiency > worst {
			worst = count.Efficiency
		}
	}
	c.planEfficiency.Set(worst)
}

// RecordComplianceResult records an evaluation and its findings by rule
func (c *MetricsCollector) RecordComplianceResult(result models.ComplianceResult) {
	c.complianceEvaluations.Inc()
	for _, issue := range result.Issues {
		c.complianceIssues.WithLabelValues(issue.RuleID).Inc()
	}
}
