package monitoring

import (
	"testing"
	"time"

	"careme/internal/models"
)

func TestNewMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()
	if collector == nil {
		t.Fatal("NewMetricsCollector() returned nil")
	}
	if collector.Registry() == nil {
		t.Fatal("collector has no registry")
	}
}

func TestRecordersFeedTheRegistry(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordYieldConversion("cabbage")
	collector.RecordPrepPlan([]models.DailyPrepCount{
		{Date: time.Now(), Course: 1, TotalTimeRequired: 600, Efficiency: 1.25},
		{Date: time.Now(), Course: 2, TotalTimeRequired: 200, Efficiency: 0.4},
	})
	collector.RecordComplianceResult(models.ComplianceResult{
		Issues: []models.ComplianceIssue{
			{RuleID: models.RuleRestPeriod},
			{RuleID: models.RuleRestPeriod},
			{RuleID: models.RuleWeeklyOvertime},
		},
	})

	families, err := collector.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	found := map[string]bool{}
	for _, fam := range families {
		found[fam.GetName()] = true
	}
	for _, name := range []string{
		"yield_conversions_total",
		"prep_plans_computed_total",
		"prep_plan_worst_day_efficiency",
		"compliance_evaluations_total",
		"compliance_issues_total",
	} {
		if !found[name] {
			t.Errorf("metric %s not gathered", name)
		}
	}
}
