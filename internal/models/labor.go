package models

import (
	"fmt"
	"time"
)

// ShiftRow represents one scheduled shift as the scheduler edits it.
// Start and End are clock times ("15:04"); an End at or before Start
// means the shift runs past midnight into the next day. PostedAt, when
// the scheduling system supplies it, is the time this row was last
// published or changed and drives predictive-notice evaluation.
type ShiftRow struct {
	EmployeeID string     `json:"employee_id" yaml:"employee_id"`
	Date       time.Time  `json:"date" yaml:"date"`
	Start      string     `json:"start" yaml:"start"`
	End        string     `json:"end" yaml:"end"`
	LeaveType  string     `json:"leave_type,omitempty" yaml:"leave_type,omitempty"`
	Position   string     `json:"position,omitempty" yaml:"position,omitempty"`
	PostedAt   *time.Time `json:"posted_at,omitempty" yaml:"posted_at,omitempty"`
}

// IsLeave checks if the row is a leave entry rather than worked time
func (s *ShiftRow) IsLeave() bool {
	return s.LeaveType != ""
}

// ComplianceConfig represents the labor rules a schedule is held to
type ComplianceConfig struct {
	PredictiveNoticeDays   int     `json:"predictive_notice_days" yaml:"predictive_notice_days"`
	RestPeriodHours        float64 `json:"rest_period_hours" yaml:"rest_period_hours"`
	MaxConsecutiveDays     int     `json:"max_consecutive_days" yaml:"max_consecutive_days"`
	OvertimeThresholdHours float64 `json:"overtime_threshold_hours" yaml:"overtime_threshold_hours"`
}

// DefaultComplianceConfig returns fair-workweek-style defaults
func DefaultComplianceConfig() ComplianceConfig {
	return ComplianceConfig{
		PredictiveNoticeDays:   14,
		RestPeriodHours:        10,
		MaxConsecutiveDays:     6,
		OvertimeThresholdHours: 40,
	}
}

// IssueSeverity represents how serious a compliance finding is
type IssueSeverity string

const (
	SeverityInfo      IssueSeverity = "info"
	SeverityWarning   IssueSeverity = "warning"
	SeverityViolation IssueSeverity = "violation"
)

// Compliance rule identifiers
const (
	RuleRestPeriod         = "rest_period"
	RuleMaxConsecutiveDays = "max_consecutive_days"
	RulePredictiveNotice   = "predictive_notice"
	RuleWeeklyOvertime     = "weekly_overtime"
)

// ComplianceIssue represents one flagged rule finding. The evaluator
// reports rather than enforces, so issues are data, never errors.
type ComplianceIssue struct {
	EmployeeID string        `json:"employee_id,omitempty"`
	Date       time.Time     `json:"date,omitempty"`
	RuleID     string        `json:"rule_id"`
	Severity   IssueSeverity `json:"severity"`
	Message    string        `json:"message"`
}

// ComplianceResult represents the full evaluation of a schedule
// snapshot against a compliance configuration
type ComplianceResult struct {
	Issues                 []ComplianceIssue `json:"issues"`
	OvertimeHours          float64           `json:"overtime_hours"`
	PredictabilityPayHours float64           `json:"predictability_pay_hours"`
}

// StandardRule represents one labor-standard cell: the headcount a
// position requires within a covers band
type StandardRule struct {
	Position string `json:"position" yaml:"position"`
	BandLow  int    `json:"band_low" yaml:"band_low"`
	BandHigh int    `json:"band_high" yaml:"band_high"`
	Required int    `json:"required" yaml:"required"`
}

// ValidateStandardRule validates a labor-standard rule
func ValidateStandardRule(r *StandardRule) error {
	if r.Position == "" {
		return fmt.Errorf("standard rule position is required")
	}
	if r.BandLow < 0 || r.BandHigh < r.BandLow {
		return fmt.Errorf("standard rule for %q has invalid band [%d,%d]", r.Position, r.BandLow, r.BandHigh)
	}
	if r.Required < 0 {
		return fmt.Errorf("standard rule for %q requires a non-negative headcount", r.Position)
	}
	return nil
}

// CoverageCell represents one position/day cell of the scheduled
// versus required staffing grid
type CoverageCell struct {
	Date      time.Time `json:"date"`
	Position  string    `json:"position"`
	Covers    int       `json:"covers"`
	Required  int       `json:"required"`
	Scheduled int       `json:"scheduled"`
	Variance  int       `json:"variance"`
}
