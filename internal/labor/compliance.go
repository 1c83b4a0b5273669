package labor

import (
	"fmt"
	"sort"
	"time"

	"careme/internal/models"
)

// EvaluateCompliance checks a schedule snapshot against the configured
// labor rules and returns every finding as data. The evaluator reports
// rather than enforces: it never fails, and an empty snapshot yields an
// empty result.
func EvaluateCompliance(shifts []models.ShiftRow, cfg models.ComplianceConfig) models.ComplianceResult {
	result := models.ComplianceResult{Issues: []models.ComplianceIssue{}}

	byEmployee := make(map[string][]models.ShiftRow)
	var employees []string
	for _, s := range shifts {
		if s.EmployeeID == "" {
			continue
		}
		if _, ok := byEmployee[s.EmployeeID]; !ok {
			employees = append(employees, s.EmployeeID)
		}
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}
	sort.Strings(employees)

	hasPostedAt := false
	for _, s := range shifts {
		if s.PostedAt != nil {
			hasPostedAt = true
			break
		}
	}

	for _, emp := range employees {
		rows := byEmployee[emp]
		sort.Slice(rows, func(i, j int) bool {
			si, _ := shiftInterval(rows[i])
			sj, _ := shiftInterval(rows[j])
			return si.Before(sj)
		})

		result.Issues = append(result.Issues, checkRestPeriods(emp, rows, cfg)...)
		result.Issues = append(result.Issues, checkConsecutiveDays(emp, rows, cfg)...)

		otIssues, otHours := checkWeeklyOvertime(emp, rows, cfg)
		result.Issues = append(result.Issues, otIssues...)
		result.OvertimeHours += otHours

		if hasPostedAt {
			pnIssues, pnHours := checkPredictiveNotice(emp, rows, cfg)
			result.Issues = append(result.Issues, pnIssues...)
			result.PredictabilityPayHours += pnHours
		}
	}

	// Without a change-timestamp signal the predictive-notice rule can
	// only be surfaced as policy, not computed.
	if !hasPostedAt && cfg.PredictiveNoticeDays > 0 && len(shifts) > 0 {
		result.Issues = append(result.Issues, models.ComplianceIssue{
			RuleID:   models.RulePredictiveNotice,
			Severity: models.SeverityInfo,
			Message: fmt.Sprintf("predictive scheduling policy requires %d days notice; schedule rows carry no change timestamps, so late changes cannot be detected",
				cfg.PredictiveNoticeDays),
		})
	}

	return result
}

// shiftInterval resolves a row's clock times into concrete start and
// end timestamps. An end at or before the start rolls into the next
// day, which is how overnight closes are written on the schedule.
func shiftInterval(s models.ShiftRow) (time.Time, time.Time) {
	d := s.Date
	start := atClock(d, s.Start)
	end := atClock(d, s.End)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

func atClock(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func shiftHours(s models.ShiftRow) float64 {
	start, end := shiftInterval(s)
	return end.Sub(start).Hours()
}

// checkRestPeriods flags consecutive worked shifts separated by less
// than the required rest gap. The issue lands on the later shift's date.
func checkRestPeriods(emp string, rows []models.ShiftRow, cfg models.ComplianceConfig) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	if cfg.RestPeriodHours <= 0 {
		return issues
	}
	var prevEnd time.Time
	havePrev := false
	for _, row := range rows {
		if row.IsLeave() {
			continue
		}
		start, end := shiftInterval(row)
		if havePrev {
			gap := start.Sub(prevEnd).Hours()
			if gap >= 0 && gap < cfg.RestPeriodHours {
				issues = append(issues, models.ComplianceIssue{
					EmployeeID: emp,
					Date:       row.Date,
					RuleID:     models.RuleRestPeriod,
					Severity:   models.SeverityViolation,
					Message: fmt.Sprintf("only %.1fh rest before shift on %s; %.1fh required",
						gap, row.Date.Format("2006-01-02"), cfg.RestPeriodHours),
				})
			}
		}
		prevEnd = end
		havePrev = true
	}
	return issues
}

// checkConsecutiveDays flags runs of worked calendar days longer than
// the configured maximum: one issue per run, dated on the first day
// past the limit. Leave days break a run.
func checkConsecutiveDays(emp string, rows []models.ShiftRow, cfg models.ComplianceConfig) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	if cfg.MaxConsecutiveDays <= 0 {
		return issues
	}

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, row := range rows {
		if row.IsLeave() {
			continue
		}
		d := dateOnly(row.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	runStart := 0
	for i := 1; i <= len(days); i++ {
		endOfRun := i == len(days) || days[i].Sub(days[i-1]) > 24*time.Hour
		if !endOfRun {
			continue
		}
		runLen := i - runStart
		if runLen > cfg.MaxConsecutiveDays {
			breach := days[runStart+cfg.MaxConsecutiveDays]
			issues = append(issues, models.ComplianceIssue{
				EmployeeID: emp,
				Date:       breach,
				RuleID:     models.RuleMaxConsecutiveDays,
				Severity:   models.SeverityViolation,
				Message: fmt.Sprintf("%d consecutive working days starting %s; maximum is %d",
					runLen, days[runStart].Format("2006-01-02"), cfg.MaxConsecutiveDays),
			})
		}
		runStart = i
	}
	return issues
}

// checkWeeklyOvertime sums worked hours per ISO week and reports the
// unweighted overage past the threshold. Rate multipliers are payroll's
// concern, not the evaluator's.
func checkWeeklyOvertime(emp string, rows []models.ShiftRow, cfg models.ComplianceConfig) ([]models.ComplianceIssue, float64) {
	var issues []models.ComplianceIssue
	if cfg.OvertimeThresholdHours <= 0 {
		return issues, 0
	}

	type weekKey struct {
		year int
		week int
	}
	hoursByWeek := make(map[weekKey]float64)
	lastDay := make(map[weekKey]time.Time)
	var keys []weekKey
	for _, row := range rows {
		if row.IsLeave() {
			continue
		}
		year, week := row.Date.ISOWeek()
		key := weekKey{year, week}
		if _, ok := hoursByWeek[key]; !ok {
			keys = append(keys, key)
		}
		hoursByWeek[key] += shiftHours(row)
		if row.Date.After(lastDay[key]) {
			lastDay[key] = row.Date
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	var total float64
	for _, key := range keys {
		over := hoursByWeek[key] - cfg.OvertimeThresholdHours
		if over <= 0 {
			continue
		}
		total += over
		issues = append(issues, models.ComplianceIssue{
			EmployeeID: emp,
			Date:       lastDay[key],
			RuleID:     models.RuleWeeklyOvertime,
			Severity:   models.SeverityWarning,
			Message: fmt.Sprintf("%.1fh scheduled in week %d-W%02d exceeds the %.0fh threshold by %.1fh",
				hoursByWeek[key], key.year, key.week, cfg.OvertimeThresholdHours, over),
		})
	}
	return issues, total
}

// checkPredictiveNotice accrues predictability pay for shifts posted or
// changed inside the notice window. Only called when the snapshot
// carries change timestamps.
func checkPredictiveNotice(emp string, rows []models.ShiftRow, cfg models.ComplianceConfig) ([]models.ComplianceIssue, float64) {
	var issues []models.ComplianceIssue
	if cfg.PredictiveNoticeDays <= 0 {
		return issues, 0
	}

	var total float64
	for _, row := range rows {
		if row.IsLeave() || row.PostedAt == nil {
			continue
		}
		start, _ := shiftInterval(row)
		noticeDeadline := start.AddDate(0, 0, -cfg.PredictiveNoticeDays)
		if row.PostedAt.After(noticeDeadline) {
			hours := shiftHours(row)
			total += hours
			issues = append(issues, models.ComplianceIssue{
				EmployeeID: emp,
				Date:       row.Date,
				RuleID:     models.RulePredictiveNotice,
				Severity:   models.SeverityWarning,
				Message: fmt.Sprintf("shift on %s posted %.0f days out; %d days notice required, %.1fh accrue predictability pay",
					row.Date.Format("2006-01-02"), start.Sub(*row.PostedAt).Hours()/24, cfg.PredictiveNoticeDays, hours),
			})
		}
	}
	return issues, total
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
