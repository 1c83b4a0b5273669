package labor

import (
	"sort"
	"time"

	"careme/internal/models"
)

// Band represents one covers interval of a labor-standards table
type Band struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// BuildBands tiles the covers range [0, max] at a fixed step. The first
// band runs [0, step] and each following band picks up one past the
// previous high, matching how the standards grid is laid out for
// admins: [0,50], [51,100], [101,150], ...
func BuildBands(step, max int) []Band {
	if step <= 0 || max < 0 {
		return nil
	}
	bands := []Band{{Low: 0, High: step}}
	for low := step + 1; low <= max; low += step {
		bands = append(bands, Band{Low: low, High: low + step - 1})
	}
	return bands
}

// RequiredFor returns the declared headcount for a position at a covers
// level. Positions or bands with no declared rule require 0: the table
// is authoritative and silence means no requirement.
func RequiredFor(position string, covers int, rules []models.StandardRule) int {
	for _, rule := range rules {
		if rule.Position != position {
			continue
		}
		if covers >= rule.BandLow && covers <= rule.BandHigh {
			return rule.Required
		}
	}
	return 0
}

// CoversForecast represents the expected covers for one service day
type CoversForecast struct {
	Date   time.Time `json:"date"`
	Covers int       `json:"covers"`
}

// CompareScheduleToStandard builds the required-versus-scheduled grid:
// one cell per forecast day per position appearing in the standards
// table. Scheduled counts distinct employees with a worked (non-leave)
// shift in that position on that day; variance is scheduled minus
// required, so negative cells are understaffed.
func CompareScheduleToStandard(shifts []models.ShiftRow, rules []models.StandardRule, forecast []CoversForecast) []models.CoverageCell {
	var positions []string
	seen := make(map[string]bool)
	for _, rule := range rules {
		if !seen[rule.Position] {
			seen[rule.Position] = true
			positions = append(positions, rule.Position)
		}
	}
	sort.Strings(positions)

	scheduled := make(map[string]map[string]bool) // date/position -> employee set
	for _, s := range shifts {
		if s.IsLeave() || s.Position == "" {
			continue
		}
		key := dateOnly(s.Date).Format("2006-01-02") + "/" + s.Position
		if scheduled[key] == nil {
			scheduled[key] = make(map[string]bool)
		}
		scheduled[key][s.EmployeeID] = true
	}

	cells := make([]models.CoverageCell, 0, len(forecast)*len(positions))
	for _, f := range forecast {
		date := dateOnly(f.Date)
		for _, position := range positions {
			required := RequiredFor(position, f.Covers, rules)
			count := len(scheduled[date.Format("2006-01-02")+"/"+position])
			cells = append(cells, models.CoverageCell{
				Date:      date,
				Position:  position,
				Covers:    f.Covers,
				Required:  required,
				Scheduled: count,
				Variance:  count - required,
			})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if !cells[i].Date.Equal(cells[j].Date) {
			return cells[i].Date.Before(cells[j].Date)
		}
		return cells[i].Position < cells[j].Position
	})
	return cells
}
