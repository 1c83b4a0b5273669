package prep

import (
	"math"
	"time"

	"careme/internal/models"
)

// PlannerConfig holds the kitchen tunables the scheduling engine plans
// against. Capacity thresholds and the scaling-exponent derivation are
// operational knobs, not contracts, so they load from configuration.
type PlannerConfig struct {
	DailyCapacityMinutes    float64 `json:"daily_capacity_minutes" yaml:"daily_capacity_minutes"`
	MaxHoursPerStaffPerDay  float64 `json:"max_hours_per_staff_per_day" yaml:"max_hours_per_staff_per_day"`
	RackItemCapacity        int     `json:"rack_item_capacity" yaml:"rack_item_capacity"`
	RackTimeCapacityMinutes float64 `json:"rack_time_capacity_minutes" yaml:"rack_time_capacity_minutes"`
	ExponentBase            float64 `json:"exponent_base" yaml:"exponent_base"`
	ExponentPerComplexity   float64 `json:"exponent_per_complexity" yaml:"exponent_per_complexity"`
	DefaultTaskMinutes      float64 `json:"default_task_minutes" yaml:"default_task_minutes"`
}

// DefaultPlannerConfig returns planning defaults sized for a single
// banquet kitchen: one 8-hour prep line per day, 8-hour staff days,
// racks bounded at 8 items or 2 hours of product.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		DailyCapacityMinutes:    480,
		MaxHoursPerStaffPerDay:  8,
		RackItemCapacity:        8,
		RackTimeCapacityMinutes: 120,
		ExponentBase:            0.5,
		ExponentPerComplexity:   0.1,
		DefaultTaskMinutes:      30,
	}
}

// Planner projects prep tasks, speed racks, and staffing for banquet
// events from a recipe table snapshot
type Planner struct {
	recipes map[string]models.Recipe
	cfg     PlannerConfig
}

// NewPlanner creates a planner over a recipe table
func NewPlanner(recipes map[string]models.Recipe, cfg PlannerConfig) *Planner {
	if recipes == nil {
		recipes = make(map[string]models.Recipe)
	}
	return &Planner{recipes: recipes, cfg: cfg}
}

// PrepAnalysis represents the prep footprint of one recipe at a target
// quantity: how long it takes, who can make it, and which days it can
// occupy ahead of the event.
type PrepAnalysis struct {
	RecipeID      string      `json:"recipe_id"`
	ScalingFactor float64     `json:"scaling_factor"`
	TotalPrepTime float64     `json:"total_prep_time"`
	RequiredStaff int         `json:"required_staff"`
	SkillRequired int         `json:"skill_required"`
	LeadTimeDays  int         `json:"lead_time_days"`
	PrepDays      []time.Time `json:"prep_days"`
}

// AnalyzeRecipePrepRequirements sizes the prep work for producing
// quantity units of a recipe for an event date. Quantity should already
// be in the recipe's yield denomination; when the recipe declares no
// base yield the caller passes the event's guaranteed covers.
func (p *Planner) AnalyzeRecipePrepRequirements(recipe models.Recipe, quantity float64, eventDate time.Time) PrepAnalysis {
	scaling := quantity
	if recipe.BaseYield > 0 {
		scaling = quantity / recipe.BaseYield
	}
	if scaling <= 0 {
		scaling = 1
	}

	exponent := p.scalingExponent(recipe)
	total := recipe.BaseTimeMinutes * math.Pow(scaling, exponent)

	skill := recipe.SkillRequired
	lead := recipe.LeadTimeDays
	for _, ts := range recipe.TruthStatements {
		switch ts.Kind {
		case models.TruthScaleTime:
			if scaling > ts.Threshold && ts.Factor > 0 {
				total *= ts.Factor
			}
		case models.TruthExtendLead:
			if quantity > ts.Threshold {
				lead += ts.Days
			}
		case models.TruthRaiseSkill:
			if quantity > ts.Threshold && ts.Skill > skill {
				skill = ts.Skill
			}
		}
	}

	staff := int(math.Ceil(total / 60 / p.cfg.MaxHoursPerStaffPerDay))
	if staff < 1 {
		staff = 1
	}

	days := int(math.Ceil(total / p.cfg.DailyCapacityMinutes))
	if days < 1 {
		days = 1
	}
	if lead > 0 && days > lead+1 {
		days = lead + 1
	}
	prepDays := make([]time.Time, 0, days)
	for i := days - 1; i >= 0; i-- {
		prepDays = append(prepDays, day(eventDate).AddDate(0, 0, -i))
	}

	return PrepAnalysis{
		RecipeID:      recipe.ID,
		ScalingFactor: scaling,
		TotalPrepTime: total,
		RequiredStaff: staff,
		SkillRequired: skill,
		LeadTimeDays:  lead,
		PrepDays:      prepDays,
	}
}

// scalingExponent resolves the sub-linear batch exponent for a recipe.
// Complex recipes lose less of the batching advantage, so the derived
// exponent climbs toward 1.0 with complexity.
func (p *Planner) scalingExponent(recipe models.Recipe) float64 {
	if recipe.ScalingExponent > 0 {
		return recipe.ScalingExponent
	}
	f := p.cfg.ExponentBase + p.cfg.ExponentPerComplexity*float64(recipe.Complexity)
	if f > 1 {
		f = 1
	}
	if f <= 0 {
		f = 1
	}
	return f
}

// day truncates a timestamp to its calendar date
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
