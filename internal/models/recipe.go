package models

import "fmt"

// TruthStatementKind represents the condition/effect pairing of a
// declarative recipe rule
type TruthStatementKind string

const (
	// TruthScaleTime multiplies estimated prep time by Factor when the
	// batch scaling factor exceeds Threshold
	TruthScaleTime TruthStatementKind = "scale_time"
	// TruthExtendLead adds Days to the recipe lead time when the target
	// quantity exceeds Threshold
	TruthExtendLead TruthStatementKind = "extend_lead"
	// TruthRaiseSkill floors the required skill at Skill when the target
	// quantity exceeds Threshold
	TruthRaiseSkill TruthStatementKind = "raise_skill"
)

// TruthStatement represents a declarative scaling rule attached to a
// recipe. Rules are data, not code: a small interpreter in the prep
// planner applies them, so recipes can change planning behavior without
// a script runtime.
type TruthStatement struct {
	Kind        TruthStatementKind `json:"kind" yaml:"kind"`
	Threshold   float64            `json:"threshold" yaml:"threshold"`
	Factor      float64            `json:"factor,omitempty" yaml:"factor,omitempty"`
	Days        int                `json:"days,omitempty" yaml:"days,omitempty"`
	Skill       int                `json:"skill,omitempty" yaml:"skill,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
}

// Recipe represents a banquet recipe and its prep-planning attributes
type Recipe struct {
	ID              string           `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	SkillRequired   int              `json:"skill_required" yaml:"skill_required"`
	Complexity      int              `json:"complexity" yaml:"complexity"`
	BaseTimeMinutes float64          `json:"base_time_minutes" yaml:"base_time_minutes"`
	BaseYield       float64          `json:"base_yield" yaml:"base_yield"`
	LeadTimeDays    int              `json:"lead_time_days" yaml:"lead_time_days"`
	ScalingExponent float64          `json:"scaling_exponent,omitempty" yaml:"scaling_exponent,omitempty"`
	TruthStatements []TruthStatement `json:"truth_statements,omitempty" yaml:"truth_statements,omitempty"`
}

// ValidateRecipe validates a recipe definition
func ValidateRecipe(r *Recipe) error {
	if r.ID == "" {
		return fmt.Errorf("recipe id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("recipe name is required")
	}
	if r.Complexity < 1 || r.Complexity > 5 {
		return fmt.Errorf("recipe %q complexity must be 1-5, got %d", r.ID, r.Complexity)
	}
	if r.SkillRequired < 1 || r.SkillRequired > 5 {
		return fmt.Errorf("recipe %q skill must be 1-5, got %d", r.ID, r.SkillRequired)
	}
	if r.BaseTimeMinutes <= 0 {
		return fmt.Errorf("recipe %q base time must be positive", r.ID)
	}
	if r.LeadTimeDays < 0 {
		return fmt.Errorf("recipe %q lead time cannot be negative", r.ID)
	}
	if r.ScalingExponent < 0 || r.ScalingExponent > 1 {
		return fmt.Errorf("recipe %q scaling exponent must be in (0,1], got %v", r.ID, r.ScalingExponent)
	}
	for i, ts := range r.TruthStatements {
		if !IsTruthStatementKindValid(string(ts.Kind)) {
			return fmt.Errorf("recipe %q truth statement %d: unknown kind %q", r.ID, i, ts.Kind)
		}
	}
	return nil
}

// IsTruthStatementKindValid checks if a truth statement kind is known
func IsTruthStatementKindValid(kind string) bool {
	validKinds := map[TruthStatementKind]bool{
		TruthScaleTime:  true,
		TruthExtendLead: true,
		TruthRaiseSkill: true,
	}
	return validKinds[TruthStatementKind(kind)]
}
