package models

import (
	"testing"
	"time"
)

func TestValidateYieldItem(t *testing.T) {
	item := YieldItem{
		ID:   "cabbage",
		Name: "Green Cabbage",
		Preparations: map[string]Preparation{
			"shaved": {Name: "Shaved", YieldFraction: 0.65},
		},
	}
	if err := ValidateYieldItem(&item); err != nil {
		t.Errorf("ValidateYieldItem() = %v, want nil", err)
	}

	bad := item
	bad.Preparations = map[string]Preparation{
		"shaved": {Name: "Shaved", YieldFraction: 1.2},
	}
	if err := ValidateYieldItem(&bad); err == nil {
		t.Error("ValidateYieldItem() accepted a yield fraction above 1")
	}

	empty := YieldItem{ID: "x", Name: "X"}
	if err := ValidateYieldItem(&empty); err == nil {
		t.Error("ValidateYieldItem() accepted an item with no preparations")
	}
}

func TestValidateRecipe(t *testing.T) {
	recipe := Recipe{
		ID: "consomme", Name: "Consommé", SkillRequired: 4, Complexity: 4,
		BaseTimeMinutes: 90, BaseYield: 10, LeadTimeDays: 1,
	}
	if err := ValidateRecipe(&recipe); err != nil {
		t.Errorf("ValidateRecipe() = %v, want nil", err)
	}

	bad := recipe
	bad.Complexity = 9
	if err := ValidateRecipe(&bad); err == nil {
		t.Error("ValidateRecipe() accepted complexity 9")
	}

	bad = recipe
	bad.TruthStatements = []TruthStatement{{Kind: "run_script"}}
	if err := ValidateRecipe(&bad); err == nil {
		t.Error("ValidateRecipe() accepted an unknown truth statement kind")
	}
}

func TestValidateEvent(t *testing.T) {
	event := Event{
		ID:         "EVT-1",
		Date:       time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC),
		Guaranteed: 150,
		Items:      []MenuItem{{ID: "m1", Name: "Salad", Course: 1, Quantity: 150}},
	}
	if err := ValidateEvent(&event); err != nil {
		t.Errorf("ValidateEvent() = %v, want nil", err)
	}

	bad := event
	bad.Items = nil
	if err := ValidateEvent(&bad); err == nil {
		t.Error("ValidateEvent() accepted an event with no menu items")
	}

	bad = event
	bad.Guaranteed = 0
	if err := ValidateEvent(&bad); err == nil {
		t.Error("ValidateEvent() accepted a zero guest count")
	}
}

func TestRoleForSkill(t *testing.T) {
	cases := []struct {
		skill int
		want  KitchenRole
	}{
		{1, RolePrepCook},
		{2, RolePrepCook},
		{3, RoleLineCook},
		{4, RoleChefDePartie},
		{5, RoleSousChef},
	}
	for _, tc := range cases {
		if got := RoleForSkill(tc.skill); got != tc.want {
			t.Errorf("RoleForSkill(%d) = %q, want %q", tc.skill, got, tc.want)
		}
	}
}

func TestCourseName(t *testing.T) {
	event := Event{
		Courses: []Course{{Number: 1, Name: "First Course"}},
	}
	if got := event.CourseName(1); got != "First Course" {
		t.Errorf("CourseName(1) = %q", got)
	}
	if got := event.CourseName(3); got != "course 3" {
		t.Errorf("CourseName(3) = %q, want generic label", got)
	}
}

func TestStatusValidators(t *testing.T) {
	if !IsPrepStatusValid("pending") || IsPrepStatusValid("simmering") {
		t.Error("IsPrepStatusValid() misclassified a status")
	}
	if !IsRackStatusValid("staged") || IsRackStatusValid("lost") {
		t.Error("IsRackStatusValid() misclassified a status")
	}
}
