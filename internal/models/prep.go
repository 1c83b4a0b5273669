package models

import "time"

// PrepStatus represents the status of a preparation task
type PrepStatus string

const (
	PrepStatusPending    PrepStatus = "pending"
	PrepStatusInProgress PrepStatus = "in_progress"
	PrepStatusCompleted  PrepStatus = "completed"
	PrepStatusCancelled  PrepStatus = "cancelled"
)

// IsPrepStatusValid checks if a preparation status is valid
func IsPrepStatusValid(status string) bool {
	validStatuses := map[PrepStatus]bool{
		PrepStatusPending:    true,
		PrepStatusInProgress: true,
		PrepStatusCompleted:  true,
		PrepStatusCancelled:  true,
	}
	return validStatuses[PrepStatus(status)]
}

// KitchenRole represents a brigade role that can be assigned prep work
type KitchenRole string

const (
	RolePrepCook     KitchenRole = "prep_cook"
	RoleLineCook     KitchenRole = "line_cook"
	RoleChefDePartie KitchenRole = "chef_de_partie"
	RoleSousChef     KitchenRole = "sous_chef"
)

// RoleForSkill maps a 1-5 recipe skill requirement onto the brigade
// role expected to execute it
func RoleForSkill(skill int) KitchenRole {
	switch {
	case skill <= 2:
		return RolePrepCook
	case skill == 3:
		return RoleLineCook
	case skill == 4:
		return RoleChefDePartie
	default:
		return RoleSousChef
	}
}

// PrepTask represents one scheduled prep task for a menu item
type PrepTask struct {
	ItemID               string      `json:"item_id"`
	Name                 string      `json:"name"`
	TargetQuantity       float64     `json:"target_quantity"`
	EstimatedTimeMinutes float64     `json:"estimated_time_minutes"`
	SkillRequired        int         `json:"skill_required"`
	Role                 KitchenRole `json:"role"`
	Critical             bool        `json:"critical"`
	Status               PrepStatus  `json:"status"`
}

// DailyPrepCount represents all prep work assigned to one date and
// course. Efficiency is ideal time over allotted capacity; a value
// above 1.0 flags an over-capacity day rather than failing the plan.
type DailyPrepCount struct {
	Date              time.Time  `json:"date"`
	Course            int        `json:"course"`
	Tasks             []PrepTask `json:"tasks"`
	TotalTimeRequired float64    `json:"total_time_required"`
	Efficiency        float64    `json:"efficiency"`
}

// RackStatus represents the service lifecycle of a speed rack
type RackStatus string

const (
	RackStatusStaged   RackStatus = "staged"
	RackStatusPrep     RackStatus = "prep"
	RackStatusReady    RackStatus = "ready"
	RackStatusService  RackStatus = "service"
	RackStatusComplete RackStatus = "complete"
)

// IsRackStatusValid checks if a rack status is valid
func IsRackStatusValid(status string) bool {
	validStatuses := map[RackStatus]bool{
		RackStatusStaged:   true,
		RackStatusPrep:     true,
		RackStatusReady:    true,
		RackStatusService:  true,
		RackStatusComplete: true,
	}
	return validStatuses[RackStatus(status)]
}

// RackItem represents one menu item staged on a speed rack
type RackItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// SpeedRack represents a mobile staging cart holding prepped food for
// one course during service
type SpeedRack struct {
	RackID            string     `json:"rack_id"`
	Course            int        `json:"course"`
	Location          string     `json:"location"`
	Items             []RackItem `json:"items"`
	EstimatedPrepTime float64    `json:"estimated_prep_time"`
	Status            RackStatus `json:"status"`
}

// RoleRequirement represents the staffing need for one brigade role on
// one prep day
type RoleRequirement struct {
	Role        KitchenRole `json:"role"`
	SkillLevel  int         `json:"skill_level"`
	Count       int         `json:"count"`
	HoursNeeded float64     `json:"hours_needed"`
}

// StaffingRequirement represents derived staffing needs for one date
// and course, with zero-slack tasks called out for the chef
type StaffingRequirement struct {
	Date          time.Time         `json:"date"`
	Course        int               `json:"course"`
	Roles         []RoleRequirement `json:"roles"`
	TotalHours    float64           `json:"total_hours"`
	CriticalTasks []string          `json:"critical_tasks"`
}
