package prep

import (
	"math"
	"sort"

	"careme/internal/models"
)

// roleOrder fixes the brigade display order for staffing output
var roleOrder = map[models.KitchenRole]int{
	models.RolePrepCook:     0,
	models.RoleLineCook:     1,
	models.RoleChefDePartie: 2,
	models.RoleSousChef:     3,
}

// CalculateStaffingRequirements derives per-day, per-course staffing
// from an allocated prep plan. Headcount per role is the role's total
// hours divided by the staff-day ceiling, rounded up; the role's skill
// level is the highest any of its tasks demands. Zero-slack tasks are
// surfaced so the chef can see what cannot slip.
func (p *Planner) CalculateStaffingRequirements(counts []models.DailyPrepCount) []models.StaffingRequirement {
	reqs := make([]models.StaffingRequirement, 0, len(counts))
	for _, count := range counts {
		req := models.StaffingRequirement{
			Date:   count.Date,
			Course: count.Course,
		}

		hoursByRole := make(map[models.KitchenRole]float64)
		skillByRole := make(map[models.KitchenRole]int)
		for _, task := range count.Tasks {
			hours := task.EstimatedTimeMinutes / 60
			hoursByRole[task.Role] += hours
			if task.SkillRequired > skillByRole[task.Role] {
				skillByRole[task.Role] = task.SkillRequired
			}
			req.TotalHours += hours
			if task.Critical {
				req.CriticalTasks = append(req.CriticalTasks, task.Name)
			}
		}

		for role, hours := range hoursByRole {
			headcount := int(math.Ceil(hours / p.cfg.MaxHoursPerStaffPerDay))
			if headcount < 1 {
				headcount = 1
			}
			req.Roles = append(req.Roles, models.RoleRequirement{
				Role:        role,
				SkillLevel:  skillByRole[role],
				Count:       headcount,
				HoursNeeded: hours,
			})
		}
		sort.Slice(req.Roles, func(i, j int) bool {
			return roleOrder[req.Roles[i].Role] < roleOrder[req.Roles[j].Role]
		})
		sort.Strings(req.CriticalTasks)

		reqs = append(reqs, req)
	}
	return reqs
}
