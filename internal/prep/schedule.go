package prep

import (
	"fmt"
	"sort"
	"time"

	"careme/internal/models"
)

// plannedTask carries a prep task through day allocation together with
// its scheduling window
type plannedTask struct {
	task     models.PrepTask
	course   int
	earliest time.Time
	deadline time.Time
	assigned time.Time
}

// CalculateDailyPrepCounts projects the full prep task list for an
// event onto calendar days.
//
// Each task is placed on the latest day that respects its recipe's
// lead-time floor and still has kitchen capacity. When no day in the
// window can hold the task it lands on the least-loaded day anyway and
// the day's efficiency rises past 1.0: an over-capacity plan is a
// planning signal, never a failure.
func (p *Planner) CalculateDailyPrepCounts(event models.Event) []models.DailyPrepCount {
	tasks := p.buildTasks(event)
	used := p.allocateDays(tasks)

	groups := make(map[string]*models.DailyPrepCount)
	var keys []string
	for i := range tasks {
		t := &tasks[i]
		key := fmt.Sprintf("%s/%d", t.assigned.Format("2006-01-02"), t.course)
		group, ok := groups[key]
		if !ok {
			group = &models.DailyPrepCount{Date: t.assigned, Course: t.course}
			groups[key] = group
			keys = append(keys, key)
		}
		group.Tasks = append(group.Tasks, t.task)
		group.TotalTimeRequired += t.task.EstimatedTimeMinutes
	}

	counts := make([]models.DailyPrepCount, 0, len(groups))
	for _, key := range keys {
		group := groups[key]
		if p.cfg.DailyCapacityMinutes > 0 {
			group.Efficiency = used[day(group.Date)] / p.cfg.DailyCapacityMinutes
		}
		sort.Slice(group.Tasks, func(i, j int) bool {
			return group.Tasks[i].ItemID < group.Tasks[j].ItemID
		})
		counts = append(counts, *group)
	}
	sort.Slice(counts, func(i, j int) bool {
		if !counts[i].Date.Equal(counts[j].Date) {
			return counts[i].Date.Before(counts[j].Date)
		}
		return counts[i].Course < counts[j].Course
	})
	return counts
}

// buildTasks expands the event menu into prep tasks. Menu items without
// a resolvable recipe still get a conservatively sized task so the plan
// stays complete.
func (p *Planner) buildTasks(event models.Event) []plannedTask {
	tasks := make([]plannedTask, 0, len(event.Items))
	for _, item := range event.Items {
		recipe, ok := p.recipes[item.RecipeID]
		if !ok || item.RecipeID == "" {
			tasks = append(tasks, plannedTask{
				task: models.PrepTask{
					ItemID:               item.ID,
					Name:                 item.Name,
					TargetQuantity:       item.Quantity,
					EstimatedTimeMinutes: p.cfg.DefaultTaskMinutes,
					SkillRequired:        1,
					Role:                 models.RoleForSkill(1),
					Status:               models.PrepStatusPending,
				},
				course: item.Course,
			})
			continue
		}

		quantity := item.Quantity
		if recipe.BaseYield <= 0 {
			quantity = float64(event.Guaranteed)
		}
		analysis := p.AnalyzeRecipePrepRequirements(recipe, quantity, event.Date)
		tasks = append(tasks, plannedTask{
			task: models.PrepTask{
				ItemID:               item.ID,
				Name:                 item.Name,
				TargetQuantity:       item.Quantity,
				EstimatedTimeMinutes: analysis.TotalPrepTime,
				SkillRequired:        analysis.SkillRequired,
				Role:                 models.RoleForSkill(analysis.SkillRequired),
				Status:               models.PrepStatusPending,
			},
			course: item.Course,
		})
		tasks[len(tasks)-1].earliest = day(event.Date).AddDate(0, 0, -analysis.LeadTimeDays)
	}

	eventDay := day(event.Date)
	for i := range tasks {
		if tasks[i].earliest.IsZero() {
			tasks[i].earliest = eventDay
		}
		tasks[i].deadline = eventDay
	}
	return tasks
}

// allocateDays assigns every task to a prep day, longest tasks first so
// the big jobs claim the scarce late capacity. Returns minutes used per
// day for efficiency reporting.
func (p *Planner) allocateDays(tasks []plannedTask) map[time.Time]float64 {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := tasks[order[a]], tasks[order[b]]
		if ta.task.EstimatedTimeMinutes != tb.task.EstimatedTimeMinutes {
			return ta.task.EstimatedTimeMinutes > tb.task.EstimatedTimeMinutes
		}
		return ta.task.ItemID < tb.task.ItemID
	})

	used := make(map[time.Time]float64)
	for _, idx := range order {
		t := &tasks[idx]
		need := t.task.EstimatedTimeMinutes

		assigned := time.Time{}
		for d := t.deadline; !d.Before(t.earliest); d = d.AddDate(0, 0, -1) {
			if used[d]+need <= p.cfg.DailyCapacityMinutes {
				assigned = d
				break
			}
		}
		if assigned.IsZero() {
			// No day fits; take the least-loaded day in the window and
			// let efficiency report the overload.
			assigned = t.deadline
			for d := t.deadline; !d.Before(t.earliest); d = d.AddDate(0, 0, -1) {
				if used[d] < used[assigned] {
					assigned = d
				}
			}
		}
		used[assigned] += need
		t.assigned = assigned
		t.task.Critical = assigned.Equal(t.earliest)
	}
	return used
}
