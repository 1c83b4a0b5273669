package prep

import (
	"fmt"
	"sort"
	"strings"

	"careme/internal/models"
)

// GenerateSpeedRacks partitions an event's menu into staging carts, one
// course at a time. A rack closes when it reaches the item-count bound
// or when adding the next item would push its cumulative prep time over
// the time bound, whichever binds first. Rack ids carry an event-derived
// prefix so racks stay traceable on the floor during multi-event days.
func (p *Planner) GenerateSpeedRacks(event models.Event) []models.SpeedRack {
	byCourse := make(map[int][]models.MenuItem)
	var courses []int
	for _, item := range event.Items {
		if _, ok := byCourse[item.Course]; !ok {
			courses = append(courses, item.Course)
		}
		byCourse[item.Course] = append(byCourse[item.Course], item)
	}
	sort.Ints(courses)

	prefix := rackPrefix(event.ID)
	var racks []models.SpeedRack
	seq := 1

	for _, course := range courses {
		location := event.CourseName(course)
		current := newRack(prefix, &seq, course, location)
		for _, item := range byCourse[course] {
			itemTime := p.itemPrepTime(event, item)
			full := len(current.Items) >= p.cfg.RackItemCapacity ||
				(len(current.Items) > 0 && current.EstimatedPrepTime+itemTime > p.cfg.RackTimeCapacityMinutes)
			if full {
				racks = append(racks, current)
				current = newRack(prefix, &seq, course, location)
			}
			current.Items = append(current.Items, models.RackItem{
				ItemID:   item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
			})
			current.EstimatedPrepTime += itemTime
		}
		racks = append(racks, current)
	}
	return racks
}

// itemPrepTime sizes one menu item's contribution to a rack
func (p *Planner) itemPrepTime(event models.Event, item models.MenuItem) float64 {
	recipe, ok := p.recipes[item.RecipeID]
	if !ok || item.RecipeID == "" {
		return p.cfg.DefaultTaskMinutes
	}
	quantity := item.Quantity
	if recipe.BaseYield <= 0 {
		quantity = float64(event.Guaranteed)
	}
	return p.AnalyzeRecipePrepRequirements(recipe, quantity, event.Date).TotalPrepTime
}

func newRack(prefix string, seq *int, course int, location string) models.SpeedRack {
	rack := models.SpeedRack{
		RackID:   fmt.Sprintf("%s-%d", prefix, *seq),
		Course:   course,
		Location: location,
		Status:   models.RackStatusStaged,
	}
	*seq++
	return rack
}

// rackPrefix derives a short floor label from the event id
func rackPrefix(eventID string) string {
	cleaned := strings.ToUpper(strings.NewReplacer("-", "", "_", "", " ", "").Replace(eventID))
	if cleaned == "" {
		return "RACK"
	}
	if len(cleaned) > 6 {
		cleaned = cleaned[:6]
	}
	return cleaned
}
