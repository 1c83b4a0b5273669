package models

import (
	"fmt"
	"time"
)

// MenuItem represents a menu line on a banquet event order
type MenuItem struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Course   int     `json:"course" yaml:"course"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     QtyUnit `json:"unit,omitempty" yaml:"unit,omitempty"`
	RecipeID string  `json:"recipe_id,omitempty" yaml:"recipe_id,omitempty"`
}

// Course represents one course in the event's service order
type Course struct {
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
}

// Event represents a booked banquet event: the planning snapshot the
// prep engine consumes. Guaranteed is the contractual guest count
// (covers) the kitchen must produce for.
type Event struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Date       time.Time  `json:"date" yaml:"date"`
	Guaranteed int        `json:"guaranteed" yaml:"guaranteed"`
	Courses    []Course   `json:"courses" yaml:"courses"`
	Items      []MenuItem `json:"items" yaml:"items"`
}

// ValidateEvent validates an event snapshot before planning
func ValidateEvent(e *Event) error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("event %q date is required", e.ID)
	}
	if e.Guaranteed <= 0 {
		return fmt.Errorf("event %q guaranteed guest count must be positive", e.ID)
	}
	if len(e.Items) == 0 {
		return fmt.Errorf("event %q must have at least one menu item", e.ID)
	}
	for i, item := range e.Items {
		if item.ID == "" {
			return fmt.Errorf("event %q menu item %d is missing an id", e.ID, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("event %q menu item %q quantity must be positive", e.ID, item.ID)
		}
	}
	return nil
}

// CourseName returns the declared name for a course number, or a
// generic label when the course structure leaves it undeclared
func (e *Event) CourseName(number int) string {
	for _, c := range e.Courses {
		if c.Number == number {
			return c.Name
		}
	}
	return fmt.Sprintf("course %d", number)
}
