package models

import "fmt"

// QtyUnit represents a quantity unit used for purchasing and prep
type QtyUnit string

const (
	// Weight units
	UnitPound    QtyUnit = "lb"
	UnitKilogram QtyUnit = "kg"
	UnitOunce    QtyUnit = "oz"
	UnitGram     QtyUnit = "g"

	// Volume units (weight per unit depends on the item)
	UnitGallon QtyUnit = "gal"
	UnitQuart  QtyUnit = "qt"
	UnitPint   QtyUnit = "pt"
	UnitCup    QtyUnit = "cup"

	// Count units
	UnitEach QtyUnit = "each"
)

// WeightUnitPounds maps weight units to their fixed pound equivalents.
// Volume and count units are resolved per item via its unit-weight table.
var WeightUnitPounds = map[QtyUnit]float64{
	UnitPound:    1.0,
	UnitKilogram: 2.20462,
	UnitOunce:    1.0 / 16.0,
	UnitGram:     0.00220462,
}

// IsWeightUnit checks if a unit converts to pounds at a fixed factor
func IsWeightUnit(unit QtyUnit) bool {
	_, ok := WeightUnitPounds[unit]
	return ok
}

// Preparation represents a named preparation method and the usable
// fraction of raw product it leaves behind
type Preparation struct {
	Name          string  `json:"name" yaml:"name"`
	YieldFraction float64 `json:"yield_fraction" yaml:"yield_fraction"`
}

// YieldItem represents an ingredient in the yield catalog.
// UnitWeights declares the finished weight in pounds of one of each
// listed unit for this item; density-dependent units (gallons, quarts)
// only make sense per item, so they live here rather than globally.
type YieldItem struct {
	ID           string                 `json:"id" yaml:"id"`
	Name         string                 `json:"name" yaml:"name"`
	Category     string                 `json:"category" yaml:"category"`
	Preparations map[string]Preparation `json:"preparations" yaml:"preparations"`
	UnitWeights  map[QtyUnit]float64    `json:"unit_weights" yaml:"unit_weights"`
	CostPerLb    float64                `json:"cost_per_lb" yaml:"cost_per_lb"`
}

// YieldCatalog represents the full table of yield items keyed by id
type YieldCatalog map[string]YieldItem

// YieldRequest represents a single finished-quantity conversion request
type YieldRequest struct {
	ItemID   string  `json:"item_id"`
	PrepKey  string  `json:"prep_key"`
	Quantity float64 `json:"quantity"`
	Unit     QtyUnit `json:"unit"`
}

// YieldResult represents the raw product needed to produce a requested
// finished quantity after preparation losses
type YieldResult struct {
	ItemID           string              `json:"item_id"`
	PrepKey          string              `json:"prep_key"`
	YieldFraction    float64             `json:"yield_fraction"`
	FinishedWeightLb float64             `json:"finished_weight_lb"`
	RawWeightLb      float64             `json:"raw_weight_lb"`
	RawQtyByUnit     map[QtyUnit]float64 `json:"raw_qty_by_unit"`
	PurchaseUnit     QtyUnit             `json:"purchase_unit"`
	PurchaseQty      float64             `json:"purchase_qty"`
	EstimatedCost    float64             `json:"estimated_cost,omitempty"`
}

// ValidateYieldItem validates a yield catalog entry
func ValidateYieldItem(item *YieldItem) error {
	if item.ID == "" {
		return fmt.Errorf("yield item id is required")
	}
	if item.Name == "" {
		return fmt.Errorf("yield item name is required")
	}
	if len(item.Preparations) == 0 {
		return fmt.Errorf("yield item %q must have at least one preparation", item.ID)
	}
	for key, prep := range item.Preparations {
		if prep.YieldFraction <= 0 || prep.YieldFraction > 1 {
			return fmt.Errorf("yield item %q preparation %q: yield fraction must be in (0,1], got %v",
				item.ID, key, prep.YieldFraction)
		}
	}
	for unit, weight := range item.UnitWeights {
		if weight <= 0 {
			return fmt.Errorf("yield item %q unit %q: weight per unit must be positive", item.ID, unit)
		}
	}
	return nil
}

// Validate validates every entry in the catalog
func (c YieldCatalog) Validate() error {
	for id, item := range c {
		if item.ID == "" {
			item.ID = id
		}
		if item.ID != id {
			return fmt.Errorf("catalog key %q does not match item id %q", id, item.ID)
		}
		if err := ValidateYieldItem(&item); err != nil {
			return err
		}
	}
	return nil
}
