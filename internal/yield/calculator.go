package yield

import (
	"errors"
	"fmt"
	"math"

	"careme/internal/models"
)

// Conversion errors. Callers should test with errors.Is; the wrapped
// message carries the offending key.
var (
	ErrUnknownItem         = errors.New("unknown yield item")
	ErrUnknownPreparation  = errors.New("unknown preparation")
	ErrUnknownUnit         = errors.New("unknown unit for item")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
)

// CalculateRawFromFinished converts a requested finished quantity into
// the raw product that must be ordered and prepped to produce it.
//
// The request quantity is first converted to finished pounds through
// the item's unit-weight table (fixed factors for weight units), then
// divided by the preparation's yield fraction. The result also reports
// the raw weight re-expressed in every unit the item understands and a
// suggested purchase unit.
func CalculateRawFromFinished(catalog models.YieldCatalog, req models.YieldRequest) (models.YieldResult, error) {
	var result models.YieldResult

	if req.Quantity <= 0 {
		return result, fmt.Errorf("%w: got %v", ErrNonPositiveQuantity, req.Quantity)
	}

	item, ok := catalog[req.ItemID]
	if !ok {
		return result, fmt.Errorf("%w: %q", ErrUnknownItem, req.ItemID)
	}

	prep, ok := item.Preparations[req.PrepKey]
	if !ok {
		return result, fmt.Errorf("%w: %q for item %q", ErrUnknownPreparation, req.PrepKey, req.ItemID)
	}

	perUnitLb, err := poundsPerUnit(item, req.Unit)
	if err != nil {
		return result, err
	}

	finishedLb := req.Quantity * perUnitLb
	rawLb := finishedLb / prep.YieldFraction

	result = models.YieldResult{
		ItemID:           req.ItemID,
		PrepKey:          req.PrepKey,
		YieldFraction:    prep.YieldFraction,
		FinishedWeightLb: finishedLb,
		RawWeightLb:      rawLb,
		RawQtyByUnit:     rawQuantities(item, rawLb),
	}
	result.PurchaseUnit, result.PurchaseQty = purchaseUnit(item, rawLb)
	if item.CostPerLb > 0 {
		result.EstimatedCost = round2(rawLb * item.CostPerLb)
	}
	return result, nil
}

// poundsPerUnit resolves the finished weight in pounds of one unit of
// the item. Weight units convert at fixed factors; anything else must
// appear in the item's unit-weight table.
func poundsPerUnit(item models.YieldItem, unit models.QtyUnit) (float64, error) {
	if w, ok := item.UnitWeights[unit]; ok {
		return w, nil
	}
	if w, ok := models.WeightUnitPounds[unit]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: %q for item %q", ErrUnknownUnit, unit, item.ID)
}

// rawQuantities expresses the raw weight in every unit the item can be
// ordered in
func rawQuantities(item models.YieldItem, rawLb float64) map[models.QtyUnit]float64 {
	out := make(map[models.QtyUnit]float64, len(item.UnitWeights)+len(models.WeightUnitPounds))
	for unit, perLb := range models.WeightUnitPounds {
		out[unit] = round2(rawLb / perLb)
	}
	for unit, perLb := range item.UnitWeights {
		out[unit] = round2(rawLb / perLb)
	}
	return out
}

// purchaseUnit picks the largest unit whose single-unit weight does not
// exceed the raw weight, so the suggestion reads in whole purchasable
// units. Pounds are the fallback when everything is too big.
func purchaseUnit(item models.YieldItem, rawLb float64) (models.QtyUnit, float64) {
	best := models.UnitPound
	bestWeight := 1.0
	for unit, perLb := range item.UnitWeights {
		if perLb <= rawLb && perLb > bestWeight {
			best = unit
			bestWeight = perLb
		}
	}
	for unit, perLb := range models.WeightUnitPounds {
		if perLb <= rawLb && perLb > bestWeight {
			best = unit
			bestWeight = perLb
		}
	}
	return best, round2(rawLb / bestWeight)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
