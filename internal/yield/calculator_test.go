package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careme/internal/models"
)

func testCatalog() models.YieldCatalog {
	return models.YieldCatalog{
		"cabbage": {
			ID:   "cabbage",
			Name: "Green Cabbage",
			Preparations: map[string]models.Preparation{
				"shaved_1_8": {Name: "Shaved 1/8\"", YieldFraction: 0.65},
				"quartered":  {Name: "Quartered", YieldFraction: 0.85},
			},
			UnitWeights: map[models.QtyUnit]float64{
				models.UnitGallon: 8.5,
				models.UnitQuart:  2.125,
				models.UnitEach:   2.5,
			},
			CostPerLb: 0.89,
		},
		"carrot": {
			ID:   "carrot",
			Name: "Carrot",
			Preparations: map[string]models.Preparation{
				"peeled_diced": {Name: "Peeled and Diced", YieldFraction: 0.8},
			},
		},
	}
}

func TestCalculateRawFromFinished(t *testing.T) {
	catalog := testCatalog()

	// One finished gallon of shaved cabbage at 8.5 lb/gal and 65% yield
	result, err := CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID:   "cabbage",
		PrepKey:  "shaved_1_8",
		Quantity: 1,
		Unit:     models.UnitGallon,
	})
	require.NoError(t, err)

	assert.InDelta(t, 8.5, result.FinishedWeightLb, 0.001)
	assert.InDelta(t, 13.08, result.RawWeightLb, 0.01)
	assert.InDelta(t, result.FinishedWeightLb/result.YieldFraction, result.RawWeightLb, 0.001)
	assert.GreaterOrEqual(t, result.RawWeightLb, result.FinishedWeightLb)
	assert.Equal(t, models.UnitGallon, result.PurchaseUnit)
	assert.InDelta(t, 1.54, result.PurchaseQty, 0.01)
	assert.InDelta(t, 11.64, result.EstimatedCost, 0.01)
}

func TestCalculateRawWeightUnits(t *testing.T) {
	catalog := testCatalog()

	// Weight units resolve without an item unit-weight entry
	result, err := CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID:   "carrot",
		PrepKey:  "peeled_diced",
		Quantity: 10,
		Unit:     models.UnitPound,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, result.RawWeightLb, 0.001)

	kg, err := CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID:   "carrot",
		PrepKey:  "peeled_diced",
		Quantity: 1,
		Unit:     models.UnitKilogram,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.20462/0.8, kg.RawWeightLb, 0.001)
}

func TestCalculateRawNeverShrinks(t *testing.T) {
	catalog := testCatalog()
	for prepKey := range catalog["cabbage"].Preparations {
		for _, qty := range []float64{0.25, 1, 3, 40} {
			result, err := CalculateRawFromFinished(catalog, models.YieldRequest{
				ItemID:   "cabbage",
				PrepKey:  prepKey,
				Quantity: qty,
				Unit:     models.UnitPound,
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.RawWeightLb, result.FinishedWeightLb,
				"raw weight must cover finished weight for prep %s qty %v", prepKey, qty)
		}
	}
}

func TestCalculateRawErrors(t *testing.T) {
	catalog := testCatalog()

	_, err := CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID: "kohlrabi", PrepKey: "shaved_1_8", Quantity: 1, Unit: models.UnitPound,
	})
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID: "cabbage", PrepKey: "spiralized", Quantity: 1, Unit: models.UnitPound,
	})
	assert.ErrorIs(t, err, ErrUnknownPreparation)

	_, err = CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID: "carrot", PrepKey: "peeled_diced", Quantity: 1, Unit: models.UnitGallon,
	})
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID: "cabbage", PrepKey: "shaved_1_8", Quantity: 0, Unit: models.UnitPound,
	})
	assert.ErrorIs(t, err, ErrNonPositiveQuantity)
}

func TestPurchaseUnitNeverExceedsRawWeight(t *testing.T) {
	catalog := testCatalog()
	result, err := CalculateRawFromFinished(catalog, models.YieldRequest{
		ItemID:   "cabbage",
		PrepKey:  "quartered",
		Quantity: 1,
		Unit:     models.UnitPound,
	})
	require.NoError(t, err)

	// 1.18 lb raw: gallons and quarts are too big, pounds win
	assert.Equal(t, models.UnitPound, result.PurchaseUnit)
	assert.GreaterOrEqual(t, result.PurchaseQty, 1.0)
}
