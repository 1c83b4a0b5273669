package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careme/internal/models"
)

func TestMergeYieldCatalogEmptyExtensionIsIdentity(t *testing.T) {
	base := testCatalog()
	merged := MergeYieldCatalog(base, models.YieldCatalog{})
	assert.Equal(t, base, merged)
}

func TestMergeYieldCatalogIsIdempotent(t *testing.T) {
	base := testCatalog()
	ext := models.YieldCatalog{
		"cabbage": {
			ID:        "cabbage",
			CostPerLb: 1.05,
			Preparations: map[string]models.Preparation{
				"shaved_1_8": {Name: "Shaved 1/8\"", YieldFraction: 0.7},
				"chiffonade": {Name: "Chiffonade", YieldFraction: 0.6},
			},
		},
	}

	once := MergeYieldCatalog(base, ext)
	twice := MergeYieldCatalog(once, ext)
	assert.Equal(t, once, twice)
}

func TestMergeYieldCatalogOverridesAndUnions(t *testing.T) {
	base := testCatalog()
	ext := models.YieldCatalog{
		"cabbage": {
			ID:        "cabbage",
			CostPerLb: 1.05,
			Preparations: map[string]models.Preparation{
				"shaved_1_8": {Name: "Shaved 1/8\"", YieldFraction: 0.7},
				"chiffonade": {Name: "Chiffonade", YieldFraction: 0.6},
			},
		},
		"fennel": {
			ID:   "fennel",
			Name: "Fennel Bulb",
			Preparations: map[string]models.Preparation{
				"shaved": {Name: "Shaved", YieldFraction: 0.75},
			},
		},
	}

	merged := MergeYieldCatalog(base, ext)

	// Extension scalar wins, unset scalars keep the base value
	cabbage := merged["cabbage"]
	assert.Equal(t, "Green Cabbage", cabbage.Name)
	assert.Equal(t, 1.05, cabbage.CostPerLb)

	// Preparations union key-wise, extension wins on collision
	assert.Len(t, cabbage.Preparations, 3)
	assert.Equal(t, 0.7, cabbage.Preparations["shaved_1_8"].YieldFraction)
	assert.Equal(t, 0.85, cabbage.Preparations["quartered"].YieldFraction)
	assert.Equal(t, 0.6, cabbage.Preparations["chiffonade"].YieldFraction)

	// Unit weights carry through untouched
	assert.Equal(t, base["cabbage"].UnitWeights, cabbage.UnitWeights)

	// New items append, untouched items survive
	assert.Contains(t, merged, "fennel")
	assert.Equal(t, base["carrot"], merged["carrot"])
}

func TestMergeYieldCatalogDoesNotMutateInputs(t *testing.T) {
	base := testCatalog()
	ext := models.YieldCatalog{
		"cabbage": {Preparations: map[string]models.Preparation{
			"shaved_1_8": {YieldFraction: 0.5},
		}},
	}

	_ = MergeYieldCatalog(base, ext)
	assert.Equal(t, 0.65, base["cabbage"].Preparations["shaved_1_8"].YieldFraction)
}
