package yield

import "careme/internal/models"

// MergeYieldCatalog layers an extension catalog over a base catalog and
// returns the combined table. Neither input is modified.
//
// Extension items override base items field-wise: scalar fields replace
// the base value only when set, while the preparation and unit-weight
// maps union key by key with the extension winning on collisions. An
// empty extension returns a copy equal to the base, and re-applying the
// same extension changes nothing.
func MergeYieldCatalog(base, ext models.YieldCatalog) models.YieldCatalog {
	merged := make(models.YieldCatalog, len(base)+len(ext))
	for id, item := range base {
		merged[id] = copyItem(item)
	}
	for id, extItem := range ext {
		baseItem, ok := merged[id]
		if !ok {
			merged[id] = copyItem(extItem)
			continue
		}
		merged[id] = mergeItem(baseItem, extItem)
	}
	return merged
}

func mergeItem(base, ext models.YieldItem) models.YieldItem {
	out := base
	if ext.Name != "" {
		out.Name = ext.Name
	}
	if ext.Category != "" {
		out.Category = ext.Category
	}
	if ext.CostPerLb != 0 {
		out.CostPerLb = ext.CostPerLb
	}
	out.Preparations = make(map[string]models.Preparation, len(base.Preparations)+len(ext.Preparations))
	for key, prep := range base.Preparations {
		out.Preparations[key] = prep
	}
	for key, prep := range ext.Preparations {
		out.Preparations[key] = prep
	}
	out.UnitWeights = make(map[models.QtyUnit]float64, len(base.UnitWeights)+len(ext.UnitWeights))
	for unit, w := range base.UnitWeights {
		out.UnitWeights[unit] = w
	}
	for unit, w := range ext.UnitWeights {
		out.UnitWeights[unit] = w
	}
	return out
}

func copyItem(item models.YieldItem) models.YieldItem {
	out := item
	if item.Preparations != nil {
		out.Preparations = make(map[string]models.Preparation, len(item.Preparations))
		for key, prep := range item.Preparations {
			out.Preparations[key] = prep
		}
	}
	if item.UnitWeights != nil {
		out.UnitWeights = make(map[models.QtyUnit]float64, len(item.UnitWeights))
		for unit, w := range item.UnitWeights {
			out.UnitWeights[unit] = w
		}
	}
	return out
}
