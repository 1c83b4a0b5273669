package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"careme/internal/models"
)

// LoadCatalog reads and validates a yield catalog yaml file. The file
// is a map of item id to item; ids may be stated on the entry or
// implied by the key.
func LoadCatalog(path string) (models.YieldCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read yield catalog %s: %w", path, err)
	}
	var catalog models.YieldCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse yield catalog %s: %w", path, err)
	}
	for id, item := range catalog {
		if item.ID == "" {
			item.ID = id
			catalog[id] = item
		}
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid yield catalog %s: %w", path, err)
	}
	return catalog, nil
}

// LoadRecipes reads and validates a recipe table yaml file keyed by
// recipe id
func LoadRecipes(path string) (map[string]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe table %s: %w", path, err)
	}
	var recipes map[string]models.Recipe
	if err := yaml.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe table %s: %w", path, err)
	}
	for id, recipe := range recipes {
		if recipe.ID == "" {
			recipe.ID = id
			recipes[id] = recipe
		}
		if err := models.ValidateRecipe(&recipe); err != nil {
			return nil, fmt.Errorf("invalid recipe table %s: %w", path, err)
		}
	}
	return recipes, nil
}

// LoadStandards reads and validates a labor standards yaml file
func LoadStandards(path string) ([]models.StandardRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labor standards %s: %w", path, err)
	}
	var rules []models.StandardRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse labor standards %s: %w", path, err)
	}
	for i := range rules {
		if err := models.ValidateStandardRule(&rules[i]); err != nil {
			return nil, fmt.Errorf("invalid labor standards %s: %w", path, err)
		}
	}
	return rules, nil
}
