// Package registry holds the static uniform-item and academic-level
// catalogs. Pure data; lookups never fail hard, absence is a normal
// "nothing selected yet" state.
package registry

import "github.com/monisha-uniforms/storefront/internal/domain/model"

// ItemType is one orderable uniform type and its allowed variants.
type ItemType struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Variants []string `json:"variants"`
}

var uniformTypes = map[model.Category][]ItemType{
	model.CategorySummer: {
		{ID: "shirt", Label: "Shirts", Variants: []string{"Half Sleeve", "Full Sleeve"}},
		{ID: "skirt", Label: "Skirts", Variants: []string{"Box Pleat", "Knife Pleat"}},
		{ID: "shorts", Label: "Shorts", Variants: []string{"Regular", "Sports"}},
		{ID: "dress", Label: "Dresses", Variants: []string{"Pinafore", "A-Line"}},
		{ID: "trousers", Label: "Trousers", Variants: []string{"Regular Fit", "Slim Fit"}},
	},
	model.CategoryWinter: {
		{ID: "sweater", Label: "Sweaters", Variants: []string{"V-Neck", "Round Neck"}},
		{ID: "jacket", Label: "Jackets", Variants: []string{"Regular", "Padded"}},
		{ID: "blazer", Label: "Blazers", Variants: []string{"Single Breasted", "Double Breasted"}},
		{ID: "cardigan", Label: "Cardigans", Variants: []string{"Button-up", "Zip-up"}},
	},
	model.CategorySports: {
		{ID: "tracksuit", Label: "Tracksuits", Variants: []string{"Full Set", "Separate"}},
		{ID: "pe_kit", Label: "PE Kit", Variants: []string{"Summer", "Winter"}},
		{ID: "house_shirt", Label: "House Shirts", Variants: []string{"Polo", "T-Shirt"}},
		{ID: "sports_shorts", Label: "Sports Shorts", Variants: []string{"Regular", "Cycling"}},
	},
	model.CategoryUniversal: {
		{ID: "tie", Label: "Ties", Variants: []string{"Regular", "Clip-on"}},
		{ID: "belt", Label: "Belts", Variants: []string{"Regular", "Elastic"}},
		{ID: "socks", Label: "Socks", Variants: []string{"Ankle", "Knee-high"}},
		{ID: "hat", Label: "Hats", Variants: []string{"Cap", "Beanie"}},
	},
}

// ItemTypes returns the orderable types for a category, nil when the
// category has no entries.
func ItemTypes(c model.Category) []ItemType {
	types := uniformTypes[c]
	out := make([]ItemType, len(types))
	copy(out, types)
	return out
}

// ItemTypeByID looks up a type within a category.
func ItemTypeByID(c model.Category, id string) (ItemType, bool) {
	for _, t := range uniformTypes[c] {
		if t.ID == id {
			return t, true
		}
	}
	return ItemType{}, false
}

// Variants returns the allowed variants for a type within a category.
func Variants(c model.Category, typeID string) []string {
	t, ok := ItemTypeByID(c, typeID)
	if !ok {
		return nil
	}
	out := make([]string, len(t.Variants))
	copy(out, t.Variants)
	return out
}

// Level is an academic level selectable for an order.
type Level struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Forms       []string `json:"forms,omitempty"`
	Description string   `json:"description"`
}

const (
	LevelAll    = "all"
	LevelOLevel = "o_level"
	LevelALevel = "a_level"
)

var levels = []Level{
	{
		ID:          LevelAll,
		Label:       "All Students",
		Description: "Order uniforms for all forms",
	},
	{
		ID:          LevelOLevel,
		Label:       "Form 1-4 (O Level)",
		Forms:       []string{"Form 1", "Form 2", "Form 3", "Form 4"},
		Description: "Secondary school (O Level) uniforms",
	},
	{
		ID:          LevelALevel,
		Label:       "Form 1-6 (A Level)",
		Forms:       []string{"Form 1", "Form 2", "Form 3", "Form 4", "Form 5", "Form 6"},
		Description: "Secondary school (A Level) uniforms",
	},
}

// Levels lists selectable academic levels.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelByID looks up a level by identifier.
func LevelByID(id string) (Level, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}
