// Package menu provides the dish and restaurant data model for nosh.
package menu

import (
	"strings"

	"github.com/noshapp/nosh/internal/geo"
)

// Mood values a dish can carry. MoodAny is the unfiltered state.
const (
	MoodAny         = "Any"
	MoodComforting  = "Comforting"
	MoodHealthy     = "Healthy"
	MoodAdventurous = "Adventurous"
)

// Moods lists the selectable moods in display order.
var Moods = []string{MoodAny, MoodComforting, MoodHealthy, MoodAdventurous}

// MoodKeyword maps a mood to the tag keyword used when scoring restaurants.
var MoodKeyword = map[string]string{
	MoodComforting:  "comfort",
	MoodHealthy:     "healthy",
	MoodAdventurous: "spicy",
}

// DietaryTags lists the supported dietary filter tags.
var DietaryTags = []string{"vegan", "vegetarian", "gluten-free", "halal", "kosher"}

// Dish is one swipeable food item.
type Dish struct {
	Name           string   `json:"name"`
	Culture        string   `json:"culture"`
	MainIngredient string   `json:"main_ingredient"`
	AvgPrice       float64  `json:"avg_price"`
	Image          string   `json:"image"`
	Mood           string   `json:"mood"`
	Tags           []string `json:"tags"`
}

// Valid reports whether the dish carries the fields nosh requires.
func (d Dish) Valid() bool {
	return d.Name != "" && d.Culture != ""
}

// HasTag reports whether the dish carries the tag, case-insensitively.
func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Restaurant is a place that serves a cuisine.
type Restaurant struct {
	Name    string   `json:"name"`
	Cuisine string   `json:"cuisine"`
	Price   string   `json:"price"`
	Address string   `json:"address"`
	Photo   string   `json:"photo"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Tags    []string `json:"tags"`
}

// Valid reports whether the restaurant carries the fields nosh requires.
func (r Restaurant) Valid() bool {
	return r.Name != "" && r.Cuisine != ""
}

// Location returns the restaurant's coordinates. The zero point means the
// location is unknown and needs geocoding.
func (r Restaurant) Location() geo.Point {
	return geo.Point{Lat: r.Lat, Lon: r.Lon}
}

// HasTag reports whether the restaurant carries the tag, case-insensitively.
// The cuisine name counts as a tag so "spicy thai" cuisine matches "spicy".
func (r Restaurant) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return strings.Contains(normKey(r.Cuisine), normKey(tag))
}

// normKey normalizes a cuisine name for index lookups.
func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
