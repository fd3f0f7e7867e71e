package menu

import (
	"os"
	"path/filepath"
	"testing"
)

const dishesJSONC = `[
  // breakfast staples
  {"name": "Shakshuka", "culture": "Israeli", "main_ingredient": "egg", "avg_price": 14, "mood": "Comforting", "tags": ["vegetarian", "gluten-free"]},
  {"name": "Pad Thai", "culture": "Thai", "main_ingredient": "rice noodle", "avg_price": 16, "mood": "Adventurous", "tags": ["spicy"]},
  {"name": "", "culture": "Unknown"}, // dropped: no name
  {"name": "Mystery Bowl"},           // dropped: no culture
]`

const restaurantsJSONC = `[
  {"name": "Thai Villa", "cuisine": "Thai", "price": "$$", "address": "5 E 19th St, New York", "lat": 40.7389, "lon": -73.9901},
  {"name": "Soi 55", "cuisine": "thai", "price": "$", "address": "127 W 28th St, New York"},
  {"name": "Miriam", "cuisine": "Israeli", "price": "$$", "address": "79 5th Ave, Brooklyn"},
  {"name": "No Cuisine"}, // dropped
]`

func writeDataFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dishPath := filepath.Join(dir, "dishes.json")
	restPath := filepath.Join(dir, "restaurants.json")
	if err := os.WriteFile(dishPath, []byte(dishesJSONC), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(restPath, []byte(restaurantsJSONC), 0644); err != nil {
		t.Fatal(err)
	}
	return dishPath, restPath
}

func TestLoad(t *testing.T) {
	dishPath, restPath := writeDataFiles(t)

	s, err := Load(dishPath, restPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(s.Dishes()); got != 2 {
		t.Errorf("got %d dishes, want 2 (invalid records dropped)", got)
	}
	if got := len(s.Restaurants()); got != 3 {
		t.Errorf("got %d restaurants, want 3 (invalid records dropped)", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dishPath, restPath := writeDataFiles(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), restPath); err == nil {
		t.Error("Load() with missing dish file should fail")
	}
	if _, err := Load(dishPath, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() with missing restaurant file should fail")
	}
}

func TestByCuisineCaseInsensitive(t *testing.T) {
	dishPath, restPath := writeDataFiles(t)
	s, err := Load(dishPath, restPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// "Thai Villa" and "Soi 55" differ only in cuisine casing.
	if got := len(s.ByCuisine("THAI")); got != 2 {
		t.Errorf("ByCuisine(THAI) = %d restaurants, want 2", got)
	}
}

func TestRestaurantFor(t *testing.T) {
	dishPath, restPath := writeDataFiles(t)
	s, err := Load(dishPath, restPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	padThai, ok := s.FindDish("Pad Thai")
	if !ok {
		t.Fatal("FindDish(Pad Thai) not found")
	}

	r, ok := s.RestaurantFor(padThai)
	if !ok {
		t.Fatal("RestaurantFor() found no thai restaurant")
	}
	if r.Name != "Thai Villa" && r.Name != "Soi 55" {
		t.Errorf("RestaurantFor() = %q, want a thai restaurant", r.Name)
	}

	if _, ok := s.RestaurantFor(Dish{Name: "Pozole", Culture: "Mexican"}); ok {
		t.Error("RestaurantFor() should report no match for an unrecorded cuisine")
	}
}

func TestFilterMatches(t *testing.T) {
	shakshuka := Dish{
		Name: "Shakshuka", Culture: "Israeli",
		Mood: MoodComforting, Tags: []string{"vegetarian", "gluten-free"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"any mood", Filter{Mood: MoodAny}, true},
		{"matching mood", Filter{Mood: MoodComforting}, true},
		{"wrong mood", Filter{Mood: MoodAdventurous}, false},
		{"one tag", Filter{Diet: []string{"vegetarian"}}, true},
		{"all tags", Filter{Diet: []string{"vegetarian", "gluten-free"}}, true},
		{"missing tag", Filter{Diet: []string{"vegan"}}, false},
		{"tag case insensitive", Filter{Diet: []string{"Vegetarian"}}, true},
		{"tags and mood", Filter{Diet: []string{"vegetarian"}, Mood: MoodComforting}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(shakshuka); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	dishes := []Dish{
		{Name: "A", Culture: "x", Mood: MoodHealthy},
		{Name: "B", Culture: "x", Mood: MoodComforting},
		{Name: "C", Culture: "x", Mood: MoodHealthy},
	}

	got := Filter{Mood: MoodHealthy}.Apply(dishes)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("Apply() = %v, want [A C]", got)
	}
}

func TestRestaurantHasTag(t *testing.T) {
	r := Restaurant{Name: "Soi 55", Cuisine: "Spicy Thai", Tags: []string{"late-night"}}

	if !r.HasTag("late-night") {
		t.Error("explicit tag should match")
	}
	if !r.HasTag("spicy") {
		t.Error("cuisine substring should count as a tag")
	}
	if r.HasTag("vegan") {
		t.Error("unrelated tag should not match")
	}
}
