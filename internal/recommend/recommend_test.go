package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/noshapp/nosh/internal/geo"
	"github.com/noshapp/nosh/internal/menu"
)

// timesSquare is the default home anchor used across the tests.
var timesSquare = geo.Point{Lat: 40.7580, Lon: -73.9855}

type fakeGeocoder struct {
	points map[string]geo.Point
	calls  []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (geo.Point, error) {
	f.calls = append(f.calls, query)
	p, ok := f.points[query]
	if !ok {
		return geo.Point{}, errors.New("no result")
	}
	return p, nil
}

func TestRankPrefersCloseAndLiked(t *testing.T) {
	restaurants := []menu.Restaurant{
		{Name: "Far Thai", Cuisine: "Thai", Lat: 40.6413, Lon: -74.0060},
		{Name: "Near Ramen", Cuisine: "Japanese", Lat: 40.7590, Lon: -73.9845},
		{Name: "Near Diner", Cuisine: "American", Lat: 40.7595, Lon: -73.9850},
	}
	likes := map[string]int{"japanese": 3}

	e := &Engine{Home: timesSquare}
	got, err := e.Rank(context.Background(), restaurants, likes, menu.MoodAny, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if got[0].Restaurant.Name != "Near Ramen" {
		t.Errorf("top pick = %q, want Near Ramen", got[0].Restaurant.Name)
	}
	if got[len(got)-1].Restaurant.Name != "Far Thai" {
		t.Errorf("last pick = %q, want Far Thai", got[len(got)-1].Restaurant.Name)
	}
}

func TestRankMoodBonusBreaksDistanceTie(t *testing.T) {
	restaurants := []menu.Restaurant{
		{Name: "Plain Bowl", Cuisine: "Thai", Lat: 40.7600, Lon: -73.9860},
		{Name: "Fire Bowl", Cuisine: "Thai", Lat: 40.7600, Lon: -73.9860, Tags: []string{"spicy"}},
	}

	e := &Engine{Home: timesSquare}
	got, err := e.Rank(context.Background(), restaurants, nil, menu.MoodAdventurous, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if got[0].Restaurant.Name != "Fire Bowl" {
		t.Errorf("top pick = %q, want Fire Bowl", got[0].Restaurant.Name)
	}
}

func TestRankCuisineCreditIsExactMatch(t *testing.T) {
	// "Thai Fusion" contains "thai" but is a different cuisine; only the
	// exact match earns the like bonus.
	restaurants := []menu.Restaurant{
		{Name: "Fusion Lab", Cuisine: "Thai Fusion", Lat: 40.7600, Lon: -73.9860},
		{Name: "Bangkok Kitchen", Cuisine: "Thai", Lat: 40.7600, Lon: -73.9860},
	}
	likes := map[string]int{"thai": 2}

	e := &Engine{Home: timesSquare}
	got, err := e.Rank(context.Background(), restaurants, likes, menu.MoodAny, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if got[0].Restaurant.Name != "Bangkok Kitchen" {
		t.Errorf("top pick = %q, want Bangkok Kitchen", got[0].Restaurant.Name)
	}
	if got[1].Preference != 0 {
		t.Errorf("Thai Fusion preference = %v, want 0", got[1].Preference)
	}
}

func TestRankBackfillsUnknownCoordinates(t *testing.T) {
	restaurants := []menu.Restaurant{
		{Name: "Mystery Spot", Cuisine: "Mexican", Address: "123 Orchard St"},
		{Name: "Known Spot", Cuisine: "Mexican", Lat: 40.7600, Lon: -73.9860},
	}
	gc := &fakeGeocoder{points: map[string]geo.Point{
		"123 Orchard St": {Lat: 40.7190, Lon: -73.9890},
	}}

	e := &Engine{Home: timesSquare, Geocoder: gc}
	got, err := e.Rank(context.Background(), restaurants, nil, menu.MoodAny, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if len(gc.calls) != 1 || gc.calls[0] != "123 Orchard St" {
		t.Errorf("geocoder calls = %v, want just the unknown address", gc.calls)
	}
	for _, s := range got {
		if s.Location.IsZero() {
			t.Errorf("%s still has no location after backfill", s.Restaurant.Name)
		}
	}
}

func TestRankUnlocatableSortsLast(t *testing.T) {
	restaurants := []menu.Restaurant{
		{Name: "Nowhere Cafe", Cuisine: "Fusion", Address: "unknown"},
		{Name: "Somewhere Grill", Cuisine: "Fusion", Lat: 40.7600, Lon: -73.9860},
	}
	gc := &fakeGeocoder{points: map[string]geo.Point{}}

	e := &Engine{Home: timesSquare, Geocoder: gc}
	got, err := e.Rank(context.Background(), restaurants, nil, menu.MoodAny, 0)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if got[len(got)-1].Restaurant.Name != "Nowhere Cafe" {
		t.Errorf("unlocatable restaurant should sort last, got order %v", names(got))
	}
	if got[len(got)-1].DistanceKm >= 0 {
		t.Errorf("unknown distance = %v, want negative sentinel", got[len(got)-1].DistanceKm)
	}
}

func TestRankLimit(t *testing.T) {
	restaurants := []menu.Restaurant{
		{Name: "A", Cuisine: "Thai", Lat: 40.76, Lon: -73.98},
		{Name: "B", Cuisine: "Thai", Lat: 40.76, Lon: -73.98},
		{Name: "C", Cuisine: "Thai", Lat: 40.76, Lon: -73.98},
	}

	e := &Engine{Home: timesSquare}
	got, err := e.Rank(context.Background(), restaurants, nil, menu.MoodAny, 2)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Equal scores fall back to name order.
	if got[0].Restaurant.Name != "A" || got[1].Restaurant.Name != "B" {
		t.Errorf("order = %v, want [A B]", names(got))
	}
}

func names(scored []Scored) []string {
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Restaurant.Name
	}
	return out
}
