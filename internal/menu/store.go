package menu

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/logging"
)

// Store holds the loaded dishes and restaurants with a cuisine index.
//
// Data files are JSONC: comments and trailing commas are stripped before
// parsing, so hand-maintained files can be annotated.
type Store struct {
	dishes      []Dish
	restaurants []Restaurant
	byCuisine   map[string][]Restaurant
}

// Load reads the dish and restaurant data files and builds the store.
// Records missing their required fields are dropped, not fatal.
func Load(dishPath, restaurantPath string) (*Store, error) {
	var rawDishes []Dish
	if err := readJSONC(dishPath, &rawDishes); err != nil {
		return nil, err
	}

	var rawRestaurants []Restaurant
	if err := readJSONC(restaurantPath, &rawRestaurants); err != nil {
		return nil, err
	}

	s := &Store{byCuisine: make(map[string][]Restaurant)}

	for _, d := range rawDishes {
		if !d.Valid() {
			logging.Warn("dropping dish with missing name or culture", "name", d.Name)
			continue
		}
		s.dishes = append(s.dishes, d)
	}

	for _, r := range rawRestaurants {
		if !r.Valid() {
			logging.Warn("dropping restaurant with missing name or cuisine", "name", r.Name)
			continue
		}
		s.restaurants = append(s.restaurants, r)
		key := normKey(r.Cuisine)
		s.byCuisine[key] = append(s.byCuisine[key], r)
	}

	logging.Debug("menu data loaded",
		"dishes", len(s.dishes), "restaurants", len(s.restaurants))
	return s, nil
}

// readJSONC reads a JSONC file into v.
func readJSONC(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.DataFileError(path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return errors.DataFileError(path, err)
	}
	return nil
}

// Dishes returns all valid dishes in file order.
func (s *Store) Dishes() []Dish {
	return s.dishes
}

// Restaurants returns all valid restaurants in file order.
func (s *Store) Restaurants() []Restaurant {
	return s.restaurants
}

// ByCuisine returns the restaurants of the given cuisine, matched
// case-insensitively.
func (s *Store) ByCuisine(cuisine string) []Restaurant {
	return s.byCuisine[normKey(cuisine)]
}

// RestaurantFor picks a random restaurant serving the dish's cuisine.
// Returns false when no restaurant of that cuisine is recorded.
func (s *Store) RestaurantFor(d Dish) (Restaurant, bool) {
	candidates := s.ByCuisine(d.Culture)
	if len(candidates) == 0 {
		return Restaurant{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

// FindDish returns the dish with the given name.
func (s *Store) FindDish(name string) (Dish, bool) {
	for _, d := range s.dishes {
		if d.Name == name {
			return d, true
		}
	}
	return Dish{}, false
}
