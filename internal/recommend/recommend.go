// Package recommend ranks restaurants by distance and how well they match
// the diner's liked cuisines and current mood.
package recommend

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/noshapp/nosh/internal/geo"
	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/menu"
)

// DefaultWorkers bounds concurrent geocode lookups during a ranking pass.
const DefaultWorkers = 2

// Geocoder resolves an address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geo.Point, error)
}

// Scored is a restaurant with its ranking inputs resolved.
type Scored struct {
	Restaurant menu.Restaurant
	// Location is the resolved coordinate. Zero when unknown.
	Location geo.Point
	// DistanceKm from the diner's home point. Negative when unknown.
	DistanceKm float64
	// Preference is the taste bonus: liked-cuisine weight plus mood match.
	Preference float64
	// Score is the final ordering key. Lower is better.
	Score float64
}

// Engine scores restaurants against a session's taste profile.
type Engine struct {
	Home geo.Point
	// Geocoder backfills restaurants with unknown coordinates. Nil skips
	// the backfill and such restaurants sort last.
	Geocoder Geocoder
	// Workers bounds concurrent geocode lookups. Zero means DefaultWorkers.
	Workers int
}

// Rank scores the restaurants and returns the best limit entries, closest
// and best-matched first. Restaurants whose location cannot be resolved
// sort after every located one. Ties break by name.
func (e *Engine) Rank(ctx context.Context, restaurants []menu.Restaurant, cuisineLikes map[string]int, mood string, limit int) ([]Scored, error) {
	scored := make([]Scored, len(restaurants))
	for i, r := range restaurants {
		scored[i] = Scored{
			Restaurant: r,
			Location:   r.Location(),
			Preference: e.preference(r, cuisineLikes, mood),
		}
	}

	if err := e.backfill(ctx, scored); err != nil {
		return nil, err
	}

	for i := range scored {
		s := &scored[i]
		if s.Location.IsZero() {
			s.DistanceKm = -1
			continue
		}
		s.DistanceKm = geo.Distance(e.Home, s.Location)
		s.Score = s.DistanceKm/2 - s.Preference
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		aKnown, bKnown := !a.Location.IsZero(), !b.Location.IsZero()
		if aKnown != bKnown {
			return aKnown
		}
		if aKnown && a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.Restaurant.Name < b.Restaurant.Name
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// preference computes the taste bonus: two points per recorded like of the
// restaurant's cuisine, plus one point when it matches the current mood.
func (e *Engine) preference(r menu.Restaurant, cuisineLikes map[string]int, mood string) float64 {
	var p float64
	cuisine := strings.ToLower(strings.TrimSpace(r.Cuisine))
	if count, ok := cuisineLikes[cuisine]; ok {
		p += float64(2 * count)
	}
	if keyword, ok := menu.MoodKeyword[mood]; ok && r.HasTag(keyword) {
		p++
	}
	return p
}

// backfill geocodes restaurants with unknown coordinates, a bounded number
// at a time. Lookup failures leave the location unknown rather than
// aborting the ranking.
func (e *Engine) backfill(ctx context.Context, scored []Scored) error {
	if e.Geocoder == nil {
		return nil
	}

	workers := e.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range scored {
		if !scored[i].Location.IsZero() {
			continue
		}
		s := &scored[i]
		g.Go(func() error {
			query := s.Restaurant.Address
			if query == "" {
				query = s.Restaurant.Name
			}
			p, err := e.Geocoder.Geocode(ctx, query)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn("could not locate restaurant",
					"restaurant", s.Restaurant.Name, "error", err)
				return nil
			}
			s.Location = p
			return nil
		})
	}
	return g.Wait()
}
