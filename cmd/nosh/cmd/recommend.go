package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/imagecache"
	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/mapview"
	"github.com/noshapp/nosh/internal/menu"
	"github.com/noshapp/nosh/internal/recommend"
)

// recommendCmd represents the recommend command.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print ranked restaurant recommendations",
	Long: `Rank restaurants by distance from home and how well they match
your liked cuisines, then print the top picks.

Examples:
  nosh recommend
  nosh recommend --limit 5
  nosh recommend --map picks.html   # Also write an HTML map`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().IntP("limit", "n", 0, "Number of restaurants to show (default from config)")
	recommendCmd.Flags().String("map", "", "Write an HTML map of the picks to this file")
	recommendCmd.Flags().String("mood", menu.MoodAny, "Mood to favor: Any, Comforting, Healthy, Adventurous")
}

// runRecommend handles the recommend command.
func runRecommend(cmd *cobra.Command, args []string) error {
	app, err := setupApp(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	limit, _ := cmd.Flags().GetInt("limit")
	mapPath, _ := cmd.Flags().GetString("map")
	mood, _ := cmd.Flags().GetString("mood")
	if limit <= 0 {
		limit = app.Config.Recommend.Limit
	}

	likes := app.Sessions.Session().CuisineFrequency()
	scored, err := app.Engine.Rank(cmd.Context(), app.Menu.Restaurants(), likes, mood, limit)
	if err != nil {
		return err
	}

	if len(scored) == 0 {
		cmd.Println("No restaurants to recommend. Check your data files.")
		return nil
	}

	for i, s := range scored {
		line := fmt.Sprintf("%2d. %s · %s", i+1, s.Restaurant.Name, s.Restaurant.Cuisine)
		if s.DistanceKm >= 0 {
			line += fmt.Sprintf(" · %.1f km", s.DistanceKm)
		}
		if avg, count := app.Sessions.Session().CommunityRating(s.Restaurant.Name); count > 0 {
			line += fmt.Sprintf(" · %.1f stars (%d)", avg, count)
		}
		cmd.Println(line)
		if s.Restaurant.Address != "" {
			cmd.Println("    " + s.Restaurant.Address)
		}
	}

	if mapPath != "" {
		cachePhotos(cmd, app, scored)
		if err := mapview.Write(mapPath, "nosh picks", app.Config.Home, scored); err != nil {
			return err
		}
		cmd.Println("")
		cmd.Println("Map written to " + mapPath)
	}
	return nil
}

// cachePhotos swaps photo URLs for locally cached files so the map keeps
// working offline. A failed download keeps the original URL.
func cachePhotos(cmd *cobra.Command, app *appContext, scored []recommend.Scored) {
	cache, err := imagecache.New(filepath.Join(app.Config.Cache.Dir, "images"))
	if err != nil {
		logging.Warn("image cache unavailable", "error", err)
		return
	}
	for i := range scored {
		if scored[i].Restaurant.Photo == "" {
			continue
		}
		local, err := cache.Path(cmd.Context(), scored[i].Restaurant.Photo)
		if err != nil {
			logging.Warn("could not cache photo",
				"restaurant", scored[i].Restaurant.Name, "error", err)
			continue
		}
		scored[i].Restaurant.Photo = local
	}
}
