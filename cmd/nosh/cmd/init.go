package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/noshapp/nosh/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize nosh in the current directory",
	Long: `Initialize nosh in the current directory.

This command creates the .nosh directory and starter files:
  - .nosh/config.yaml        Commented default configuration
  - .nosh/dishes.json        Sample dish data
  - .nosh/restaurants.json   Sample restaurant data

Use --force to overwrite existing files.

Examples:
  nosh init          # Initialize in current directory
  nosh init --force  # Overwrite existing files`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
}

// keyComments annotates the top-level config keys in the scaffolded file.
var keyComments = map[string]string{
	"data":      "Paths to the dish and restaurant data files (JSON, comments allowed)",
	"home":      "Your home coordinates; distances are measured from here",
	"region":    "Appended to geocoding queries, e.g. \"Katz's, New York\"",
	"geocoder":  "Nominatim settings; set a user_agent that identifies you",
	"cache":     "On-disk cache for geocoding results and images",
	"recommend": "Recommendation list size and geocode concurrency",
	"log":       "Log level (debug, info, warn, error) and format",
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if err := os.MkdirAll(".nosh", 0o755); err != nil {
		return fmt.Errorf("failed to create .nosh directory: %w", err)
	}

	files := []struct {
		path    string
		content []byte
	}{
		{filepath.Join(".nosh", "dishes.json"), []byte(sampleDishes)},
		{filepath.Join(".nosh", "restaurants.json"), []byte(sampleRestaurants)},
	}

	configYAML, err := renderConfig()
	if err != nil {
		return err
	}
	files = append(files, struct {
		path    string
		content []byte
	}{config.DefaultConfigPath, configYAML})

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil && !force {
			cmd.Println("Skipping " + f.path + " (exists, use --force to overwrite)")
			continue
		}
		if err := os.WriteFile(f.path, f.content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		cmd.Println("Created " + f.path)
	}

	cmd.Println("")
	cmd.Println("nosh initialized!")
	cmd.Println("Edit .nosh/config.yaml to set your home coordinates.")
	cmd.Println("Run 'nosh' to start swiping.")
	return nil
}

// renderConfig marshals the default config and annotates the top-level
// keys with comments.
func renderConfig() ([]byte, error) {
	raw, err := yaml.Marshal(config.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to reparse default config: %w", err)
	}

	if len(doc.Content) > 0 {
		mapping := doc.Content[0]
		// Mapping nodes alternate key, value.
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			key := mapping.Content[i]
			if comment, ok := keyComments[key.Value]; ok {
				key.HeadComment = comment
			}
		}
	}

	return yaml.Marshal(&doc)
}

const sampleDishes = `// Sample dishes. Add your own; comments and trailing commas are fine.
[
  {"name": "Shoyu Ramen", "culture": "Japanese", "main_ingredient": "noodles", "avg_price": 16.5, "mood": "Comforting", "tags": ["comfort"]},
  {"name": "Buddha Bowl", "culture": "Fusion", "main_ingredient": "quinoa", "avg_price": 14, "mood": "Healthy", "tags": ["vegan", "healthy"]},
  {"name": "Jerk Chicken", "culture": "Jamaican", "main_ingredient": "chicken", "avg_price": 15, "mood": "Adventurous", "tags": ["spicy"]},
  {"name": "Margherita Pizza", "culture": "Italian", "main_ingredient": "mozzarella", "avg_price": 18, "mood": "Comforting", "tags": ["vegetarian", "comfort"]},
  {"name": "Falafel Wrap", "culture": "Middle Eastern", "main_ingredient": "chickpeas", "avg_price": 11, "mood": "Healthy", "tags": ["vegan"]},
]
`

const sampleRestaurants = `// Sample restaurants. lat/lon 0 means nosh will geocode the address.
[
  {"name": "Ramen Bar", "cuisine": "Japanese", "price": "$$", "address": "52 St Marks Pl, New York", "lat": 40.7289, "lon": -73.9874, "tags": ["comfort"]},
  {"name": "Via della Pace", "cuisine": "Italian", "price": "$$", "address": "48 E 7th St, New York", "lat": 40.7273, "lon": -73.9889, "tags": []},
  {"name": "Miss Lily's", "cuisine": "Jamaican", "price": "$$", "address": "132 W Houston St, New York", "lat": 0, "lon": 0, "tags": ["spicy"]},
]
`
