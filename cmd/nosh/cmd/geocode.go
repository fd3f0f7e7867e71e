package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/logging"
)

// geocodeCmd represents the geocode command.
var geocodeCmd = &cobra.Command{
	Use:   "geocode <query>",
	Short: "Resolve an address to coordinates",
	Long: `Resolve a free-form address or place name to latitude/longitude
using the configured geocoding service. The configured region is
appended to the query.

Examples:
  nosh geocode "Katz's Delicatessen"
  nosh geocode "205 E Houston St"`,
	Args: cobra.ExactArgs(1),
	RunE: runGeocode,
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}

// runGeocode handles the geocode command.
func runGeocode(cmd *cobra.Command, args []string) error {
	app, err := setupApp(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	p, err := app.Engine.Geocoder.Geocode(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(fmt.Sprintf("%.7f, %.7f", p.Lat, p.Lon))
	return nil
}
