package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/tui"
)

// swipeCmd represents the swipe command.
var swipeCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Swipe through dishes in the TUI",
	Long: `Start the interactive dish-swiping interface.

Swipe right to like a dish, left to pass. Liking builds your taste
profile, earns XP and badges, and feeds the restaurant recommendations.

Examples:
  nosh            # Same as "nosh swipe"
  nosh swipe`,
	RunE: runSwipe,
}

func init() {
	rootCmd.AddCommand(swipeCmd)
}

// runSwipe is the main entry point for the swipe command.
func runSwipe(cmd *cobra.Command, args []string) error {
	app, err := setupApp(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	return tui.Run(tui.Options{
		Menu:           app.Menu,
		Sessions:       app.Sessions,
		Engine:         app.Engine,
		RecommendLimit: app.Config.Recommend.Limit,
	})
}
