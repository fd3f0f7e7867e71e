package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/logging"
)

// reviewCmd represents the review command.
var reviewCmd = &cobra.Command{
	Use:   "review <restaurant> <stars> [comment]",
	Short: "Leave a star rating for a restaurant",
	Long: `Record a 1-5 star review for a restaurant. Reviews feed the
community rating shown next to recommendations.

Examples:
  nosh review "Ramen Bar" 5
  nosh review "Ramen Bar" 4 "great broth, long wait"`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

// runReview handles the review command.
func runReview(cmd *cobra.Command, args []string) error {
	app, err := setupApp(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	name := strings.TrimSpace(args[0])
	stars, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("stars must be a number from 1 to 5, got %q", args[1])
	}
	comment := ""
	if len(args) == 3 {
		comment = args[2]
	}

	sess := app.Sessions.Session()
	sess.AddReview(name, stars, comment)
	if err := app.Sessions.Save(); err != nil {
		return err
	}

	avg, count := sess.CommunityRating(name)
	cmd.Println(fmt.Sprintf("Saved. %s now rates %.1f over %d review(s).", name, avg, count))
	return nil
}
