package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/session"
)

// profileCmd represents the profile command.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your taste profile",
	Long: `Print the taste profile built from your swipe history: total
likes, favourite cuisine, XP, level, and earned badges.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

// runProfile handles the profile command.
func runProfile(cmd *cobra.Command, args []string) error {
	app, err := setupApp(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	p := app.Sessions.Session().Profile()

	cmd.Println(fmt.Sprintf("Level:             %s (%d XP)", p.Level.Name, p.XP))
	if p.Level.Next != "" {
		cmd.Println(fmt.Sprintf("Next level:        %s at %d XP", p.Level.Next, p.Level.NextXP))
	}
	cmd.Println(fmt.Sprintf("Dishes liked:      %d", p.TotalLikes))
	if p.FavouriteCuisine != "" {
		cmd.Println(fmt.Sprintf("Favourite cuisine: %s", p.FavouriteCuisine))
	}
	if p.TotalLikes > 0 {
		cmd.Println(fmt.Sprintf("Avg dish price:    $%.2f", p.AvgPrice))
	}
	if len(p.Badges) > 0 {
		cmd.Println("Badges:            " + strings.Join(p.Badges, ", "))
	}

	sess := app.Sessions.Session()
	for _, badge := range session.AllBadges() {
		if sess.HasBadge(badge) {
			continue
		}
		if have, need, ok := sess.BadgeProgress(badge); ok {
			cmd.Println(fmt.Sprintf("  %s: %d/%d", badge, have, need))
		}
	}
	return nil
}
