package session

import (
	"time"
)

// Badge names.
const (
	BadgeTaster   = "Taster ×10"
	BadgeFoodie   = "Foodie ×25"
	BadgeGourmand = "Gourmand ×50"
	BadgeExplorer = "Weekly Explorer"
)

// likeBadges maps like-count thresholds to badges, in unlock order.
var likeBadges = []struct {
	Count int
	Badge string
}{
	{10, BadgeTaster},
	{25, BadgeFoodie},
	{50, BadgeGourmand},
}

// AllBadges lists every badge in display order.
func AllBadges() []string {
	out := make([]string, 0, len(likeBadges)+1)
	for _, lb := range likeBadges {
		out = append(out, lb.Badge)
	}
	return append(out, BadgeExplorer)
}

// HasBadge reports whether the badge is unlocked.
func (s *Session) HasBadge(badge string) bool {
	for _, b := range s.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// BadgeProgress returns current and required like counts for a
// count-threshold badge, or ok=false for badges without a count.
func (s *Session) BadgeProgress(badge string) (have, need int, ok bool) {
	for _, lb := range likeBadges {
		if lb.Badge == badge {
			return len(s.Likes), lb.Count, true
		}
	}
	return 0, 0, false
}

// refreshBadges awards any badges whose conditions now hold and returns
// the newly awarded ones.
func (s *Session) refreshBadges(now time.Time) []string {
	var awarded []string

	award := func(badge string) {
		if !s.HasBadge(badge) {
			s.Badges = append(s.Badges, badge)
			awarded = append(awarded, badge)
		}
	}

	for _, lb := range likeBadges {
		if len(s.Likes) >= lb.Count {
			award(lb.Badge)
		}
	}

	// Weekly Explorer: liked dishes from three or more cuisines inside
	// the trailing week.
	weekAgo := now.AddDate(0, 0, -7)
	recent := make(map[string]struct{})
	for _, l := range s.Likes {
		if !l.Date.Before(weekAgo) {
			recent[normCuisine(l.Dish.Culture)] = struct{}{}
		}
	}
	if len(recent) >= 3 {
		award(BadgeExplorer)
	}

	return awarded
}

// Level thresholds.
var levels = []struct {
	Name string
	XP   int
}{
	{"Foodie", 0},
	{"Gourmet", 200},
	{"Epicurean", 500},
}

// Level describes the current level and progress toward the next.
type Level struct {
	Name string
	// Next is the next level's name, empty at the top level.
	Next string
	// NextXP is the XP needed for the next level, 0 at the top level.
	NextXP int
	// Progress is the fraction toward the next level in [0, 1].
	Progress float64
}

// Level returns the session's current level.
func (s *Session) Level() Level {
	curr := levels[0]
	next := -1
	for i, lv := range levels {
		if s.XP >= lv.XP {
			curr = lv
			if i+1 < len(levels) {
				next = i + 1
			} else {
				next = -1
			}
		}
	}

	if next < 0 {
		return Level{Name: curr.Name, Progress: 1}
	}

	span := levels[next].XP - curr.XP
	return Level{
		Name:     curr.Name,
		Next:     levels[next].Name,
		NextXP:   levels[next].XP,
		Progress: float64(s.XP-curr.XP) / float64(span),
	}
}
