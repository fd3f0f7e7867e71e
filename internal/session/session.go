// Package session provides swipe session state for nosh: likes, dislikes,
// notes, reviews, XP, badges, and levels.
package session

import (
	"strings"
	"time"

	"github.com/noshapp/nosh/internal/menu"
)

// XPPerLike is the XP granted for each liked dish.
const XPPerLike = 10

// Like records a liked dish and when it was liked.
type Like struct {
	Dish menu.Dish `json:"dish"`
	Date time.Time `json:"date"`
}

// Review is one star rating with a comment for a restaurant.
type Review struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

// Session is the complete swipe state.
type Session struct {
	Likes    []Like              `json:"likes"`
	Dislikes []string            `json:"dislikes"`
	Notes    map[string]string   `json:"notes"`
	Reviews  map[string][]Review `json:"reviews"`
	XP       int                 `json:"xp"`
	Badges   []string            `json:"badges"`
}

// New returns an empty session.
func New() *Session {
	return &Session{
		Notes:   make(map[string]string),
		Reviews: make(map[string][]Review),
	}
}

// Clone returns a deep copy of the session. The copy shares nothing the
// caller mutates, so it can be marshalled from another goroutine.
func (s *Session) Clone() *Session {
	c := &Session{
		Likes:    append([]Like(nil), s.Likes...),
		Dislikes: append([]string(nil), s.Dislikes...),
		Notes:    make(map[string]string, len(s.Notes)),
		Reviews:  make(map[string][]Review, len(s.Reviews)),
		XP:       s.XP,
		Badges:   append([]string(nil), s.Badges...),
	}
	for dish, note := range s.Notes {
		c.Notes[dish] = note
	}
	for restaurant, reviews := range s.Reviews {
		c.Reviews[restaurant] = append([]Review(nil), reviews...)
	}
	return c
}

// Liked reports whether the named dish has been liked.
func (s *Session) Liked(name string) bool {
	for _, l := range s.Likes {
		if l.Dish.Name == name {
			return true
		}
	}
	return false
}

// Like records a liked dish, grants XP, and returns any newly unlocked
// badges. Re-liking an already liked dish is a no-op.
func (s *Session) Like(d menu.Dish, now time.Time) []string {
	if s.Liked(d.Name) {
		return nil
	}
	s.Likes = append(s.Likes, Like{Dish: d, Date: now})
	s.XP += XPPerLike
	return s.refreshBadges(now)
}

// Dislike records a disliked dish name.
func (s *Session) Dislike(name string) {
	s.Dislikes = append(s.Dislikes, name)
}

// Unlike removes a dish from the likes. XP is kept; badges are not revoked.
func (s *Session) Unlike(name string) {
	for i, l := range s.Likes {
		if l.Dish.Name == name {
			s.Likes = append(s.Likes[:i], s.Likes[i+1:]...)
			return
		}
	}
}

// SetNote stores a personal note for a dish. An empty note deletes.
func (s *Session) SetNote(dish, note string) {
	if s.Notes == nil {
		s.Notes = make(map[string]string)
	}
	if note == "" {
		delete(s.Notes, dish)
		return
	}
	s.Notes[dish] = note
}

// Note returns the stored note for a dish, if any.
func (s *Session) Note(dish string) string {
	return s.Notes[dish]
}

// AddReview appends a review for a restaurant. Stars are clamped to 1..5.
func (s *Session) AddReview(restaurant string, stars int, comment string) {
	if s.Reviews == nil {
		s.Reviews = make(map[string][]Review)
	}
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}
	s.Reviews[restaurant] = append(s.Reviews[restaurant], Review{Stars: stars, Comment: comment})
}

// CommunityRating returns the average stars and review count for a restaurant.
func (s *Session) CommunityRating(restaurant string) (avg float64, count int) {
	reviews := s.Reviews[restaurant]
	if len(reviews) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Stars
	}
	return float64(total) / float64(len(reviews)), len(reviews)
}

// LikedCuisines returns the normalized cuisine of every liked dish, with
// repeats, for frequency counting.
func (s *Session) LikedCuisines() []string {
	out := make([]string, 0, len(s.Likes))
	for _, l := range s.Likes {
		out = append(out, l.Dish.Culture)
	}
	return out
}

// CuisineFrequency returns how many liked dishes each cuisine has,
// keyed by the lowercased cuisine name.
func (s *Session) CuisineFrequency() map[string]int {
	freq := make(map[string]int)
	for _, l := range s.Likes {
		freq[normCuisine(l.Dish.Culture)]++
	}
	return freq
}

// Reset clears all swipe state.
func (s *Session) Reset() {
	s.Likes = nil
	s.Dislikes = nil
	s.Notes = make(map[string]string)
	s.Reviews = make(map[string][]Review)
	s.XP = 0
	s.Badges = nil
}

func normCuisine(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
