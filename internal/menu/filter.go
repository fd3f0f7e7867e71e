package menu

// Filter narrows the swipe deck by dietary tags and mood.
type Filter struct {
	// Diet lists required dietary tags; a dish must carry all of them.
	Diet []string
	// Mood is the selected mood; MoodAny (or empty) matches every dish.
	Mood string
}

// Matches reports whether the dish passes the filter.
func (f Filter) Matches(d Dish) bool {
	for _, tag := range f.Diet {
		if !d.HasTag(tag) {
			return false
		}
	}
	if f.Mood == "" || f.Mood == MoodAny {
		return true
	}
	return d.Mood == f.Mood
}

// Apply returns the dishes passing the filter, preserving order.
func (f Filter) Apply(dishes []Dish) []Dish {
	var out []Dish
	for _, d := range dishes {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return len(f.Diet) == 0 && (f.Mood == "" || f.Mood == MoodAny)
}
