package session

// Profile summarizes a session for the profile page.
type Profile struct {
	TotalLikes       int
	FavouriteCuisine string
	AvgPrice         float64
	XP               int
	Level            Level
	Badges           []string
}

// Profile computes the profile summary: total likes, favourite cuisine
// (the mode of liked cuisines), and the average liked price.
func (s *Session) Profile() Profile {
	p := Profile{
		TotalLikes: len(s.Likes),
		XP:         s.XP,
		Level:      s.Level(),
		Badges:     append([]string(nil), s.Badges...),
	}

	if len(s.Likes) == 0 {
		return p
	}

	freq := make(map[string]int)
	var priceSum float64
	for _, l := range s.Likes {
		freq[l.Dish.Culture]++
		priceSum += l.Dish.AvgPrice
	}

	best, bestCount := "", 0
	for cuisine, count := range freq {
		if count > bestCount || (count == bestCount && cuisine < best) {
			best, bestCount = cuisine, count
		}
	}

	p.FavouriteCuisine = best
	p.AvgPrice = priceSum / float64(len(s.Likes))
	return p
}
