package components

import (
	"strings"
	"testing"
)

func TestBadgeGrid_View(t *testing.T) {
	g := NewBadgeGrid()
	g.SetEntries([]BadgeEntry{
		{Name: "Taster", Desc: "Like 10 dishes", Earned: true},
		{Name: "Foodie Badge", Desc: "Like 25 dishes", Current: 12, Target: 25},
	})

	view := g.View()
	for _, want := range []string{"Taster", "Foodie Badge", "Like 25 dishes", "12/25"} {
		if !strings.Contains(view, want) {
			t.Errorf("badge grid missing %q", want)
		}
	}
}

func TestBadgeGrid_ViewEmpty(t *testing.T) {
	g := NewBadgeGrid()
	if !strings.Contains(g.View(), "No badges") {
		t.Error("empty grid should say there are no badges")
	}
}
