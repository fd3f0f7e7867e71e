// Package components provides reusable TUI components for nosh.
package components

import (
	"fmt"
	"strings"

	"github.com/noshapp/nosh/internal/menu"
	"github.com/noshapp/nosh/internal/tui/styles"
)

// DishCard renders the dish currently up for judgment.
type DishCard struct {
	dish  menu.Dish
	note  string
	width int
}

// NewDishCard creates a new DishCard component.
func NewDishCard() *DishCard {
	return &DishCard{width: 48}
}

// SetDish sets the dish to display.
func (c *DishCard) SetDish(d menu.Dish) {
	c.dish = d
}

// SetNote sets the personal note shown under the dish details.
func (c *DishCard) SetNote(note string) {
	c.note = note
}

// SetWidth sets the card width.
func (c *DishCard) SetWidth(width int) {
	if width > 0 {
		c.width = width
	}
}

// View renders the card.
func (c *DishCard) View() string {
	if c.dish.Name == "" {
		return styles.BoxStyle.Width(c.width).Render(
			styles.MutedTextStyle.Render("No more dishes match your filters."))
	}

	var b strings.Builder
	b.WriteString(styles.CardTitleStyle.Render(c.dish.Name))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Cuisine", c.dish.Culture},
		{"Main ingredient", c.dish.MainIngredient},
		{"Avg price", fmt.Sprintf("$%.2f", c.dish.AvgPrice)},
		{"Mood", c.dish.Mood},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(styles.CardLabelStyle.Render(row.label+": "))
		b.WriteString(styles.CardValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if len(c.dish.Tags) > 0 {
		b.WriteString(styles.TagStyle.Render("[" + strings.Join(c.dish.Tags, "] [") + "]"))
		b.WriteString("\n")
	}

	if c.note != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedTextStyle.Render("Note: " + c.note))
		b.WriteString("\n")
	}

	return styles.CardStyle.Width(c.width).Render(strings.TrimRight(b.String(), "\n"))
}
