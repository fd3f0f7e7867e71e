package components

import (
	"fmt"
	"strings"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// ProgressData contains the data to display in the progress bar.
type ProgressData struct {
	Label   string
	Current int
	Target  int
}

// Progress renders a labelled bar, used for XP toward the next level and
// badge progress.
type Progress struct {
	data  ProgressData
	width int
}

// NewProgress creates a new Progress component.
func NewProgress() *Progress {
	return &Progress{width: 30}
}

// SetData updates the progress data.
func (p *Progress) SetData(data ProgressData) {
	p.data = data
}

// SetWidth sets the bar width in cells.
func (p *Progress) SetWidth(width int) {
	if width > 0 {
		p.width = width
	}
}

// View renders the progress bar.
func (p *Progress) View() string {
	barWidth := p.width
	if barWidth < 10 {
		barWidth = 10
	}

	ratio := 0.0
	if p.data.Target > 0 {
		ratio = float64(p.data.Current) / float64(p.data.Target)
		if ratio > 1 {
			ratio = 1
		}
	}
	filled := int(ratio * float64(barWidth))

	bar := styles.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	count := styles.ProgressCountStyle.Render(
		fmt.Sprintf("%d/%d", p.data.Current, p.data.Target))

	if p.data.Label == "" {
		return bar + " " + count
	}
	return p.data.Label + " " + bar + " " + count
}
