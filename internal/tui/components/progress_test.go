package components

import (
	"strings"
	"testing"
)

func TestProgress_View(t *testing.T) {
	p := NewProgress()
	p.SetData(ProgressData{Label: "Taster", Current: 5, Target: 10})
	p.SetWidth(10)

	view := p.View()
	if !strings.Contains(view, "Taster") {
		t.Error("progress bar missing label")
	}
	if !strings.Contains(view, "5/10") {
		t.Error("progress bar missing count")
	}
	if !strings.Contains(view, "█") || !strings.Contains(view, "░") {
		t.Error("half-full bar should show both filled and empty cells")
	}
}

func TestProgress_ViewFull(t *testing.T) {
	p := NewProgress()
	p.SetData(ProgressData{Current: 15, Target: 10})
	p.SetWidth(10)

	if strings.Contains(p.View(), "░") {
		t.Error("overfull bar should render fully filled")
	}
}

func TestProgress_ViewZeroTarget(t *testing.T) {
	p := NewProgress()
	p.SetData(ProgressData{Current: 0, Target: 0})
	if !strings.Contains(p.View(), "0/0") {
		t.Error("zero-target bar should still render a count")
	}
}
