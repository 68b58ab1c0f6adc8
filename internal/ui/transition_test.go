package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTransitionRunsToCompletion(t *testing.T) {
	tr := newTransition("tab", true)
	if tr.Active() || tr.Progress() != 1 {
		t.Fatalf("new transition should be idle at full progress")
	}
	if cmd := tr.Start(); cmd == nil {
		t.Fatalf("Start returned nil cmd")
	}

	frames := 0
	for tr.Active() {
		frames++
		if frames > 100 {
			t.Fatalf("transition never finished")
		}
		tr.Step(transitionFrameMsg{owner: "tab", gen: tr.gen})
	}
	// 16ms frames over 300ms.
	if frames != 19 {
		t.Fatalf("frames = %d, want 19", frames)
	}
	if tr.Progress() != 1 {
		t.Fatalf("Progress = %v, want 1", tr.Progress())
	}
}

func TestTransitionIgnoresStaleFrames(t *testing.T) {
	tr := newTransition("tab", false)
	tr.Start()
	stale := tr.gen
	tr.Start()

	if cmd := tr.Step(transitionFrameMsg{owner: "tab", gen: stale}); cmd != nil {
		t.Fatalf("stale frame scheduled another frame")
	}
	if tr.frame != 0 {
		t.Fatalf("stale frame advanced transition to %d", tr.frame)
	}
	if cmd := tr.Step(transitionFrameMsg{owner: "page", gen: tr.gen}); cmd != nil {
		t.Fatalf("foreign frame scheduled another frame")
	}
	if cmd := tr.Step(transitionFrameMsg{owner: "tab", gen: tr.gen}); cmd == nil || tr.frame != 1 {
		t.Fatalf("current frame not applied: frame=%d", tr.frame)
	}

	tr.Stop()
	if tr.Active() {
		t.Fatalf("Stop left transition active")
	}
	if cmd := tr.Step(transitionFrameMsg{owner: "tab", gen: tr.gen}); cmd != nil {
		t.Fatalf("stopped transition scheduled a frame")
	}
}

func TestEaseInOut(t *testing.T) {
	if easeInOut(0) != 0 || easeInOut(1) != 1 {
		t.Fatalf("endpoints = %v, %v", easeInOut(0), easeInOut(1))
	}
	if got := easeInOut(0.5); got != 0.5 {
		t.Fatalf("midpoint = %v, want 0.5", got)
	}
	if easeInOut(-1) != 0 || easeInOut(2) != 1 {
		t.Fatalf("out of range input not clamped")
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := easeInOut(float64(i) / 20)
		if v < prev {
			t.Fatalf("easeInOut not monotonic at step %d", i)
		}
		prev = v
	}
}

func TestTransitionRenderSlidesAndFades(t *testing.T) {
	theme := GetTheme("Lagoon")
	content := "first\nsecond"

	tr := newTransition("tab", true)
	if got := tr.Render(content, theme, 20); got != content {
		t.Fatalf("idle transition changed content: %q", got)
	}

	tr.Start()
	lines := strings.Split(tr.Render(content, theme, 20), "\n")
	if len(lines) != 20 {
		t.Fatalf("rendered %d lines, want 20", len(lines))
	}
	// 10% of 20 rows below resting place at the first frame.
	if lines[0] != "" || lines[1] != "" {
		t.Fatalf("slide rows not blank: %q", lines[:2])
	}
	if got := ansi.Strip(lines[2]); got != "first" {
		t.Fatalf("line 2 = %q, want first", got)
	}

	fade := newTransition("page", false)
	fade.Start()
	lines = strings.Split(fade.Render(content, theme, 20), "\n")
	if len(lines) != 2 || ansi.Strip(lines[0]) != "first" {
		t.Fatalf("fade-only render = %q", lines)
	}
}

func TestSlideRows(t *testing.T) {
	cases := []struct {
		height int
		eased  float64
		want   int
	}{
		{30, 0, 3},
		{30, 0.5, 2},
		{30, 1, 0},
		{4, 0, 0},
	}
	for _, tc := range cases {
		if got := slideRows(tc.height, tc.eased); got != tc.want {
			t.Fatalf("slideRows(%d, %v) = %d, want %d", tc.height, tc.eased, got, tc.want)
		}
	}
}
