// Package console is the interpreter core of the M.A.R.A. terminal: the
// scrollback line model, the input editor state machine, the command
// registry with its built-in commands, and snapshot save/restore. It never
// draws anything; see package screen for that.
package console

import (
	"fmt"
	"strings"
)

// Kind tells input echoes apart from command output.
type Kind string

const (
	Input  Kind = "input"
	Output Kind = "output"
)

const barWidth = 10

// Animation is the state of a progress-bar line. Stage names the boot step
// to run once the bar completes; it is empty for bars with no follow-up.
type Animation struct {
	Progress int    `json:"progress"`
	Target   int    `json:"progressNeeded"`
	Stage    string `json:"stage,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

// Line is one scrollback entry. Original never changes after creation;
// Display is what gets painted and is rewritten by animated lines.
type Line struct {
	Display  string     `json:"displayText"`
	Original string     `json:"originalText"`
	Kind     Kind       `json:"type"`
	Anim     *Animation `json:"functionData,omitempty"`
}

func NewLine(text string, kind Kind) Line {
	if kind != Input {
		kind = Output
	}
	return Line{Display: text, Original: text, Kind: kind}
}

// NewProgressLine returns a loading bar that fills over target ticks and
// then runs stage.
func NewProgressLine(target int, stage string) Line {
	a := &Animation{Target: target, Stage: stage}
	l := NewLine(barText(a), Output)
	l.Anim = a
	return l
}

// Animated reports whether the line still changes on Tick.
func (l Line) Animated() bool { return l.Anim != nil && !l.Anim.Done }

// Duplicate clones the line from its original text. Animation state is
// copied with progress restarted.
func (l Line) Duplicate() Line {
	out := NewLine(l.Original, l.Kind)
	if l.Anim != nil {
		a := *l.Anim
		a.Progress = 0
		a.Done = false
		out.Anim = &a
		out.Display = barText(&a)
	}
	return out
}

func (l Line) clone() Line {
	if l.Anim != nil {
		a := *l.Anim
		l.Anim = &a
	}
	return l
}

// step advances an animated line by one frame and reports whether it just
// completed. Completed lines are inert.
func (l *Line) step() bool {
	a := l.Anim
	if a == nil || a.Done {
		return false
	}
	if a.Target <= 0 || a.Progress >= a.Target {
		l.Display = completeText
		a.Done = true
		return true
	}
	l.Display = barText(a)
	a.Progress++
	return false
}

const completeText = "[" + "==========" + "] Complete!"

func barText(a *Animation) string {
	if a.Target <= 0 {
		return completeText
	}
	filled := a.Progress * barWidth / a.Target
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	pct := a.Progress * 100 / a.Target
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("=", filled), strings.Repeat("·", barWidth-filled), pct)
}
