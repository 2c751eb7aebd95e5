// Package motion models the fire-once entry animations used by page sections and list items.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// Amount is the visible fraction of an element that arms its entry animation.
	Amount = 0.2

	EntryOffset   = 100.0
	RiseOffset    = 30.0
	EntryDuration = 600 * time.Millisecond
	RiseDuration  = 400 * time.Millisecond
	RiseStagger   = 100 * time.Millisecond
)

// Direction is the side a section slides in from.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// ParseDirection accepts "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("invalid direction %q", s)
}

// Alternate returns Left for even i and Right for odd i.
func Alternate(i int) Direction {
	if i%2 == 1 {
		return Right
	}
	return Left
}

// Frame is a presentation state: opacity in [0,1] and an offset in layout units.
type Frame struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
}

// Rest is the resting frame every animation ends at.
var Rest = Frame{Opacity: 1}

// Entry is the hidden frame of a section sliding in from d.
func Entry(d Direction) Frame {
	x := -EntryOffset
	if d == Right {
		x = EntryOffset
	}
	return Frame{OffsetX: x}
}

// Rise is the hidden frame of a list item.
var Rise = Frame{OffsetY: RiseOffset}

// CSS renders the frame as an inline style declaration.
func (f Frame) CSS() string {
	return "opacity:" + formatFloat(f.Opacity) +
		";transform:translate(" + formatFloat(f.OffsetX) + "px," + formatFloat(f.OffsetY) + "px)"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Lerp interpolates between a and b at progress p in [0,1].
func Lerp(a, b Frame, p float64) Frame {
	return Frame{
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*p,
		OffsetX: a.OffsetX + (b.OffsetX-a.OffsetX)*p,
		OffsetY: a.OffsetY + (b.OffsetY-a.OffsetY)*p,
	}
}

// Transition is a fixed duration that starts after Delay.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     Easing
}

// Progress returns eased progress in [0,1] elapsed after the start instant.
func (t Transition) Progress(elapsed time.Duration) float64 {
	elapsed -= t.Delay
	if elapsed <= 0 {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}
	ease := t.Ease
	if ease == nil {
		ease = EaseOut
	}
	return ease(float64(elapsed) / float64(t.Duration))
}

// Total is the delay plus the duration.
func (t Transition) Total() time.Duration {
	return t.Delay + t.Duration
}

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(float64) float64

func Linear(p float64) float64 { return p }

// EaseOut is a cubic ease-out.
func EaseOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// EaseInOutQuart accelerates through the first half and decelerates through the second.
func EaseInOutQuart(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	q := p - 1
	return 1 - 8*q*q*q*q
}
