// Package disclosure truncates an ordered list to an initial count and expands it on request.
package disclosure

import "time"

// StaggerStep is the entry delay added per item index.
const StaggerStep = 100 * time.Millisecond

const (
	LabelMore = "Show More"
	LabelLess = "Show Less"
)

// State is the per-list expanded flag. The zero value is collapsed.
type State struct {
	Expanded bool
}

// Toggle flips the flag once.
func (s *State) Toggle() {
	s.Expanded = !s.Expanded
}

// Entry is a visible item together with its position and stagger delay.
type Entry[T any] struct {
	Item  T
	Index int
	Delay time.Duration
}

// Result is the rendered subsequence of a list.
type Result[T any] struct {
	Items      []Entry[T]
	ShowToggle bool
	Expanded   bool
}

// Label is the text of the toggle control.
func (r Result[T]) Label() string {
	if r.Expanded {
		return LabelLess
	}
	return LabelMore
}

// View returns the first initialVisible items, or all of them when expanded.
// The toggle is offered only when the list overflows initialVisible.
func View[T any](items []T, initialVisible int, expanded bool) Result[T] {
	if initialVisible < 0 {
		initialVisible = 0
	}
	overflow := len(items) > initialVisible
	n := len(items)
	if overflow && !expanded {
		n = initialVisible
	}
	return Result[T]{
		Items:      entries(items[:n]),
		ShowToggle: overflow,
		Expanded:   expanded && overflow,
	}
}

// Full returns every item with no toggle, the wide layout path.
func Full[T any](items []T) Result[T] {
	return Result[T]{Items: entries(items)}
}

func entries[T any](items []T) []Entry[T] {
	out := make([]Entry[T], len(items))
	for i, it := range items {
		out[i] = Entry[T]{Item: it, Index: i, Delay: time.Duration(i) * StaggerStep}
	}
	return out
}
