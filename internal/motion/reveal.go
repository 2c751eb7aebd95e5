package motion

import "time"

// Phase is the state of a Reveal.
type Phase int

const (
	Armed Phase = iota
	Fired
)

func (p Phase) String() string {
	if p == Fired {
		return "fired"
	}
	return "armed"
}

// Reveal animates from a hidden frame to Rest the first time its element is seen.
// Later visibility changes are ignored.
type Reveal struct {
	hidden     Frame
	transition Transition
	phase      Phase
	firedAt    time.Time
}

func NewReveal(hidden Frame, t Transition) *Reveal {
	return &Reveal{hidden: hidden, transition: t}
}

// Section is the slide-in used by page sections.
func Section(d Direction, delay time.Duration) *Reveal {
	return NewReveal(Entry(d), Transition{Duration: EntryDuration, Delay: delay})
}

// Item is the staggered rise used by list items at position index.
func Item(index int) *Reveal {
	return NewReveal(Rise, Transition{Duration: RiseDuration, Delay: time.Duration(index) * RiseStagger})
}

func (r *Reveal) Phase() Phase { return r.phase }

func (r *Reveal) Hidden() Frame { return r.hidden }

func (r *Reveal) Transition() Transition { return r.transition }

// Observe reports a visibility ratio in [0,1]. It returns true only on the call that fires.
func (r *Reveal) Observe(ratio float64, at time.Time) bool {
	if r.phase == Fired || ratio < Amount {
		return false
	}
	r.phase = Fired
	r.firedAt = at
	return true
}

// Frame returns the presentation state at the given instant.
func (r *Reveal) Frame(at time.Time) Frame {
	if r.phase == Armed {
		return r.hidden
	}
	return Lerp(r.hidden, Rest, r.transition.Progress(at.Sub(r.firedAt)))
}

// Animating reports whether the frame still changes after at.
func (r *Reveal) Animating(at time.Time) bool {
	return r.phase == Fired && at.Sub(r.firedAt) < r.transition.Total()
}
