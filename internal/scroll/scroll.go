// Package scroll tracks the page offset against the return-to-top threshold and animates jumps.
package scroll

import (
	"sync"
	"time"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/motion"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/signal"
)

const (
	// Threshold is the offset past which the return-to-top control shows.
	Threshold = 300.0
	// Duration of a smooth scroll.
	Duration = 500 * time.Millisecond
	// NavOffset keeps a section heading clear of the sticky header.
	NavOffset = -70.0
)

// PastThreshold reports whether offset is beyond Threshold.
func PastThreshold(offset float64) bool {
	return offset > Threshold
}

// Watcher recomputes the threshold flag on every offset it receives.
type Watcher struct {
	mu       sync.Mutex
	past     bool
	onChange func(bool)
}

// Attach subscribes the watcher to scroll offsets.
func (w *Watcher) Attach(src *signal.Source[float64]) (detach func()) {
	return src.Listen(w.Update)
}

// OnChange registers fn to run whenever the flag flips.
func (w *Watcher) OnChange(fn func(past bool)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// Update recomputes the flag from offset.
func (w *Watcher) Update(offset float64) {
	past := PastThreshold(offset)
	w.mu.Lock()
	changed := past != w.past
	w.past = past
	fn := w.onChange
	w.mu.Unlock()
	if changed && fn != nil {
		fn(past)
	}
}

func (w *Watcher) Past() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.past
}

// Smooth animates an offset from one value to another.
type Smooth struct {
	from, to float64
	started  time.Time
	tr       motion.Transition
}

// To starts a smooth scroll from the current offset.
func To(from, to float64, at time.Time) *Smooth {
	return &Smooth{
		from:    from,
		to:      to,
		started: at,
		tr:      motion.Transition{Duration: Duration, Ease: motion.EaseInOutQuart},
	}
}

// Offset is the scroll position at the given instant.
func (s *Smooth) Offset(at time.Time) float64 {
	return s.from + (s.to-s.from)*s.tr.Progress(at.Sub(s.started))
}

// Done reports whether the animation has reached its destination.
func (s *Smooth) Done(at time.Time) bool {
	return at.Sub(s.started) >= s.tr.Total()
}

func (s *Smooth) Target() float64 { return s.to }

// SectionTarget is where a navigation link scrolls to for a section starting at top.
func SectionTarget(top float64) float64 {
	return max(top+NavOffset, 0)
}
