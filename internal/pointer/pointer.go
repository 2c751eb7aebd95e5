// Package pointer eases a decorative element toward the most recent pointer position.
package pointer

import (
	"sync"
	"time"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/motion"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/signal"
)

// Duration of each move animation.
const Duration = 300 * time.Millisecond

// BlobHalfSize is the half width of the web page blob in pixels.
const BlobHalfSize = 150.0

type Point struct {
	X, Y float64
}

// Tracker keeps the element centered on the pointer. A move that arrives mid-flight
// restarts the animation from the currently rendered position toward the new target.
type Tracker struct {
	mu       sync.Mutex
	half     Point
	duration time.Duration
	from     Point
	to       Point
	started  time.Time
	moved    bool
}

// NewTracker returns a tracker for an element whose center is half away from its corner.
func NewTracker(half Point) *Tracker {
	return &Tracker{half: half, duration: Duration}
}

// Attach subscribes the tracker to pointer moves. now stamps each move.
func (t *Tracker) Attach(src *signal.Source[Point], now func() time.Time) (detach func()) {
	return src.Listen(func(p Point) {
		t.Move(p, now())
	})
}

// Move retargets the animation to center on p.
func (t *Tracker) Move(p Point, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.from = t.positionLocked(at)
	t.to = Point{X: p.X - t.half.X, Y: p.Y - t.half.Y}
	t.started = at
	t.moved = true
}

// Position is the element's corner at the given instant, held at the target once reached.
func (t *Tracker) Position(at time.Time) Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.positionLocked(at)
}

// Target is the position the element is heading to.
func (t *Tracker) Target() Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.to
}

// Animating reports whether Position still changes after at.
func (t *Tracker) Animating(at time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.moved && at.Sub(t.started) < t.duration
}

func (t *Tracker) positionLocked(at time.Time) Point {
	if !t.moved {
		return t.from
	}
	tr := motion.Transition{Duration: t.duration, Ease: motion.Linear}
	p := tr.Progress(at.Sub(t.started))
	return Point{
		X: t.from.X + (t.to.X-t.from.X)*p,
		Y: t.from.Y + (t.to.Y-t.from.Y)*p,
	}
}
