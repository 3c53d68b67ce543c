package feed

import (
	"sync"
	"time"
)

// Bounds is a vertical extent in the scroll coordinate space
type Bounds struct {
	Top    float64
	Height float64
}

func (b Bounds) bottom() float64 {
	return b.Top + b.Height
}

// overlap returns the shared vertical extent of two bounds
func overlap(a, b Bounds) float64 {
	top := a.Top
	if b.Top > top {
		top = b.Top
	}
	bottom := a.bottom()
	if b.bottom() < bottom {
		bottom = b.bottom()
	}
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// Tracker derives the active post from scroll geometry: the post whose
// bounds share the most area with the viewport. Recomputation is
// throttled to at most once per interval. A sentinel below the list
// signals when the next page should load.
type Tracker struct {
	mu sync.Mutex

	minInterval time.Duration
	now         func() time.Time
	lastCompute time.Time

	viewport Bounds
	posts    []Bounds
	sentinel Bounds

	activeIndex int
	onActive    func(prev, next int)
}

// NewTracker creates a tracker that recomputes at most once per
// interval
func NewTracker(minInterval time.Duration) *Tracker {
	return &Tracker{
		minInterval: minInterval,
		now:         time.Now,
		activeIndex: -1,
	}
}

// OnActiveChange registers a callback fired when the dominant post
// changes
func (t *Tracker) OnActiveChange(fn func(prev, next int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onActive = fn
}

// SetViewport sets the visible window extent
func (t *Tracker) SetViewport(b Bounds) {
	t.mu.Lock()
	t.viewport = b
	t.mu.Unlock()
}

// SetPostBounds replaces the tracked post extents, in feed order
func (t *Tracker) SetPostBounds(bounds []Bounds) {
	t.mu.Lock()
	t.posts = make([]Bounds, len(bounds))
	copy(t.posts, bounds)
	t.mu.Unlock()
}

// SetSentinel places the next-page sentinel
func (t *Tracker) SetSentinel(b Bounds) {
	t.mu.Lock()
	t.sentinel = b
	t.mu.Unlock()
}

// OnScroll moves the viewport to a new offset and recomputes the
// active post, unless a recomputation ran within the throttle
// interval
func (t *Tracker) OnScroll(offset float64) {
	t.mu.Lock()

	t.viewport.Top = offset

	now := t.now()
	if !t.lastCompute.IsZero() && now.Sub(t.lastCompute) < t.minInterval {
		t.mu.Unlock()
		return
	}
	t.lastCompute = now

	prev := t.activeIndex
	next := t.dominantIndex()
	t.activeIndex = next
	fn := t.onActive
	t.mu.Unlock()

	if next != prev && fn != nil {
		fn(prev, next)
	}
}

// ActiveIndex returns the index of the dominant post, or -1 when no
// post is visible
func (t *Tracker) ActiveIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeIndex
}

// SentinelVisible reports whether the next-page sentinel intersects
// the viewport
func (t *Tracker) SentinelVisible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return overlap(t.viewport, t.sentinel) > 0
}

// dominantIndex picks the post with the largest visible extent; ties
// go to the earlier post
func (t *Tracker) dominantIndex() int {
	best := -1
	bestArea := 0.0
	for i, b := range t.posts {
		area := overlap(t.viewport, b)
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}
