package carousel

import (
	"sync"
	"time"
)

// Rotator advances the displayed carousel index on a fixed interval.
// Manual selection restarts the interval. There is only ever one pending timer.
type Rotator struct {
	mu       sync.Mutex
	index    int
	count    int
	interval time.Duration
	timer    *time.Timer
	gen      uint64
	running  bool
	onChange func(index int)
}

// NewRotator creates a stopped rotator over count images
func NewRotator(count int, interval time.Duration, onChange func(index int)) *Rotator {
	if count < 0 {
		count = 0
	}
	return &Rotator{
		count:    count,
		interval: interval,
		onChange: onChange,
	}
}

// Start begins auto advancing
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.running = true
	r.schedule()
}

// Stop cancels the pending advance
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.running = false
	r.cancel()
}

// Index returns the currently displayed index
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next shows the following image and restarts the interval
func (r *Rotator) Next() {
	r.manual(func() { r.index = wrap(r.index+1, r.count) })
}

// Prev shows the preceding image and restarts the interval
func (r *Rotator) Prev() {
	r.manual(func() { r.index = wrap(r.index-1, r.count) })
}

// Select shows the given image and restarts the interval.
// out of range indexes are wrapped into the list.
func (r *Rotator) Select(index int) {
	r.manual(func() { r.index = wrap(index, r.count) })
}

// SetCount updates the number of images, keeping the index inside the list
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	if count < 0 {
		count = 0
	}
	r.count = count
	changed := false
	if r.index >= count {
		r.index = 0
		changed = true
	}
	index := r.index
	if r.running {
		r.schedule()
	}
	r.mu.Unlock()

	if changed {
		r.notify(index)
	}
}

func (r *Rotator) manual(move func()) {
	r.mu.Lock()
	move()
	index := r.index
	if r.running {
		r.schedule()
	}
	r.mu.Unlock()

	r.notify(index)
}

// schedule replaces the pending timer. caller holds mu.
func (r *Rotator) schedule() {
	r.cancel()
	if r.count < 2 || r.interval <= 0 {
		return
	}

	gen := r.gen
	r.timer = time.AfterFunc(r.interval, func() {
		r.tick(gen)
	})
}

// cancel stops the pending timer. caller holds mu.
func (r *Rotator) cancel() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator) tick(gen uint64) {
	r.mu.Lock()
	// a timer that fired while being replaced is stale
	if gen != r.gen || !r.running {
		r.mu.Unlock()
		return
	}
	r.index = wrap(r.index+1, r.count)
	index := r.index
	r.schedule()
	r.mu.Unlock()

	r.notify(index)
}

func (r *Rotator) notify(index int) {
	if r.onChange != nil {
		r.onChange(index)
	}
}

func wrap(index, count int) int {
	if count <= 0 {
		return 0
	}
	index %= count
	if index < 0 {
		index += count
	}
	return index
}
