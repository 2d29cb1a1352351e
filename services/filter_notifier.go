// services/filter_notifier.go
package services

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is how long filter input must stay quiet before a
// consolidated change event is delivered.
const DefaultDebounceWindow = 300 * time.Millisecond

// FilterNotifier coalesces a rapid stream of filter-state edits into a
// single consumer invocation per quiescence window: trailing debounce,
// leading edge suppressed. Each Push replaces the pending snapshot and
// restarts the window, so the consumer only ever sees the most recent
// state, at most once per window of continuous input.
//
// There is exactly one pending timer slot. A new edit cancels and
// reschedules it in O(1); no queue can build up.
type FilterNotifier struct {
	mu     sync.Mutex
	window time.Duration
	notify func(FilterState)

	timer  *time.Timer
	latest FilterState
	gen    uint64
	closed bool
}

// NewFilterNotifier wires a notifier to its downstream consumer. A
// non-positive window falls back to DefaultDebounceWindow.
func NewFilterNotifier(window time.Duration, notify func(FilterState)) *FilterNotifier {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &FilterNotifier{window: window, notify: notify}
}

// Push records a new filter-state snapshot and restarts the quiescence
// window. Any previously scheduled delivery is cancelled.
//
// Each schedule carries a generation number. timer.Stop returning false
// means the old timer already expired and its fire goroutine is in flight;
// the stale generation makes that goroutine a no-op instead of letting it
// deliver the new snapshot before its window, or clobber the new timer slot.
func (n *FilterNotifier) Push(state FilterState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.latest = state
	n.gen++
	gen := n.gen
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.window, func() { n.fire(gen) })
}

func (n *FilterNotifier) fire(gen uint64) {
	n.mu.Lock()
	if n.closed || gen != n.gen {
		n.mu.Unlock()
		return
	}
	state := n.latest
	n.timer = nil
	n.mu.Unlock()

	// Invoked outside the lock so the consumer may Push again.
	n.notify(state)
}

// Close cancels any pending delivery; no new deliveries are scheduled
// afterwards. A delivery already executing may still finish.
func (n *FilterNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
