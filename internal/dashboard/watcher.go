// Package dashboard keeps the on-shift view current: it reloads the schedule
// tables, re-runs the evaluator on a clock tick and pushes changed results to
// subscribers.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/realtime"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

type Loader interface {
	LoadTables() ([]shift.Table, error)
}

// Observer receives every evaluation and reload outcome. metrics.Manager
// implements it.
type Observer interface {
	ObserveEvaluation(result domain.OnShift)
	ObserveReload(err error)
}

type Watcher struct {
	loader         Loader
	observer       Observer
	tickInterval   time.Duration
	reloadInterval time.Duration
	now            func() time.Time
	loc            *time.Location

	mu          sync.Mutex
	tables      []shift.Table
	loaded      bool
	last        domain.OnShift
	emitted     bool
	closed      bool
	subscribers map[chan domain.OnShift]struct{}
}

type Option func(*Watcher)

func WithTickInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.tickInterval = d
		}
	}
}

func WithReloadInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.reloadInterval = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		if now != nil {
			w.now = now
		}
	}
}

func WithObserver(o Observer) Option {
	return func(w *Watcher) {
		w.observer = o
	}
}

func WithLocation(loc *time.Location) Option {
	return func(w *Watcher) {
		if loc != nil {
			w.loc = loc
		}
	}
}

func NewWatcher(loader Loader, opts ...Option) *Watcher {
	w := &Watcher{
		loader:         loader,
		tickInterval:   time.Second,
		reloadInterval: 30 * time.Second,
		now:            time.Now,
		loc:            shift.Pacific(),
		subscribers:    make(map[chan domain.OnShift]struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run drives the watcher until ctx is done, then closes every subscription.
// changes may be nil.
func (w *Watcher) Run(ctx context.Context, changes <-chan domain.ChangeEvent) {
	defer w.Close()

	w.Reload()
	w.Evaluate()

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()
	reloadTicker := time.NewTicker(w.reloadInterval)
	defer reloadTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Evaluate()
		case <-reloadTicker.C:
			w.Reload()
			w.Evaluate()
		case event, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if !realtime.IsScheduleChange(event) {
				continue
			}
			slog.Debug("schedule changed", "collection", event.Collection, "id", event.ID, "op", event.Op)
			w.Reload()
			w.Evaluate()
		}
	}
}

// Reload fetches the schedule tables. On failure the last good tables stay
// in use.
func (w *Watcher) Reload() error {
	tables, err := w.loader.LoadTables()
	if w.observer != nil {
		w.observer.ObserveReload(err)
	}
	if err != nil {
		slog.Error("failed to load schedule tables", "error", err)
		return err
	}

	w.mu.Lock()
	w.tables = tables
	w.loaded = true
	w.mu.Unlock()

	return nil
}

// Evaluate runs the evaluator against the loaded tables. It reports whether
// the result differed from the last one and was pushed to subscribers.
func (w *Watcher) Evaluate() (domain.OnShift, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loaded {
		return domain.OnShift{}, false
	}

	result := shift.Evaluate(w.tables, w.now(), w.loc)
	if w.observer != nil {
		w.observer.ObserveEvaluation(result)
	}

	if w.emitted && result.Equal(w.last) {
		return result, false
	}

	w.last = result
	w.emitted = true
	for ch := range w.subscribers {
		offer(ch, result)
	}

	return result, true
}

// Latest returns the last emitted result.
func (w *Watcher) Latest() (domain.OnShift, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.last, w.emitted
}

// Subscribe registers for changed results. A subscriber that falls behind
// only sees the newest one. The current result, if any, is delivered first.
func (w *Watcher) Subscribe() (<-chan domain.OnShift, func()) {
	ch := make(chan domain.OnShift, 1)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	w.subscribers[ch] = struct{}{}
	if w.emitted {
		ch <- w.last
	}
	w.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subscribers, ch)
			w.mu.Unlock()
		})
	}

	return ch, cancel
}

// Close ends every subscription by closing its channel. Later subscriptions
// get a closed channel.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	for ch := range w.subscribers {
		delete(w.subscribers, ch)
		close(ch)
	}
}

// offer replaces any unread value in ch with v. Callers hold w.mu.
func offer(ch chan domain.OnShift, v domain.OnShift) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
