package weather

import (
	"context"
	"log"
	"sync"
	"time"
)

// Dashboard is one mounted page. It fetches once, settles once and ignores
// anything that arrives after Close.
type Dashboard struct {
	ID        string
	MountedAt time.Time

	mu     sync.RWMutex
	state  UIState
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewDashboard returns an unstarted dashboard in the Loading state.
func NewDashboard(id string, mountedAt time.Time) *Dashboard {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dashboard{
		ID:        id,
		MountedAt: mountedAt,
		state:     Loading(),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// start runs the single fetch. timeout <= 0 means the request may hang until
// the dashboard is closed.
func (d *Dashboard) start(p Provider, q Query, timeout time.Duration) {
	go func() {
		ctx := d.ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		snap, err := p.FetchCurrent(ctx, q)
		if err != nil {
			log.Printf("dashboard %s: %s fetch failed: %v", d.ID, p.Name(), err)
			d.settle(Failed(FetchFailedMessage))
			return
		}
		d.settle(Loaded(snap))
	}()
}

func (d *Dashboard) settle(s UIState) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		log.Printf("DEBUG: dashboard %s: dropping %s result after teardown", d.ID, s.Phase())
		return
	}
	if d.state.Phase() != PhaseLoading {
		return
	}
	d.state = s
	d.finish()
}

// finish must be called with mu held.
func (d *Dashboard) finish() {
	d.once.Do(func() { close(d.done) })
}

// State returns the current UI state.
func (d *Dashboard) State() UIState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Done is closed once the dashboard has settled or been torn down.
func (d *Dashboard) Done() <-chan struct{} {
	return d.done
}

// Closed reports whether Close has been called.
func (d *Dashboard) Closed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}

// Close tears the dashboard down and cancels an in-flight fetch. It is safe
// to call more than once.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.cancel()
	d.finish()
}
