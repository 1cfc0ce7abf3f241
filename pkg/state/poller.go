package state

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Poller periodically invokes a refresh function, e.g. the 5-second note
// refresh while the notes screen is visible. It is explicitly cancellable so
// polling can be suspended when the view is not active, and it skips a tick
// when the previous refresh has not finished yet.
type Poller struct {
	interval time.Duration
	refresh  func(context.Context) error
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	busy   atomic.Bool
}

// NewPoller creates a Poller that calls refresh every interval once started.
func NewPoller(interval time.Duration, refresh func(context.Context) error, log zerolog.Logger) *Poller {
	return &Poller{interval: interval, refresh: refresh, log: log}
}

// Start begins polling until Stop is called or ctx is cancelled. Calling
// Start while already running is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	go p.run(ctx)
}

// Stop cancels polling. Safe to call when not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.busy.CompareAndSwap(false, true) {
				// Previous refresh still in flight; skip this tick rather
				// than stacking overlapping requests.
				p.log.Debug().Msg("poller: refresh still running, tick skipped")
				continue
			}
			go func() {
				defer p.busy.Store(false)
				if err := p.refresh(ctx); err != nil {
					p.log.Warn().Err(err).Msg("poller: refresh failed")
				}
			}()
		}
	}
}
