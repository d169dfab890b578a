package llm

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/openai/openai-go/v3/option"
)

// Throttle spaces outgoing requests by a minimum interval.
type Throttle struct {
	minInterval time.Duration
	lastRequest time.Time
	mu          sync.Mutex
}

func NewThrottle(minInterval time.Duration) *Throttle {
	return &Throttle{minInterval: minInterval}
}

// Wait claims the next time slot and blocks until it arrives or ctx ends.
func (t *Throttle) Wait(ctx context.Context) error {
	// Check context before claiming a time slot
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if t.minInterval <= 0 {
		return nil
	}

	t.mu.Lock()
	now := time.Now()
	nextAllowed := t.lastRequest.Add(t.minInterval)
	var waitTime time.Duration
	if now.Before(nextAllowed) {
		waitTime = nextAllowed.Sub(now)
		t.lastRequest = nextAllowed
	} else {
		t.lastRequest = now
	}
	t.mu.Unlock()

	if waitTime <= 0 {
		return nil
	}

	timer := time.NewTimer(waitTime)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Middleware adapts Wait to the OpenAI client's middleware chain.
func (t *Throttle) Middleware(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	if err := t.Wait(req.Context()); err != nil {
		return nil, err
	}
	return next(req)
}
