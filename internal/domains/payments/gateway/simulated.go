package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Simulated stands in for a real processor: it waits a configurable bounded
// delay and then succeeds. Abandoning the charge is the caller cancelling the
// context.
type Simulated struct {
	delay time.Duration
}

var _ Gateway = (*Simulated)(nil)

func NewSimulated(processingMs int) *Simulated {
	return &Simulated{delay: time.Duration(processingMs) * time.Millisecond}
}

func (g *Simulated) Charge(ctx context.Context, _ Charge) (Receipt, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	return Receipt{
		TransactionID: "sim-" + uuid.NewString(),
	}, nil
}
