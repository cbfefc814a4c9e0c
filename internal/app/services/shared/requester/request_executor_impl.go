package requester

import (
	"context"
	"sync/atomic"
	"transactions-client/internal/app/contracts"
)

type requestExecutor struct {
	inFlight atomic.Int32
}

// NewRequestExecutor returns an executor whose Loading flag is true while at
// least one request it runs has not settled.
func NewRequestExecutor() contracts.RequestExecutor {
	return &requestExecutor{}
}

func (e *requestExecutor) Run(ctx context.Context, request func(ctx context.Context) error) error {
	e.inFlight.Add(1)
	defer e.inFlight.Add(-1)

	return request(ctx)
}

func (e *requestExecutor) Loading() bool {
	return e.inFlight.Load() > 0
}
