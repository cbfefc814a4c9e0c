package contracts

import "context"

// RequestExecutor runs a request while exposing whether any request it runs
// is still in flight.
type RequestExecutor interface {
	Run(ctx context.Context, request func(ctx context.Context) error) error
	Loading() bool
}
