package service

import "context"

// IdempotencyGuard prevents a client-supplied request key from being processed twice.
type IdempotencyGuard interface {
	// Claim reserves key. It returns false if the key was already claimed and not released.
	Claim(ctx context.Context, key string) (bool, error)

	// Release frees key so the client can retry after a failure.
	Release(ctx context.Context, key string) error
}
