package cache

import (
	"context"
	"time"
)

// Noop serves every read as a miss. Used when no cache store is configured;
// reads just always hit the ledger.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool)               { return nil, false }
func (Noop) Set(ctx context.Context, key string, value any, ttl time.Duration) {}
func (Noop) Delete(ctx context.Context, keys ...string) error                  { return nil }
