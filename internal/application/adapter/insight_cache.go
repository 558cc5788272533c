package adapter

import (
	"context"
	"time"
)

// InsightCache stores computed reports per user so repeated dashboard reads
// skip recomputation. Entries expire after a bounded TTL and every mutation of
// a user's records or budgets invalidates that user's entries.
type InsightCache interface {
	// Get loads the entry stored under key into dest. The boolean is false on a miss.
	Get(ctx context.Context, userID, key string, dest any) (bool, error)

	// Set stores value under key for userID with the given TTL.
	Set(ctx context.Context, userID, key string, value any, ttl time.Duration) error

	// InvalidateUser drops every entry of userID.
	InvalidateUser(ctx context.Context, userID string) error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}
