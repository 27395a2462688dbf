// Package store wraps a key-value backend with JSON encode/decode and a
// fail-soft contract: any backend or codec failure is logged and
// reported as a not-found read or a false write, never as a fault.
package store

import "context"

// Store is the key-value blob adapter. Values are JSON-marshalled by
// the implementation. Get reports false for missing keys, corrupt
// payloads, and backend errors alike; Set and Remove report false on
// any failure. Callers treat persistence as best-effort and must check
// the result before trusting local state.
type Store interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any) bool
	Remove(ctx context.Context, key string) bool
}
