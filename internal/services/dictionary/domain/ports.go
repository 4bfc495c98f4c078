package domain

import "context"

// Fetcher fetches the canonical dictionary from its source. One call, no
// retry; retry policy belongs to the cache.
type Fetcher interface {
	FetchDictionary(ctx context.Context) ([]Entry, error)
}

// ReaderPort hands out the cached entry sequence, fetching it on first use.
// The returned slice is shared read-only by every caller; nobody may mutate it.
type ReaderPort interface {
	Ensure(ctx context.Context) ([]Entry, error)
}
