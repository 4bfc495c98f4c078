// Package service implements the process-wide dictionary cache
package service

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"pashtolex/internal/platform/logger"
	dictdom "pashtolex/internal/services/dictionary/domain"
)

// fetchKey is the only singleflight key; the whole dictionary is one unit
const fetchKey = "dictionary"

// Service caches the dictionary for the lifetime of the process.
//
// Tri-state: empty until first use, pending while the one in-flight fetch
// runs, populated forever after the first success. Waiters that arrive while
// a fetch is pending share its outcome. A failed fetch is not cached; the
// next caller triggers a fresh one. There is no expiry.
type Service struct {
	fetcher dictdom.Fetcher
	log     logger.Logger

	entries atomic.Pointer[[]dictdom.Entry]
	flight  singleflight.Group
}

// New constructs the cache around a fetcher. A nil fetcher is a wiring bug
// and panics at startup rather than failing on first request.
func New(fetcher dictdom.Fetcher) *Service {
	if fetcher == nil {
		panic("dictionary service requires a fetcher")
	}
	return &Service{
		fetcher: fetcher,
		log:     *logger.Named("dictionary"),
	}
}

// Ensure returns the cached entries, fetching them on first use. The
// returned slice is shared read-only across all callers.
//
// The fetch runs on a context detached from the caller's cancellation:
// waiters share one in-flight fetch, and letting the first caller's timeout
// kill it would fail every waiter behind it. A hung upstream therefore hangs
// all callers, which matches the documented source contract.
func (s *Service) Ensure(ctx context.Context) ([]dictdom.Entry, error) {
	if entries := s.entries.Load(); entries != nil {
		return *entries, nil
	}

	v, err, _ := s.flight.Do(fetchKey, func() (any, error) {
		// double check under the flight in case a previous winner stored
		if entries := s.entries.Load(); entries != nil {
			return *entries, nil
		}

		entries, err := s.fetcher.FetchDictionary(context.WithoutCancel(ctx))
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("dictionary fetch failed")
			return nil, err
		}

		s.entries.Store(&entries)
		s.log.Info().Int("entries", len(entries)).Msg("dictionary cached")
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dictdom.Entry), nil
}

// Ready reports whether the cache is populated without triggering a fetch
func (s *Service) Ready() bool { return s.entries.Load() != nil }
