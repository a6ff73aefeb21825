package metadata

import (
	"context"
	"sync"
	"time"
)

// Searcher debounces interactive search input. Each Query cancels the
// previous in-flight one; the search only fires after the settle period,
// and only the latest query's results are delivered. A result that loses
// the race to a newer query is dropped, never delivered late.
type Searcher struct {
	client Client
	delay  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func NewSearcher(client Client, delay time.Duration) *Searcher {
	return &Searcher{
		client: client,
		delay:  delay,
	}
}

// Query schedules a debounced search and delivers results asynchronously.
// deliver is called at most once per Query, and only if no newer Query
// arrived in the meantime.
func (s *Searcher) Query(query string, deliver func([]Movie)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	go func() {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		results := s.client.Search(ctx, query)

		s.mu.Lock()
		latest := s.seq == seq
		s.mu.Unlock()

		if latest && ctx.Err() == nil {
			deliver(results)
		}
	}()
}

// SearchLatest is the blocking counterpart of Query for request/response
// callers. It waits out the settle period and returns the provider's
// results, or nil as soon as a newer query supersedes this one or ctx is
// cancelled.
func (s *Searcher) SearchLatest(ctx context.Context, query string) []Movie {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	qctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-qctx.Done():
		return nil
	case <-timer.C:
	}

	results := s.client.Search(qctx, query)

	s.mu.Lock()
	latest := s.seq == seq
	s.mu.Unlock()

	if !latest || qctx.Err() != nil {
		return nil
	}
	return results
}

// Close cancels any pending search.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
