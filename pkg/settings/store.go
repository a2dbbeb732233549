package settings

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultFetchTimeout bounds every fetch issued by the store
const DefaultFetchTimeout = 5 * time.Second

// Fetcher loads the settings document from wherever it lives
type Fetcher interface {
	Fetch(ctx context.Context) (*Settings, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context) (*Settings, error)

// Fetch calls f(ctx)
func (f FetcherFunc) Fetch(ctx context.Context) (*Settings, error) {
	return f(ctx)
}

// Option configures a Store
type Option func(*Store)

// WithTimeout overrides DefaultFetchTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used for swallowed fetch failures
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store shares one settings document with every consumer.
// The document is fetched once by Initialize and replaced only by Refresh;
// the pointer returned by Current must be treated as read-only.
type Store struct {
	fetcher Fetcher
	timeout time.Duration
	log     *zap.Logger

	initOnce sync.Once
	ready    chan struct{}

	mu        sync.RWMutex
	current   *Settings
	loading   bool
	resolved  bool
	updatedAt time.Time
}

// NewStore creates a store backed by fetcher
func NewStore(fetcher Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher: fetcher,
		timeout: DefaultFetchTimeout,
		log:     zap.L(),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize performs the initial fetch. Only the first call fetches; concurrent
// callers wait for it to finish. Failures are logged and leave the value nil.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer close(s.ready)

		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		doc, err := s.fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		s.resolved = true
		if err != nil {
			s.log.Warn("Settings initialization failed, using defaults", zap.Error(err))
			return
		}
		s.current = doc
		s.updatedAt = time.Now()
		s.log.Info("Settings loaded")
	})
}

// Start runs Initialize in the background and returns immediately
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	if !s.resolved {
		s.loading = true
	}
	s.mu.Unlock()

	go s.Initialize(ctx)
}

// Ready is closed once the initial fetch has resolved
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Current returns the loaded document, or nil when none is available
func (s *Store) Current() *Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsLoading reports whether the initial fetch is in flight
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// UpdatedAt is the time of the last successful fetch; zero if none
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Refresh fetches again and replaces the document on success.
// On failure the previous document is kept and the error returned.
// Concurrent refreshes are not coalesced; the last one to finish wins.
func (s *Store) Refresh(ctx context.Context) error {
	doc, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("Settings refresh failed, keeping previous value", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.current = doc
	s.updatedAt = time.Now()
	s.mu.Unlock()

	s.log.Info("Settings refreshed")
	return nil
}

func (s *Store) fetch(ctx context.Context) (*Settings, error) {
	if s.fetcher == nil {
		return nil, ErrNoFetcher
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		doc *Settings
		err error
	}
	done := make(chan result, 1)
	go func() {
		doc, err := s.fetcher.Fetch(ctx)
		done <- result{doc: doc, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrFetchTimeout
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		if r.doc == nil {
			return nil, ErrEmptyDocument
		}
		return r.doc, nil
	}
}
