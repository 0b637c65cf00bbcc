package domain

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/mouse-blink/grepnav/internal/adapter"
	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// SearchState is the terminal status of one search request.
type SearchState int

const (
	// SearchIdle means no search has completed yet.
	SearchIdle SearchState = iota
	// SearchRunning means the executor has been called and has not returned.
	SearchRunning
	// SearchSucceeded means the executor returned matches (possibly none).
	SearchSucceeded
	// SearchFailed means the executor reported an error.
	SearchFailed
	// SearchBlocked means the request was rejected before the executor ran.
	SearchBlocked
)

func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchRunning:
		return "running"
	case SearchSucceeded:
		return "succeeded"
	case SearchFailed:
		return "failed"
	case SearchBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// SearchOptions are the user supplied search parameters. Root and scope come
// from the session.
type SearchOptions struct {
	Query         string
	Extensions    string
	CaseSensitive bool
	ExtraArgs     string
}

// SearchOutcome reports one search run.
type SearchOutcome struct {
	RunID    string
	State    SearchState
	Request  m.SearchRequest
	Index    *ResultIndex
	Duration time.Duration
	Err      error
}

// SearchListener receives the state transitions of a Searcher. SearchFinished
// is delivered for every run that got past validation, whatever its outcome.
type SearchListener interface {
	SearchBlocked(err error)
	SearchStarted(runID string, req m.SearchRequest)
	SearchFinished(outcome SearchOutcome)
}

// NopSearchListener ignores every notification.
type NopSearchListener struct{}

// SearchBlocked implements SearchListener.
func (NopSearchListener) SearchBlocked(error) {}

// SearchStarted implements SearchListener.
func (NopSearchListener) SearchStarted(string, m.SearchRequest) {}

// SearchFinished implements SearchListener.
func (NopSearchListener) SearchFinished(SearchOutcome) {}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithClock replaces the clock used to time searches.
func WithClock(now func() time.Time) SearcherOption {
	return func(s *Searcher) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDs replaces the run ID generator.
func WithRunIDs(next func() string) SearcherOption {
	return func(s *Searcher) {
		if next != nil {
			s.newRunID = next
		}
	}
}

// WithListener sets the initial listener.
func WithListener(l SearchListener) SearcherOption {
	return func(s *Searcher) {
		s.SetListener(l)
	}
}

// Searcher validates search requests, runs them one at a time against the
// executor and turns the matches into a ResultIndex.
type Searcher struct {
	executor adapter.SearchExecutor
	tree     *Tree
	scope    *ScopeSelector
	log      logger.Logger

	sem      *semaphore.Weighted
	running  atomic.Bool
	now      func() time.Time
	newRunID func() string

	mu       sync.Mutex
	listener SearchListener
	last     SearchOutcome
}

// NewSearcher creates a Searcher that searches the effective scope of scope
// below the root of tree.
func NewSearcher(executor adapter.SearchExecutor, tree *Tree, scope *ScopeSelector, log logger.Logger, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		executor: executor,
		tree:     tree,
		scope:    scope,
		log:      logger.OrNop(log),
		sem:      semaphore.NewWeighted(1),
		now:      time.Now,
		newRunID: uuid.NewString,
		listener: NopSearchListener{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetListener replaces the listener. A nil listener discards notifications.
func (s *Searcher) SetListener(l SearchListener) {
	if l == nil {
		l = NopSearchListener{}
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()
}

// IsRunning reports whether a search is outstanding.
func (s *Searcher) IsRunning() bool {
	return s.running.Load()
}

// Last returns the outcome of the most recent completed run. After a failed
// run its Index is nil.
func (s *Searcher) Last() SearchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Preview returns the executor's display form of the request Run would send.
func (s *Searcher) Preview(opts SearchOptions) string {
	return s.executor.Preview(s.request(s.tree.Root(), opts))
}

// Run validates opts, then searches. Validation failures and a concurrent
// run are rejected before anything else happens, so the previous outcome
// stays in place. An executor error is returned verbatim and also recorded
// in the outcome.
func (s *Searcher) Run(ctx context.Context, opts SearchOptions) (outcome SearchOutcome, err error) {
	root := s.tree.Root()

	if err := validateSearch(opts, root); err != nil {
		return s.block(err)
	}

	if !s.sem.TryAcquire(1) {
		return s.block(ErrSearchInProgress)
	}

	s.running.Store(true)

	req := s.request(root, opts)
	outcome = SearchOutcome{
		RunID:   s.newRunID(),
		State:   SearchRunning,
		Request: req,
	}

	s.currentListener().SearchStarted(outcome.RunID, req)
	s.log.Infof("search %s started: %q in %d path(s)", outcome.RunID, req.Query, len(req.Paths))

	start := s.now()

	defer func() {
		if rec := recover(); rec != nil {
			outcome.State = SearchFailed
			outcome.Index = nil
			outcome.Err = fmt.Errorf("search executor panicked: %v", rec)
			err = outcome.Err
		}

		outcome.Duration = s.now().Sub(start)
		s.finish(outcome)
	}()

	result, err := s.executor.Search(ctx, req)
	if err != nil {
		outcome.State = SearchFailed
		outcome.Err = err

		return outcome, err
	}

	outcome.State = SearchSucceeded
	outcome.Index = BuildResultIndex(result.Matches)

	return outcome, nil
}

func (s *Searcher) block(err error) (SearchOutcome, error) {
	s.log.Debugf("search blocked: %v", err)
	s.currentListener().SearchBlocked(err)

	return SearchOutcome{State: SearchBlocked, Err: err}, err
}

func (s *Searcher) finish(outcome SearchOutcome) {
	s.mu.Lock()
	s.last = outcome
	listener := s.listener
	s.mu.Unlock()

	if outcome.Err != nil {
		s.log.Warnf("search %s failed after %s: %v", outcome.RunID, outcome.Duration, outcome.Err)
	} else {
		s.log.Infof("search %s finished in %s: %d match(es) in %d file(s)",
			outcome.RunID, outcome.Duration, outcome.Index.Count(), outcome.Index.Len())
	}

	s.running.Store(false)
	s.sem.Release(1)

	listener.SearchFinished(outcome)
}

func (s *Searcher) request(root m.Path, opts SearchOptions) m.SearchRequest {
	var paths []m.Path
	if root != "" {
		paths = s.scope.EffectiveScope(root)
	}

	return m.SearchRequest{
		Query:         opts.Query,
		Paths:         paths,
		Root:          root,
		Extensions:    opts.Extensions,
		CaseSensitive: opts.CaseSensitive,
		ExtraArgs:     opts.ExtraArgs,
	}
}

func (s *Searcher) currentListener() SearchListener {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listener
}

func validateSearch(opts SearchOptions, root m.Path) error {
	if opts.Query == "" {
		return ErrEmptyQuery
	}

	if root == "" {
		return ErrNoRoot
	}

	return nil
}
