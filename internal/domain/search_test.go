package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	adaptermocks "github.com/mouse-blink/grepnav/internal/adapter/mocks"
	"github.com/mouse-blink/grepnav/internal/domain"
	"github.com/mouse-blink/grepnav/internal/domain/mocks"
	m "github.com/mouse-blink/grepnav/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchFixture struct {
	executor *adaptermocks.MockSearchExecutor
	listener *mocks.MockSearchListener
	tree     *domain.Tree
	scope    *domain.ScopeSelector
	searcher *domain.Searcher
}

// stepClock returns t0, then t0+step, t0+2*step, ...
func stepClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	calls := 0

	return func() time.Time {
		now := t0.Add(time.Duration(calls) * step)
		calls++

		return now
	}
}

func newSearchFixture(t *testing.T, root m.Path) *searchFixture {
	t.Helper()

	lister := adaptermocks.NewMockDirectoryLister(t)
	tree := domain.NewTree(lister, nil)

	if root != "" {
		lister.EXPECT().List(mock.Anything, root).Return(nil, nil).Once()
		require.NoError(t, tree.LoadRoot(context.Background(), root))
	}

	f := &searchFixture{
		executor: adaptermocks.NewMockSearchExecutor(t),
		listener: mocks.NewMockSearchListener(t),
		tree:     tree,
		scope:    domain.NewScopeSelector(),
	}

	f.searcher = domain.NewSearcher(f.executor, f.tree, f.scope, nil,
		domain.WithClock(stepClock(250*time.Millisecond)),
		domain.WithRunIDs(func() string { return "run-1" }),
		domain.WithListener(f.listener),
	)

	return f
}

func TestSearcher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		root    m.Path
		query   string
		wantErr error
	}{
		{name: "empty query", root: "/proj", query: "", wantErr: domain.ErrEmptyQuery},
		{name: "no root", root: "", query: "needle", wantErr: domain.ErrNoRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFixture(t, tt.root)
			f.listener.EXPECT().SearchBlocked(tt.wantErr).Once()

			outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: tt.query})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.SearchBlocked, outcome.State)
			assert.False(t, f.searcher.IsRunning())
			assert.Equal(t, domain.SearchIdle, f.searcher.Last().State, "nothing ran")
		})
	}
}

func TestSearcher_WhitespaceQueryRuns(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	wantReq := m.SearchRequest{Query: " ", Paths: []m.Path{"/proj"}, Root: "/proj"}

	f.listener.EXPECT().SearchStarted("run-1", wantReq).Once()
	f.executor.EXPECT().Search(mock.Anything, wantReq).
		Return(m.SearchResult{Matches: []m.Match{{FilePath: "/proj/a.txt", LineNumber: 2}}}, nil).Once()
	f.listener.EXPECT().SearchFinished(mock.Anything).Once()

	outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: " "})
	require.NoError(t, err)

	assert.Equal(t, domain.SearchSucceeded, outcome.State)
	assert.Equal(t, 1, outcome.Index.Count())
}

func TestSearcher_ValidationKeepsPreviousResults(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	f.executor.EXPECT().Search(mock.Anything, mock.Anything).
		Return(m.SearchResult{Matches: []m.Match{{FilePath: "/proj/a.txt", LineNumber: 1}}}, nil).Once()
	f.listener.EXPECT().SearchStarted(mock.Anything, mock.Anything).Once()
	f.listener.EXPECT().SearchFinished(mock.Anything).Once()
	f.listener.EXPECT().SearchBlocked(domain.ErrEmptyQuery).Once()

	_, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "a"})
	require.NoError(t, err)

	_, err = f.searcher.Run(context.Background(), domain.SearchOptions{Query: ""})
	require.ErrorIs(t, err, domain.ErrEmptyQuery)

	last := f.searcher.Last()
	assert.Equal(t, domain.SearchSucceeded, last.State)
	assert.Equal(t, 1, last.Index.Count())
}

func TestSearcher_Success(t *testing.T) {
	f := newSearchFixture(t, "/proj")
	f.scope.Check("/proj/src")
	f.scope.Check("/proj/docs")

	wantReq := m.SearchRequest{
		Query:         "needle",
		Paths:         []m.Path{"/proj/src", "/proj/docs"},
		Root:          "/proj",
		Extensions:    "go,md",
		CaseSensitive: true,
		ExtraArgs:     "--hidden",
	}

	f.listener.EXPECT().SearchStarted("run-1", wantReq).Once()
	f.executor.EXPECT().Search(mock.Anything, wantReq).
		Return(m.SearchResult{Matches: []m.Match{
			{FilePath: "/proj/src/a.go", LineNumber: 4},
			{FilePath: "/proj/docs/b.md", LineNumber: 2},
		}}, nil).Once()
	f.listener.EXPECT().SearchFinished(mock.MatchedBy(func(o domain.SearchOutcome) bool {
		return o.RunID == "run-1" && o.State == domain.SearchSucceeded && o.Index.Count() == 2
	})).Once()

	outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{
		Query:         "needle",
		Extensions:    "go,md",
		CaseSensitive: true,
		ExtraArgs:     "--hidden",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SearchSucceeded, outcome.State)
	assert.Equal(t, 250*time.Millisecond, outcome.Duration)
	assert.Equal(t, 2, outcome.Index.Len())
	assert.False(t, f.searcher.IsRunning())
	assert.Equal(t, outcome, f.searcher.Last())
}

func TestSearcher_ZeroMatchesIsSuccess(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	f.listener.EXPECT().SearchStarted(mock.Anything, mock.Anything).Once()
	f.executor.EXPECT().Search(mock.Anything, mock.Anything).Return(m.SearchResult{}, nil).Once()
	f.listener.EXPECT().SearchFinished(mock.Anything).Once()

	outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "nothing"})

	require.NoError(t, err)
	assert.Equal(t, domain.SearchSucceeded, outcome.State)
	assert.Equal(t, 0, outcome.Index.Count())
	assert.Empty(t, outcome.Index.Groups())
}

func TestSearcher_FailureSurfacesErrorVerbatim(t *testing.T) {
	f := newSearchFixture(t, "/proj")
	f.scope.Check("/proj/src")

	f.listener.EXPECT().SearchStarted(mock.Anything, mock.Anything).Twice()
	f.listener.EXPECT().SearchFinished(mock.Anything).Twice()
	f.executor.EXPECT().Search(mock.Anything, mock.Anything).
		Return(m.SearchResult{Matches: []m.Match{{FilePath: "/proj/src/a.go", LineNumber: 1}}}, nil).Once()
	f.executor.EXPECT().Search(mock.Anything, mock.Anything).
		Return(m.SearchResult{}, errors.New("regex parse error: unclosed group")).Once()

	_, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "ok"})
	require.NoError(t, err)

	outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "(bad"})

	require.Error(t, err)
	assert.Equal(t, "regex parse error: unclosed group", err.Error())
	assert.Equal(t, domain.SearchFailed, outcome.State)
	assert.Nil(t, outcome.Index)
	assert.Nil(t, f.searcher.Last().Index, "previous results are discarded")
	assert.Equal(t, []m.Path{"/proj/src"}, f.scope.Checked(), "scope is untouched")
	assert.Equal(t, m.Path("/proj"), f.tree.Root())
}

func TestSearcher_SingleFlight(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	entered := make(chan struct{})
	release := make(chan struct{})

	f.listener.EXPECT().SearchStarted(mock.Anything, mock.Anything).Once()
	f.listener.EXPECT().SearchBlocked(domain.ErrSearchInProgress).Once()
	f.listener.EXPECT().SearchFinished(mock.Anything).Once()
	f.executor.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, m.SearchRequest) (m.SearchResult, error) {
			close(entered)
			<-release

			return m.SearchResult{}, nil
		}).Once()

	done := make(chan error, 1)

	go func() {
		_, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "first"})
		done <- err
	}()

	<-entered
	assert.True(t, f.searcher.IsRunning())

	_, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "second"})
	require.ErrorIs(t, err, domain.ErrSearchInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.searcher.IsRunning())
}

func TestSearcher_ExecutorPanicStillFinishes(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	f.listener.EXPECT().SearchStarted(mock.Anything, mock.Anything).Once()
	f.listener.EXPECT().SearchFinished(mock.MatchedBy(func(o domain.SearchOutcome) bool {
		return o.State == domain.SearchFailed
	})).Once()
	f.executor.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, m.SearchRequest) (m.SearchResult, error) {
			panic("boom")
		}).Once()

	outcome, err := f.searcher.Run(context.Background(), domain.SearchOptions{Query: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, domain.SearchFailed, outcome.State)
	assert.False(t, f.searcher.IsRunning())
}

func TestSearcher_Preview(t *testing.T) {
	f := newSearchFixture(t, "/proj")

	f.executor.EXPECT().Preview(m.SearchRequest{
		Query: "needle",
		Paths: []m.Path{"/proj"},
		Root:  "/proj",
	}).Return("rg --json -i -e needle /proj").Once()

	assert.Equal(t, "rg --json -i -e needle /proj", f.searcher.Preview(domain.SearchOptions{Query: "needle"}))
}

func TestSearchState_String(t *testing.T) {
	assert.Equal(t, "idle", domain.SearchIdle.String())
	assert.Equal(t, "running", domain.SearchRunning.String())
	assert.Equal(t, "succeeded", domain.SearchSucceeded.String())
	assert.Equal(t, "failed", domain.SearchFailed.String())
	assert.Equal(t, "blocked", domain.SearchBlocked.String())
	assert.Equal(t, "unknown", domain.SearchState(99).String())
}
