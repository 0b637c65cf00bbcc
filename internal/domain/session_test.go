package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/grepnav/internal/adapter"
	adaptermocks "github.com/mouse-blink/grepnav/internal/adapter/mocks"
	"github.com/mouse-blink/grepnav/internal/domain"
	m "github.com/mouse-blink/grepnav/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSession_EndToEnd(t *testing.T) {
	ctx := context.Background()

	lister := adaptermocks.NewMockDirectoryLister(t)
	executor := adaptermocks.NewMockSearchExecutor(t)
	editor := adaptermocks.NewMockEditorOpener(t)

	lister.EXPECT().List(mock.Anything, m.Path("/proj")).Return([]m.Entry{
		{Path: "/proj/a.txt", Name: "a.txt"},
		{Path: "/proj/b.txt", Name: "b.txt"},
	}, nil).Once()

	executor.EXPECT().Search(mock.Anything, m.SearchRequest{
		Query: "hello",
		Paths: []m.Path{"/proj"},
		Root:  "/proj",
	}).Return(m.SearchResult{Matches: []m.Match{
		{FilePath: "/proj/a.txt", DisplayPath: "a.txt", LineNumber: 3},
		{FilePath: "/proj/b.txt", DisplayPath: "b.txt", LineNumber: 1},
		{FilePath: "/proj/b.txt", DisplayPath: "b.txt", LineNumber: 9},
	}}, nil).Once()

	session := domain.NewSession(lister, executor, editor, nil)
	require.NoError(t, session.Tree.LoadRoot(ctx, "/proj"))

	outcome, err := session.Search(ctx, domain.SearchOptions{Query: "hello"})
	require.NoError(t, err)

	groups := outcome.Index.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "a.txt", groups[0].DisplayPath)
	assert.Equal(t, "b.txt", groups[1].DisplayPath)
	require.Len(t, groups[1].Matches, 2)
	assert.Equal(t, 1, groups[1].Matches[0].LineNumber)
	assert.Equal(t, 9, groups[1].Matches[1].LineNumber)

	editor.EXPECT().Open(mock.Anything, m.Path("/proj/b.txt"), 9, m.Path("/proj")).Return(nil).Once()

	revealed, err := session.OpenMatch(ctx, groups[1].Matches[1])
	require.NoError(t, err)
	assert.True(t, revealed.Found)
	assert.Equal(t, m.Path("/proj/b.txt"), revealed.Node.Path)
}

func TestSession_OpenMatchEditorFailure(t *testing.T) {
	ctx := context.Background()

	lister := adaptermocks.NewMockDirectoryLister(t)
	editor := adaptermocks.NewMockEditorOpener(t)

	lister.EXPECT().List(mock.Anything, m.Path("/proj")).Return([]m.Entry{{Path: "/proj/a.txt", Name: "a.txt"}}, nil).Once()
	editor.EXPECT().Open(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no editor")).Once()

	session := domain.NewSession(lister, adaptermocks.NewMockSearchExecutor(t), editor, nil)
	require.NoError(t, session.Tree.LoadRoot(ctx, "/proj"))

	revealed, err := session.OpenMatch(ctx, m.Match{FilePath: "/proj/a.txt", LineNumber: 2})

	require.Error(t, err)
	assert.True(t, revealed.Found, "reveal happens before the editor is started")
}

func TestSession_ChooseRoot(t *testing.T) {
	ctx := context.Background()

	first := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(first, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(first, "a.txt"), []byte("x"), 0o600))

	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "b.txt"), []byte("y"), 0o600))

	session := domain.NewSession(adapter.NewLocalDirectoryLister(), adaptermocks.NewMockSearchExecutor(t), nil, nil)

	require.NoError(t, session.ChooseRoot(ctx, first))
	assert.Equal(t, m.Path(first), session.Root())

	roots := session.Tree.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "src", roots[0].Name)

	session.Scope.Check(m.Path(first).Join("src"))

	require.NoError(t, session.ChooseRoot(ctx, second))
	assert.Equal(t, m.Path(second), session.Root())
	assert.Empty(t, session.Scope.Checked(), "scope does not survive a root change")

	_, ok := session.Tree.Get(m.Path(first).Join("a.txt"))
	assert.False(t, ok)

	_, ok = session.Tree.Get(m.Path(second).Join("b.txt"))
	assert.True(t, ok)
}

func TestSession_ChooseRootErrors(t *testing.T) {
	session := domain.NewSession(adapter.NewLocalDirectoryLister(), adaptermocks.NewMockSearchExecutor(t), nil, nil)

	require.ErrorIs(t, session.ChooseRoot(context.Background(), ""), domain.ErrNoRoot)

	missing := filepath.Join(t.TempDir(), "missing")
	require.Error(t, session.ChooseRoot(context.Background(), missing))

	filePath := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(filePath, nil, 0o600))

	err := session.ChooseRoot(context.Background(), filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
