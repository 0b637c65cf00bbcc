package domain

import (
	"testing"

	m "github.com/mouse-blink/grepnav/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UpsertKeepsIdentity(t *testing.T) {
	r := NewRegistry()

	first := r.Upsert(m.Entry{Path: "/proj/src", Name: "src", IsDir: true}, m.NoNode, 0)
	first.Expanded = true
	first.ChildrenState = m.ChildrenLoaded

	second := r.Upsert(m.Entry{Path: "/proj/src/", Name: "source", IsDir: true}, m.NoNode, 0)

	assert.Same(t, first, second)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "source", second.Name, "display fields refresh")
	assert.True(t, second.Expanded, "state survives a second upsert")
	assert.Equal(t, m.ChildrenLoaded, second.ChildrenState)
}

func TestRegistry_GetAndNode(t *testing.T) {
	r := NewRegistry()
	node := r.Upsert(m.Entry{Path: "/proj/a.txt", Name: "a.txt"}, 3, 1)

	got, ok := r.Get("/proj/a.txt")
	require.True(t, ok)
	assert.Same(t, node, got)
	assert.Equal(t, m.NodeID(3), got.Parent)
	assert.Equal(t, 1, got.Depth)
	assert.Equal(t, m.ChildrenUnloaded, got.ChildrenState)

	byID, ok := r.Node(node.ID)
	require.True(t, ok)
	assert.Same(t, node, byID)

	_, ok = r.Get("/proj/b.txt")
	assert.False(t, ok)

	_, ok = r.Node(m.NoNode)
	assert.False(t, ok)

	_, ok = r.Node(42)
	assert.False(t, ok)
}

func TestRegistry_UpsertDefaultsName(t *testing.T) {
	r := NewRegistry()

	node := r.Upsert(m.Entry{Path: "/proj/dir/file.go"}, m.NoNode, 0)

	assert.Equal(t, "file.go", node.Name)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Upsert(m.Entry{Path: "/proj/a"}, m.NoNode, 0)
	r.Upsert(m.Entry{Path: "/proj/b"}, m.NoNode, 0)

	r.Clear()

	assert.Equal(t, 0, r.Len())

	_, ok := r.Get("/proj/a")
	assert.False(t, ok)

	fresh := r.Upsert(m.Entry{Path: "/proj/a"}, m.NoNode, 0)
	assert.Equal(t, m.NodeID(0), fresh.ID)
}
