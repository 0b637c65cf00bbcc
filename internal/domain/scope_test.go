package domain

import (
	"testing"

	m "github.com/mouse-blink/grepnav/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScopeSelector_EffectiveScope(t *testing.T) {
	const root = m.Path("/a")

	tests := []struct {
		name    string
		checked []m.Path
		want    []m.Path
	}{
		{name: "nothing checked", checked: nil, want: []m.Path{root}},
		{name: "single subpath", checked: []m.Path{"/a/b"}, want: []m.Path{"/a/b"}},
		{name: "root with subpath folds to root", checked: []m.Path{root, "/a/b"}, want: []m.Path{root}},
		{name: "subpath then root folds to root", checked: []m.Path{"/a/b", "/a/"}, want: []m.Path{root}},
		{name: "check order is kept", checked: []m.Path{"/a/z", "/a/b", "/a/m.txt"}, want: []m.Path{"/a/z", "/a/b", "/a/m.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScopeSelector()
			for _, p := range tt.checked {
				s.Check(p)
			}

			assert.Equal(t, tt.want, s.EffectiveScope(root))
		})
	}
}

func TestScopeSelector_CheckUncheckToggle(t *testing.T) {
	s := NewScopeSelector()

	s.Check("/a/b")
	s.Check("/a/c")
	s.Check("/a/b")
	assert.Equal(t, []m.Path{"/a/b", "/a/c"}, s.Checked())
	assert.True(t, s.IsChecked("/a/b"))

	s.Uncheck("/a/b")
	assert.False(t, s.IsChecked("/a/b"))
	assert.Equal(t, []m.Path{"/a/c"}, s.Checked())

	s.Uncheck("/a/missing")
	assert.Equal(t, []m.Path{"/a/c"}, s.Checked())

	assert.True(t, s.Toggle("/a/d"))
	assert.False(t, s.Toggle("/a/c"))
	assert.Equal(t, []m.Path{"/a/d"}, s.Checked())

	s.Check("")
	assert.Equal(t, []m.Path{"/a/d"}, s.Checked())
}

func TestScopeSelector_ClearAll(t *testing.T) {
	s := NewScopeSelector()
	s.Check("/a/b")
	s.Check("/a/c")

	s.ClearAll()

	assert.Empty(t, s.Checked())
	assert.False(t, s.IsChecked("/a/b"))
	assert.Equal(t, []m.Path{"/a"}, s.EffectiveScope("/a"))
}
