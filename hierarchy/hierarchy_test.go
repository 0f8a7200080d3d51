package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	s, err := NewStatic(map[string]string{
		"a.C": "a.B",
		"a.B": "a.A",
		"a.D": "a.B",
	})
	require.NoError(t, err)

	super, ok := s.Superclass("a.C")
	require.True(t, ok)
	assert.Equal(t, "a.B", super)

	_, ok = s.Superclass("a.A")
	assert.False(t, ok)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a.B", "a.A"}, s.Ancestors("a.C"))
	assert.Empty(t, s.Ancestors("java.lang.Object"))
}

func TestStaticRejectsCycles(t *testing.T) {
	tests := []struct {
		name    string
		parents map[string]string
	}{
		{"self", map[string]string{"a.A": "a.A"}},
		{"pair", map[string]string{"a.A": "a.B", "a.B": "a.A"}},
		{"loop", map[string]string{"a.A": "a.B", "a.B": "a.C", "a.C": "a.A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStatic(tt.parents)
			require.ErrorIs(t, err, ErrCycle)
		})
	}
}

func TestStaticRejectsEmptyNames(t *testing.T) {
	_, err := NewStatic(map[string]string{"a.A": ""})
	require.Error(t, err)
}

func TestChain(t *testing.T) {
	first := Func(func(name string) (string, bool) {
		if name == "x.Child" {
			return "x.Parent", true
		}

		return "", false
	})

	second, err := NewStatic(map[string]string{"x.Parent": "x.Root", "x.Child": "x.Other"})
	require.NoError(t, err)

	c := Chain{nil, first, second}

	super, ok := c.Superclass("x.Child")
	require.True(t, ok)
	assert.Equal(t, "x.Parent", super, "first provider wins")

	super, ok = c.Superclass("x.Parent")
	require.True(t, ok)
	assert.Equal(t, "x.Root", super)

	_, ok = c.Superclass("x.Root")
	assert.False(t, ok)
}
