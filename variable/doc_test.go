package variable_test

import (
	"testing"

	"github.com/katalvlaran/arcsolve/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyName(t *testing.T) {
	_, err := variable.New("")
	require.ErrorIs(t, err, variable.ErrEmptyName)
}

func TestNew_DedupesInitialDomain(t *testing.T) {
	v, err := variable.New("X", 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, []int{1, 2}, v.Domain())
}

func TestAddRemove_Idempotent(t *testing.T) {
	v, _ := variable.New("X", 1)
	v.Add(2)
	v.Add(2)
	assert.Equal(t, []int{1, 2}, v.Domain())

	v.Remove(5) // no-op, not present
	assert.Equal(t, []int{1, 2}, v.Domain())

	v.Remove(1)
	v.Remove(1) // idempotent
	assert.Equal(t, []int{2}, v.Domain())
}

func TestAddManyRemoveMany(t *testing.T) {
	v, _ := variable.New("X")
	v.AddMany([]int{3, 1, 2, 1})
	assert.Equal(t, []int{1, 2, 3}, v.Domain())

	v.RemoveMany([]int{1, 3})
	assert.Equal(t, []int{2}, v.Domain())
}

func TestEqual(t *testing.T) {
	a, _ := variable.New("X", 1, 2)
	b, _ := variable.New("X", 2, 1)
	c, _ := variable.New("Y", 1, 2)
	d, _ := variable.New("X", 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestClone_Independent(t *testing.T) {
	v, _ := variable.New("X", 1, 2)
	clone := v.Clone()
	clone.Remove(1)

	assert.Equal(t, []int{1, 2}, v.Domain())
	assert.Equal(t, []int{2}, clone.Domain())
}

func TestContains(t *testing.T) {
	v, _ := variable.New("X", 1, 2)
	assert.True(t, v.Contains(1))
	assert.False(t, v.Contains(3))
}

func TestString_SortedDomain(t *testing.T) {
	v, _ := variable.New("X", 10, 0)
	assert.Equal(t, "NAME: X\n - Domain: {0, 10}", v.String())
}
