package tensor

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{1, 2, 3}, []int{6, 3, 1}},
		{Shape{9, 8, 7}, []int{56, 7, 1}},
		{Shape{5}, []int{1}},
		{Shape{}, []int{}},
		{Shape{2, 0, 3}, []int{0, 3, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.Strides(), "strides of %v", tt.shape)
	}
}

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 0, Shape{2, 0}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	require.NoError(t, Shape{0, 3}.Validate())
	require.ErrorIs(t, Shape{2, -1}.Validate(), ErrShape)
	require.ErrorIs(t, Shape{maxInt, 2}.Validate(), ErrShape)
	require.NoError(t, Shape{maxInt, 1}.Validate())
}

func TestOffset(t *testing.T) {
	offset, err := Offset([]int{1, 5, 1}, []int{3, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 16, offset)

	_, err = Offset([]int{1, 2}, []int{3, 2, 1})
	require.ErrorIs(t, err, ErrIndex)
}

func TestIndices(t *testing.T) {
	var got [][]int
	for index := range Indices([]int{3, 2, 3}) {
		got = append(got, slices.Clone(index))
	}

	require.Len(t, got, 18)
	assert.Equal(t, []int{0, 0, 0}, got[0])
	assert.Equal(t, []int{0, 0, 2}, got[2])
	assert.Equal(t, []int{0, 1, 0}, got[3])
	assert.Equal(t, []int{1, 0, 0}, got[6])
	assert.Equal(t, []int{2, 1, 2}, got[17])
}

func TestIndices_Restartable(t *testing.T) {
	seq := Indices([]int{2, 2})

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count(), "second range must start over")
}

func TestIndices_EdgeShapes(t *testing.T) {
	n := 0
	for index := range Indices([]int{}) {
		assert.Empty(t, index)
		n++
	}
	assert.Equal(t, 1, n, "scalar shape has exactly one index")

	for range Indices([]int{3, 0}) {
		t.Fatal("zero-sized shape must not yield indices")
	}
}

func TestIndices_EarlyBreak(t *testing.T) {
	n := 0
	for range Indices([]int{10, 10}) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestReorder(t *testing.T) {
	got, err := Reorder([]int{2, 4, 6}, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2, 4}, got)

	shape, err := Reorder(Shape{2, 4, 2}, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2, 4}, shape)

	_, err = Reorder([]int{1, 2}, []int{0})
	require.ErrorIs(t, err, ErrIndex)

	_, err = Reorder([]int{1, 2}, []int{0, 2})
	require.ErrorIs(t, err, ErrIndex)
}
