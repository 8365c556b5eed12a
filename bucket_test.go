package lexorank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBucket(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []int{0, 1, 2} {
		b, err := NewBucket(v)
		assert.NoError(err)
		assert.Equal(v, b.Value())
	}

	for _, v := range []int{-1, 3, 4, 10, 100} {
		_, err := NewBucket(v)
		assert.ErrorIs(err, ErrInvalidBucket)
	}

	_, err := NewBucket(4)
	assert.EqualError(err, "LexoRank bucket value must be between 0 and 2 inclusive. Found: 4")
}

func TestBucketRotation(t *testing.T) {
	assert := assert.New(t)

	test := func(before, next, prev int) {
		b, err := NewBucket(before)
		require.NoError(t, err)
		assert.Equal(next, b.Next().Value())
		assert.Equal(prev, b.Prev().Value())
	}

	test(0, 1, 2)
	test(1, 2, 0)
	test(2, 0, 1)
}

func TestBucketCyclicGroup(t *testing.T) {
	assert := assert.New(t)

	for v := 0; v <= 2; v++ {
		b, err := NewBucket(v)
		require.NoError(t, err)
		assert.Equal(b, b.Next().Next().Next())
		assert.Equal(b, b.Prev().Prev().Prev())
		assert.Equal(b, b.Next().Prev())
		assert.Equal(b, b.Prev().Next())
	}
}

func TestBucketCompare(t *testing.T) {
	assert := assert.New(t)

	zero, _ := NewBucket(0)
	one, _ := NewBucket(1)

	assert.Equal(zero, Bucket{})
	assert.NotEqual(zero, one)
	assert.Equal(-1, zero.Compare(one))
	assert.Equal(1, one.Compare(zero))
	assert.Equal(0, one.Compare(one))
	assert.Equal("1", one.String())
}
