package lexorank

import (
	"cmp"
	"fmt"
	"strconv"
)

const (
	minBucket = 0
	maxBucket = 2
)

// Bucket is the namespace a rank lives in. There are exactly three buckets,
// 0, 1 and 2, and a rebalance moves ranks from one bucket to the next so the
// old and new generations of ranks never collide.
//
// The zero value is bucket 0.
type Bucket struct {
	value uint8
}

// NewBucket returns the bucket with the given number. Values outside [0, 2]
// are rejected, never clamped.
//
// Parameters:
//   - value: The bucket number, 0, 1 or 2
//
// Returns the Bucket, or an error wrapping ErrInvalidBucket that names the
// rejected value.
func NewBucket(value int) (Bucket, error) {
	if value < minBucket || value > maxBucket {
		return Bucket{}, fmt.Errorf("%w. Found: %d", ErrInvalidBucket, value)
	}
	return Bucket{value: uint8(value)}, nil
}

// Value returns the bucket number.
func (b Bucket) Value() int {
	return int(b.value)
}

// Next returns the following bucket, wrapping from 2 to 0.
func (b Bucket) Next() Bucket {
	if b.value == maxBucket {
		return Bucket{value: minBucket}
	}
	return Bucket{value: b.value + 1}
}

// Prev returns the preceding bucket, wrapping from 0 to 2.
func (b Bucket) Prev() Bucket {
	if b.value == minBucket {
		return Bucket{value: maxBucket}
	}
	return Bucket{value: b.value - 1}
}

// Compare returns -1, 0 or +1 depending on whether b is numerically less
// than, equal to or greater than other.
func (b Bucket) Compare(other Bucket) int {
	return cmp.Compare(b.value, other.value)
}

func (b Bucket) String() string {
	return strconv.Itoa(int(b.value))
}
