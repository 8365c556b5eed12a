package lexorank

import (
	"fmt"
	"strconv"
	"strings"
)

const separator = "|"

// LexoRank is a rank inside a bucket. Its string form "bucket|rank" sorts
// byte-wise in the same order as Compare, which makes it suitable for an
// indexed string column.
//
// Example: "1|a1" represents bucket 1 with rank "a1".
type LexoRank struct {
	bucket Bucket // The bucket/namespace this rank belongs to
	rank   Rank   // The position within the bucket
}

// New creates a LexoRank from an already validated bucket and rank.
// This is the primary constructor when the parts come from NewBucket and
// NewRank, or from deriving a new rank out of an existing one.
//
// Parameters:
//   - bucket: The bucket/namespace the rank belongs to
//   - rank: The position within the bucket
//
// Returns a new LexoRank instance. It cannot fail, since both parts were
// validated when they were built.
func New(bucket Bucket, rank Rank) LexoRank {
	return LexoRank{bucket: bucket, rank: rank}
}

// Parse reads a LexoRank in the "bucket|rank" format produced by String.
// It is the exact inverse of String: Parse(s).String() == s for every
// string it accepts.
//
// Parameters:
//   - value: A serialized LexoRank, one bucket digit, '|', and a rank
//
// Returns the parsed LexoRank, or an error wrapping ErrInvalidBucket when the
// bucket number is out of range, ErrInvalidRank when the rank segment is not
// a valid Rank, and ErrInvalidFormat for any other malformed input such as a
// missing separator or a bucket segment that is not a single digit.
//
// Example: Parse("1|a1") returns bucket 1 with rank "a1".
func Parse(value string) (LexoRank, error) {
	parts := strings.Split(value, separator)
	if len(parts) != 2 {
		return LexoRank{}, fmt.Errorf("%w. Found: %s", ErrInvalidFormat, value)
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return LexoRank{}, fmt.Errorf("%w. Found: %s", ErrInvalidFormat, value)
	}
	bucket, err := NewBucket(n)
	if err != nil {
		return LexoRank{}, err
	}
	// Reject "00|a" or "+1|a": they would not survive a round trip.
	if parts[0] != bucket.String() {
		return LexoRank{}, fmt.Errorf("%w. Found: %s", ErrInvalidFormat, value)
	}

	rank, err := NewRank(parts[1])
	if err != nil {
		return LexoRank{}, err
	}
	return New(bucket, rank), nil
}

// MustParse is like Parse but panics if value cannot be parsed.
func MustParse(value string) LexoRank {
	rk, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return rk
}

// String returns the "bucket|rank" form of rk, the inverse of Parse.
func (rk LexoRank) String() string {
	return fmt.Sprintf("%d%s%s", rk.bucket.Value(), separator, rk.rank.Value())
}

// Bucket returns the bucket rk belongs to.
func (rk LexoRank) Bucket() Bucket {
	return rk.bucket
}

// Rank returns the position of rk within its bucket.
func (rk LexoRank) Rank() Rank {
	return rk.rank
}

// IsZero reports whether rk is the zero LexoRank, which holds no valid rank.
func (rk LexoRank) IsZero() bool {
	return rk.rank.IsZero()
}

// Next returns the successor of rk in the same bucket.
func (rk LexoRank) Next() LexoRank {
	return New(rk.bucket, rk.rank.Next())
}

// Prev returns the predecessor of rk in the same bucket.
func (rk LexoRank) Prev() LexoRank {
	return New(rk.bucket, rk.rank.Prev())
}

// Between returns a LexoRank whose rank sorts strictly between the ranks of
// rk and other. The result keeps rk's bucket; other's bucket is ignored, so
// callers should only combine ranks of the same bucket. It reports false
// when both ranks are equal.
func (rk LexoRank) Between(other LexoRank) (LexoRank, bool) {
	rank, ok := rk.rank.Between(other.rank)
	if !ok {
		return LexoRank{}, false
	}
	return New(rk.bucket, rank), true
}

// Compare orders by bucket first and rank second, matching the byte order
// of the serialized strings.
func (rk LexoRank) Compare(other LexoRank) int {
	if c := rk.bucket.Compare(other.bucket); c != 0 {
		return c
	}
	return rk.rank.Compare(other.rank)
}

// InNextBucket returns rk's rank moved into the following bucket.
func (rk LexoRank) InNextBucket() LexoRank {
	return New(rk.bucket.Next(), rk.rank)
}

// InPrevBucket returns rk's rank moved into the preceding bucket.
func (rk LexoRank) InPrevBucket() LexoRank {
	return New(rk.bucket.Prev(), rk.rank)
}
