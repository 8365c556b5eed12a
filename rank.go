package lexorank

import (
	"fmt"
	"math"
	"strings"
)

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	minDigit byte = '0'
	maxDigit byte = 'z'
)

// Rank is the ordering part of a LexoRank: a non-empty string over 0-9a-z
// that never ends with '0'. Ranks are ordered by plain byte comparison, so
// "2" sorts after "11" and "a" sorts after "9".
//
// The zero value is not a valid rank; use NewRank.
type Rank struct {
	value string
}

// NewRank validates value and returns it as a Rank.
func NewRank(value string) (Rank, error) {
	if err := validateRank(value); err != nil {
		return Rank{}, err
	}
	return Rank{value: value}, nil
}

func validateRank(value string) error {
	if value == "" || value[len(value)-1] == minDigit {
		return fmt.Errorf("%w. Found: %s", ErrInvalidRank, value)
	}
	for i := 0; i < len(value); i++ {
		if digitIndex(value[i]) == -1 {
			return fmt.Errorf("%w. Found: %s", ErrInvalidRank, value)
		}
	}
	return nil
}

// digitIndex maps a symbol to its ordinal in base36Digits, or -1.
func digitIndex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

// incrementDigit returns the symbol after c. It reports false for the
// largest symbol, which has no successor.
func incrementDigit(c byte) (byte, bool) {
	d := digitIndex(c)
	if d == -1 || c == maxDigit {
		return 0, false
	}
	return base36Digits[d+1], true
}

// decrementDigit returns the symbol before c. It reports false for the
// smallest symbol, which has no predecessor.
func decrementDigit(c byte) (byte, bool) {
	d := digitIndex(c)
	if d == -1 || c == minDigit {
		return 0, false
	}
	return base36Digits[d-1], true
}

// Value returns the rank string.
func (r Rank) Value() string {
	return r.value
}

func (r Rank) String() string {
	return r.value
}

// IsZero reports whether r is the zero Rank, which no constructor returns.
func (r Rank) IsZero() bool {
	return r.value == ""
}

// Compare returns -1, 0 or +1 depending on whether r sorts before, equal to
// or after other.
func (r Rank) Compare(other Rank) int {
	return strings.Compare(r.value, other.value)
}

// Next returns the smallest-change successor of r: the rightmost digit that
// is not 'z' is incremented and everything after it is dropped. A rank made
// only of 'z' digits gets a '1' appended.
func (r Rank) Next() Rank {
	for i := len(r.value) - 1; i >= 0; i-- {
		next, ok := incrementDigit(r.value[i])
		if !ok {
			continue
		}
		return Rank{value: r.value[:i] + string(next)}
	}
	return r.append("1")
}

// Prev returns the predecessor of r. A last digit other than '1' is simply
// decremented. A trailing '1' is dropped together with the zeros before it;
// if nothing but zeros precede it, a '0' is prepended instead.
//
// r must be a valid rank; Prev panics on the zero Rank.
func (r Rank) Prev() Rank {
	if r.IsZero() {
		panic("lexorank: Prev called on the zero Rank")
	}
	last := len(r.value) - 1
	if r.value[last] != '1' {
		prev, _ := decrementDigit(r.value[last])
		return Rank{value: r.value[:last] + string(prev)}
	}

	for i := last - 1; i >= 0; i-- {
		if r.value[i] != minDigit {
			return Rank{value: r.value[:i+1]}
		}
	}
	return Rank{value: string(minDigit) + r.value}
}

// Between returns a rank that sorts strictly between r and other, in either
// argument order. It reports false when r and other are equal.
func (r Rank) Between(other Rank) (Rank, bool) {
	if r == other {
		return Rank{}, false
	}

	lesser, greater := r, other
	if lesser.value > greater.value {
		lesser, greater = greater, lesser
	}

	if next := lesser.Next(); next.value < greater.value {
		return next, true
	}

	// lesser is a prefix of greater, or greater follows it too closely:
	// extend lesser with "1", "01", "001", ... until it fits under greater.
	pad := ""
	for {
		candidate := lesser.append(pad + "1")
		if candidate.value < greater.value {
			return candidate, true
		}
		pad += string(minDigit)
	}
}

func (r Rank) append(suffix string) Rank {
	return Rank{value: r.value + suffix}
}

// NRanksBetween returns n ranks that sort strictly between a and b, in
// ascending order. The argument order of a and b does not matter. It reports
// false if a and b are equal and n > 0, since there is nothing between them.
func NRanksBetween(a, b Rank, n uint) ([]Rank, bool) {
	if n == 0 {
		return []Rank{}, true
	}
	if a.value > b.value {
		a, b = b, a
	}
	c, ok := a.Between(b)
	if !ok {
		return nil, false
	}
	if n == 1 {
		return []Rank{c}, true
	}

	mid := n / 2
	result := make([]Rank, 0, n)
	{
		r, _ := NRanksBetween(a, c, mid)
		result = append(result, r...)
	}
	result = append(result, c)
	{
		r, _ := NRanksBetween(c, b, n-mid-1)
		result = append(result, r...)
	}
	return result, true
}

// Float64Approx reads r as the base-36 fraction 0.d1d2d3... and returns it as
// a float64 between 0 and 1. Because ranks never end with '0', this mapping
// preserves rank order, but float64 cannot tell apart ranks that differ only
// past roughly the tenth digit. It is meant for diagnostics such as plotting
// how ranks are distributed, not for ordering.
func (r Rank) Float64Approx() float64 {
	rv := float64(0)
	for i := 0; i < len(r.value); i++ {
		p := digitIndex(r.value[i])
		rv += float64(p) / math.Pow(float64(len(base36Digits)), float64(i+1))
	}
	return rv
}
