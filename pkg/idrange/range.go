package idrange

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a closed interval of ids [lower, upper]. A Range with
// upper < lower is invalid; nothing stops one from being built.
type Range struct {
	lower int64
	upper int64
}

func RangeFrom(lower, upper int64) Range {
	return Range{
		lower: lower,
		upper: upper,
	}
}

// Lower returns the lower bound of r.
func (r Range) Lower() int64 { return r.lower }

// Upper returns the upper bound of r.
func (r Range) Upper() int64 { return r.upper }

func (r Range) SetLower(id int64) Range {
	r.lower = id
	return r
}

func (r Range) SetUpper(id int64) Range {
	r.upper = id
	return r
}

// ParseError is returned when a "lower-upper" token cannot be parsed.
type ParseError struct {
	Text   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid range %q: %s: %v", e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid range %q: %s", e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseRange parses "<lower>-<upper>". Surrounding whitespace is ignored,
// both around the token and around each bound.
func ParseRange(s string) (Range, error) {
	var r Range
	text := strings.TrimSpace(s)
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return r, &ParseError{Text: s, Reason: fmt.Sprintf("expected 2 ids separated by '-', got %d tokens", len(parts))}
	}
	lower, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return r, &ParseError{Text: s, Reason: fmt.Sprintf("invalid lower id %q", parts[0]), Err: err}
	}
	upper, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return r, &ParseError{Text: s, Reason: fmt.Sprintf("invalid upper id %q", parts[1]), Err: err}
	}
	return RangeFrom(lower, upper), nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.lower, r.upper)
}

func (r Range) IsValid() bool {
	return r.lower <= r.upper
}

// Compare orders ranges by lower bound, then by upper bound.
func (r Range) Compare(other Range) int {
	if c := cmp.Compare(r.lower, other.lower); c != 0 {
		return c
	}
	return cmp.Compare(r.upper, other.upper)
}

func (r Range) Less(other Range) bool { return r.Compare(other) < 0 }

// Contains returns whether other lies entirely within r, edges included.
func (r Range) Contains(other Range) bool {
	return r.lower <= other.lower && other.upper <= r.upper
}

// Overlaps returns whether r and other share at least one id.
func (r Range) Overlaps(other Range) bool {
	first, second := r, other
	if second.Less(first) {
		first, second = second, first
	}
	return first.upper >= second.lower
}

// NumIDs returns the number of ids in r, or 0 when r is invalid. The
// range [MinInt64, MaxInt64] holds 2^64 ids and saturates to MaxUint64.
func (r Range) NumIDs() uint64 {
	if !r.IsValid() {
		return 0
	}
	n := uint64(r.upper) - uint64(r.lower)
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}

// Has returns whether id lies within r.
func (r Range) Has(id int64) bool {
	return r.lower <= id && id <= r.upper
}

// adjacent returns whether other starts right after r ends.
func (r Range) adjacent(other Range) bool {
	return r.upper != math.MaxInt64 && r.upper+1 == other.lower
}
