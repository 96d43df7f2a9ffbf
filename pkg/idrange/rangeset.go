package idrange

import (
	"math"
	"math/bits"
	"slices"
	"sort"
	"strings"
)

// RangeSet is the union of the ranges added to it. The zero value is an
// empty set ready to use. A RangeSet is not safe for concurrent use.
type RangeSet struct {
	// rr is kept sorted with no overlapping and no touching ranges
	// between calls. Add and NumIDs rely on this.
	rr []Range
}

func New() *RangeSet {
	return &RangeSet{}
}

func NewFrom(rr ...Range) *RangeSet {
	s := New()
	for _, r := range rr {
		s.Add(r)
	}
	return s
}

// Add adds every id of r to s. Invalid ranges are ignored.
func (s *RangeSet) Add(r Range) {
	pending := []Range{r}
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if !next.IsValid() {
			continue
		}
		rest, fragments, ok := s.clip(next)
		pending = append(pending, fragments...)
		if ok {
			s.rr = append(s.rr, rest)
		}
	}
	s.simplify()
}

// AddString parses text as "lower-upper" and adds it. s is left untouched
// when text does not parse.
func (s *RangeSet) AddString(text string) error {
	r, err := ParseRange(text)
	if err != nil {
		return err
	}
	s.Add(r)
	return nil
}

// clip narrows r against every stored range. It returns the part of r that
// is not yet stored, the fragments of r split off to the right of stored
// ranges r strictly contains, and false when nothing of r is left to store.
func (s *RangeSet) clip(r Range) (Range, []Range, bool) {
	var fragments []Range
	for _, e := range s.rr {
		if !r.Overlaps(e) {
			continue
		}
		switch {
		case e.Contains(r):
			// e already covers r.
			//
			//        e
			// l-------------u
			//    l------u
			//       r
			return r, fragments, false
		case !r.Contains(e):
			// e overlaps one side of r, clip that side.
			//
			//     e                      e
			// l------u        or      l------u
			//    l------u         l------u
			//       r                r
			if e.Less(r) {
				r = r.SetLower(e.upper + 1)
			} else {
				r = r.SetUpper(e.lower - 1)
			}
			if !r.IsValid() {
				return r, fragments, false
			}
		default:
			// r strictly contains e, split r around e. The right part is
			// requeued, the left part keeps being clipped.
			//
			//        r
			// l-------------u
			//    l------u
			//       e
			if e.upper < r.upper {
				fragments = append(fragments, RangeFrom(e.upper+1, r.upper))
			}
			if e.lower == r.lower {
				return r, fragments, false
			}
			r = r.SetUpper(e.lower - 1)
		}
	}
	return r, fragments, true
}

// simplify sorts the stored ranges and merges the ones that touch.
func (s *RangeSet) simplify() {
	if len(s.rr) == 0 {
		return
	}
	slices.SortFunc(s.rr, Range.Compare)
	out := make([]Range, 1, len(s.rr))
	out[0] = s.rr[0]
	for _, r := range s.rr[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.adjacent(r):
			// prev and r touch, merge them.
			//
			//   prev     r
			// l------ul-----u
			prev.upper = r.upper
		case prev.upper < r.lower:
			// No overlap and not adjacent, nothing to merge.
			//
			//   prev       r
			// l------u  l-----u
			out = append(out, r)
		case prev.upper < r.upper:
			// Partial overlap, extend prev.
			//
			//   prev
			// l------u
			//     l-----u
			//        r
			prev.upper = r.upper
		default:
			// r entirely contained in prev, nothing to do.
		}
	}
	s.rr = out
}

// NumIDs returns the number of distinct ids in s. A set covering the
// whole int64 domain saturates to MaxUint64.
func (s *RangeSet) NumIDs() uint64 {
	s.simplify()
	var total uint64
	for _, r := range s.rr {
		sum, carry := bits.Add64(total, r.NumIDs(), 0)
		if carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

// Has returns whether id is in s.
func (s *RangeSet) Has(id int64) bool {
	i := sort.Search(len(s.rr), func(i int) bool { return s.rr[i].upper >= id })
	return i < len(s.rr) && s.rr[i].lower <= id
}

// Ranges returns the minimum and sorted set of ranges that covers s.
func (s *RangeSet) Ranges() []Range {
	return append([]Range{}, s.rr...)
}

func (s *RangeSet) Len() int {
	return len(s.rr)
}

func (s *RangeSet) Reset() {
	s.rr = nil
}

func (s *RangeSet) String() string {
	parts := make([]string, 0, len(s.rr))
	for _, r := range s.rr {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
