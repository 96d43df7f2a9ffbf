package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/henderiw/idrange/pkg/idrange"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Inventory holds the ranges and the bare ids read from an inventory
// listing, in input order.
type Inventory struct {
	Ranges []idrange.Range
	IDs    []int64
}

// Read parses one entry per line: "lower-upper" is a range, a bare
// integer is an id, blank lines are skipped. Lines that do not parse are
// skipped and reported together in the returned error, alongside the
// entries that did parse.
func Read(r io.Reader) (*Inventory, error) {
	inv := &Inventory{}
	var errs error
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if id, err := strconv.ParseInt(line, 10, 64); err == nil {
			inv.IDs = append(inv.IDs, id)
			continue
		}
		rng, err := idrange.ParseRange(line)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}
		inv.Ranges = append(inv.Ranges, rng)
	}
	if err := scanner.Err(); err != nil {
		return inv, errors.Join(errs, err)
	}
	return inv, errs
}

func ReadFile(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// RangeSet returns the union of all ranges of the inventory.
func (r *Inventory) RangeSet() *idrange.RangeSet {
	return idrange.NewFrom(r.Ranges...)
}

// Fresh returns the distinct ids of the inventory that rs covers.
func (r *Inventory) Fresh(rs *idrange.RangeSet) sets.Set[int64] {
	fresh := sets.New[int64]()
	for _, id := range r.IDs {
		if rs.Has(id) {
			fresh.Insert(id)
		}
	}
	return fresh
}
