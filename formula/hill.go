// SPDX-License-Identifier: MIT

package formula

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// hillComparator returns a comparator putting C then H first when the
// formula has carbon, and plain alphabetical order otherwise.
func hillComparator(hasCarbon bool) func(a, b interface{}) int {
	rank := func(s string) int {
		if !hasCarbon {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	return func(a, b interface{}) int {
		sa, sb := a.(string), b.(string)
		if ra, rb := rank(sa), rank(sb); ra != rb {
			return ra - rb
		}
		return strings.Compare(sa, sb)
	}
}

// String renders f in Hill order, e.g. "C2H6", "ClH", "H2O". Counts of one are
// omitted. The empty formula renders as "".
func (f Formula) String() string {
	_, hasCarbon := f.normalized()["C"]
	tree := redblacktree.Tree{Comparator: hillComparator(hasCarbon)}
	for s, n := range f.normalized() {
		tree.Put(s, n)
	}

	var sb strings.Builder
	it := tree.Iterator()
	for it.Next() {
		sb.WriteString(it.Key().(string))
		if n := it.Value().(int); n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// Strings renders each formula with String.
func Strings(fmls []Formula) []string {
	out := make([]string, len(fmls))
	for i, f := range fmls {
		out[i] = f.String()
	}
	return out
}
