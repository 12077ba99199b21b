// SPDX-License-Identifier: MIT

package iso

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/rxnclass/molgraph"
)

type edge struct {
	to   int
	bond molgraph.Bond
}

// indexed is a graph re-addressed by dense indices 0..n-1 in key order.
type indexed struct {
	g    *molgraph.Graph
	keys []molgraph.Key
	adj  [][]edge
}

func index(g *molgraph.Graph) *indexed {
	keys := g.AtomKeys()
	pos := make(map[molgraph.Key]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}
	adj := make([][]edge, len(keys))
	for i, k := range keys {
		for _, n := range g.Neighbors(k) {
			b, _ := g.Bond(k, n)
			adj[i] = append(adj[i], edge{to: pos[n], bond: b})
		}
	}
	return &indexed{g: g, keys: keys, adj: adj}
}

func (ix *indexed) bond(x, y int) (molgraph.Bond, bool) {
	return ix.g.Bond(ix.keys[x], ix.keys[y])
}

// refine runs colour refinement on both graphs with one palette and returns
// the stable colours. ok is false when the colour histograms diverge.
func refine(a, b *indexed) (ca, cb []int, ok bool) {
	ca, cb = make([]int, len(a.keys)), make([]int, len(b.keys))
	palette := make(map[string]int)
	for x, k := range a.keys {
		ca[x] = paint(palette, initialSignature(a, x, k))
	}
	for y, k := range b.keys {
		cb[y] = paint(palette, initialSignature(b, y, k))
	}
	if !sameHistogram(ca, cb) {
		return nil, nil, false
	}

	classes := len(palette)
	for round := 0; round < len(a.keys); round++ {
		palette = make(map[string]int)
		na, nb := make([]int, len(ca)), make([]int, len(cb))
		for x := range ca {
			na[x] = paint(palette, roundSignature(a, ca, x))
		}
		for y := range cb {
			nb[y] = paint(palette, roundSignature(b, cb, y))
		}
		if !sameHistogram(na, nb) {
			return nil, nil, false
		}
		ca, cb = na, nb
		if len(palette) == classes {
			break
		}
		classes = len(palette)
	}
	return ca, cb, true
}

func paint(palette map[string]int, sig string) int {
	c, ok := palette[sig]
	if !ok {
		c = len(palette)
		palette[sig] = c
	}
	return c
}

func initialSignature(ix *indexed, x int, k molgraph.Key) string {
	atom, _ := ix.g.Atom(k)
	return atom.Symbol + "|" + strconv.Itoa(atom.ImplicitH) + "|" +
		strconv.Itoa(int(atom.Parity)) + "|" + strconv.Itoa(len(ix.adj[x]))
}

func roundSignature(ix *indexed, colours []int, x int) string {
	parts := make([]string, len(ix.adj[x]))
	for i, e := range ix.adj[x] {
		parts[i] = strconv.Itoa(colours[e.to]) + ":" + strconv.Itoa(e.bond.Order) +
			":" + strconv.Itoa(int(e.bond.Parity))
	}
	sort.Strings(parts)
	return strconv.Itoa(colours[x]) + "(" + strings.Join(parts, ",") + ")"
}

func sameHistogram(ca, cb []int) bool {
	if len(ca) != len(cb) {
		return false
	}
	h := make(map[int]int)
	for _, c := range ca {
		h[c]++
	}
	for _, c := range cb {
		h[c]--
	}
	for _, n := range h {
		if n != 0 {
			return false
		}
	}
	return true
}
