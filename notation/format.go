// SPDX-License-Identifier: MIT

package notation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/reac"
)

const (
	parityFalse = "@"
	parityTrue  = "@@"
	sideSep     = " + "
	arrow       = " >> "
)

// FormatGraph writes g as a graph literal, atoms and bonds in key order.
func FormatGraph(g *molgraph.Graph) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range g.AtomKeys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		a, _ := g.Atom(k)
		sb.WriteString(strconv.Itoa(int(k)))
		sb.WriteByte(':')
		sb.WriteString(a.Symbol)
		if a.ImplicitH > 0 {
			sb.WriteString("[" + strconv.Itoa(a.ImplicitH) + "]")
		}
		sb.WriteString(formatParity(a.Parity))
	}
	sb.WriteByte(';')
	for _, bk := range g.BondKeys() {
		b, _ := g.Bond(bk.A, bk.B)
		sb.WriteByte(' ')
		sb.WriteString(bk.String())
		if b.Order != 1 {
			sb.WriteString("=" + strconv.Itoa(b.Order))
		}
		sb.WriteString(formatParity(b.Parity))
	}
	sb.WriteByte('}')
	return sb.String()
}

// FormatSide joins graph literals with " + ".
func FormatSide(graphs []*molgraph.Graph) string {
	parts := make([]string, len(graphs))
	for i, g := range graphs {
		parts[i] = FormatGraph(g)
	}
	return strings.Join(parts, sideSep)
}

// FormatReaction writes rx on one line, prefixed by its id when it has one.
func FormatReaction(rx reac.Reaction) string {
	s := FormatSide(rx.Reactants) + arrow + FormatSide(rx.Products)
	if rx.ID != "" {
		s = rx.ID + ": " + s
	}
	return s
}

func formatParity(p molgraph.Parity) string {
	switch p {
	case molgraph.ParityFalse:
		return parityFalse
	case molgraph.ParityTrue:
		return parityTrue
	}
	return ""
}
