// SPDX-License-Identifier: MIT
//
// File: transformation.go
// Role: Transformation value, Apply, Reverse and deduplication.
// Determinism:
//   - Bond sets are kept sorted; Key() is a canonical string.
//   - Unique keeps first occurrences; Sort orders by Key().

package trans

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

// Transformation is a reaction class with the bonds formed and broken.
type Transformation struct {
	class  Class
	formed []molgraph.BondKey
	broken []molgraph.BondKey
}

// New builds a Transformation. The bond lists are copied, normalised, sorted
// and deduplicated.
func New(class Class, formed, broken []molgraph.BondKey) Transformation {
	return Transformation{class: class, formed: bondSet(formed), broken: bondSet(broken)}
}

func bondSet(in []molgraph.BondKey) []molgraph.BondKey {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[molgraph.BondKey]struct{}, len(in))
	out := make([]molgraph.BondKey, 0, len(in))
	for _, b := range in {
		b = molgraph.NewBondKey(b.A, b.B)
		if _, dup := seen[b]; !dup {
			seen[b] = struct{}{}
			out = append(out, b)
		}
	}
	molgraph.SortBondKeys(out)
	return out
}

// Class returns the reaction class.
func (t Transformation) Class() Class { return t.class }

// Formed returns a copy of the formed bonds, sorted.
func (t Transformation) Formed() []molgraph.BondKey {
	return append([]molgraph.BondKey(nil), t.formed...)
}

// Broken returns a copy of the broken bonds, sorted.
func (t Transformation) Broken() []molgraph.BondKey {
	return append([]molgraph.BondKey(nil), t.broken...)
}

// Equal reports value equality of class and both bond sets.
func (t Transformation) Equal(o Transformation) bool {
	return t.Key() == o.Key()
}

// Key is a canonical string identifying t, usable as a map key.
func (t Transformation) Key() string {
	return string(t.class) + "|" + joinBonds(t.formed) + "|" + joinBonds(t.broken)
}

// String renders t as "class: +[a-b …] -[c-d …]".
func (t Transformation) String() string {
	return fmt.Sprintf("%s: +[%s] -[%s]", t.class,
		strings.ReplaceAll(joinBonds(t.formed), ",", " "),
		strings.ReplaceAll(joinBonds(t.broken), ",", " "))
}

func joinBonds(bs []molgraph.BondKey) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

// Apply returns g with t's broken bonds removed and its formed bonds added as
// single bonds.
//
// Errors: molgraph.ErrBondNotFound for a broken bond missing from g;
// molgraph.ErrBondExists or ErrAtomNotFound for a formed bond that cannot be added.
// Complexity: O(A + B).
func Apply(t Transformation, g *molgraph.Graph) (*molgraph.Graph, error) {
	out, err := g.RemoveBonds(t.broken...)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	if out, err = out.AddBonds(1, t.formed...); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	return out, nil
}

// Reverse returns the transformation turning y back into x, given t turns x
// into y. Keys of the result live in y's key space.
//
// Steps:
//  1. z = Apply(t, x).
//  2. m = iso.Full(z, y).
//  3. formed' = m(broken), broken' = m(formed), class' = class.Reverse().
//
// Errors: ErrNotReversible when the class has no reverse or Apply(t, x) is not
// isomorphic to y; Apply errors are passed through.
// Complexity: one Apply and one iso.Full.
func Reverse(t Transformation, x, y *molgraph.Graph) (Transformation, error) {
	rc, ok := t.class.Reverse()
	if !ok {
		return Transformation{}, fmt.Errorf("Reverse: class %q: %w", t.class, ErrNotReversible)
	}
	z, err := Apply(t, x)
	if err != nil {
		return Transformation{}, fmt.Errorf("Reverse: %v: %w", err, ErrNotReversible)
	}
	m, ok := iso.Full(z, y)
	if !ok {
		return Transformation{}, fmt.Errorf("Reverse: %s does not lead to target: %w", t, ErrNotReversible)
	}
	return New(rc, remap(t.broken, m), remap(t.formed, m)), nil
}

func remap(bs []molgraph.BondKey, m map[molgraph.Key]molgraph.Key) []molgraph.BondKey {
	out := make([]molgraph.BondKey, 0, len(bs))
	for _, b := range bs {
		nb, _ := b.Map(m)
		out = append(out, nb)
	}
	return out
}

// Unique drops transformations equal to an earlier one, keeping order.
func Unique(ts []Transformation) []Transformation {
	seen := make(map[string]struct{}, len(ts))
	var out []Transformation
	for _, t := range ts {
		k := t.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Sort orders ts in place by Key.
func Sort(ts []Transformation) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Key() < ts[j].Key() })
}
