// SPDX-License-Identifier: MIT

// Package enumerate generates candidate products of elementary reaction steps.
//
// What:
//
//	Given one graph (or two), each enumerator proposes every product set that
//	a named step can produce:
//	  - HydrogenAbstraction(x, y): x loses a hydrogen, y gains one.
//	  - Addition(x, y):            a bond between unsaturated atoms of x and y.
//	  - HydrogenMigration(g):      a hydrogen moves onto a radical site.
//	  - BetaScission(g):           a single bond beta to a radical site breaks.
//	  - HomolyticScission(g):      any single bond breaks.
//	  - GroupLoss(g, symbol):      one atom of the given element is removed.
//
// Contract:
//
//	Inputs are explicit graphs. Outputs are deduplicated by Unique: two
//	product sets are the same when the standardised unions of their graphs
//	are isomorphic, so symmetry-equivalent edits collapse to the first one
//	found. Enumeration order follows sorted keys and is deterministic.
//
// Usage:
//
//	sets, err := enumerate.HomolyticScission(propane)
//	for _, ps := range sets {
//	    fmt.Println(len(ps)) // fragments per product set
//	}
//
// These are hypothesis generators. Pair them with reac.Classify to check which
// class a proposed product set falls in.
package enumerate
