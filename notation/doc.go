// SPDX-License-Identifier: MIT

// Package notation reads and writes a compact text form of molecular graphs
// and reactions.
//
// Graph literals list atoms, then bonds:
//
//	{0:C[3] 1:O; 0-1=2}
//
// An atom is key:Symbol with an optional implicit-hydrogen count in brackets.
// A bond is a-b with an optional =order (default 1). Either may end in a
// stereo parity, "@" (false) or "@@" (true).
//
// Species from package builder may stand in for a literal:
//
//	alkane(3)   alkyl(2,0)   alkene(3,1)   cycloalkane(5)   hydrogen   dihydrogen
//
// A reaction is an optional id, then reactants and products separated by
// ">>":
//
//	r1: alkyl(2,0) + dihydrogen >> alkane(2) + hydrogen
//
// Species on one side are keyed after every graph before them, so a side
// written only with species always has disjoint keys. ReadReactions reads one
// reaction per line and skips blank lines and lines starting with '#'.
//
// FormatGraph and FormatReaction write literals that parse back to equal
// graphs.
package notation
