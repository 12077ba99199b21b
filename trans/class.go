// SPDX-License-Identifier: MIT

package trans

import "fmt"

// Class names a reaction class.
type Class string

// Reaction classes.
const (
	Trivial             Class = "trivial"
	HydrogenMigration   Class = "hydrogen migration"
	HydrogenAbstraction Class = "hydrogen abstraction"
	Addition            Class = "addition"
	BetaScission        Class = "beta scission"
	RingFormingScission Class = "ring forming scission"
	Elimination         Class = "elimination"
	Insertion           Class = "insertion"
	Substitution        Class = "substitution"
)

var classes = []Class{
	Trivial, HydrogenMigration, HydrogenAbstraction, Addition, BetaScission,
	RingFormingScission, Elimination, Insertion, Substitution,
}

// reverseOf pairs each class with the class of the opposite direction.
var reverseOf = map[Class]Class{
	Trivial:             Trivial,
	HydrogenMigration:   HydrogenMigration,
	HydrogenAbstraction: HydrogenAbstraction,
	Addition:            BetaScission,
	BetaScission:        Addition,
	Elimination:         Insertion,
	Insertion:           Elimination,
	Substitution:        Substitution,
}

// Classes returns every known class.
func Classes() []Class { return append([]Class(nil), classes...) }

// Reverse returns the class of the reverse reaction. Ring-forming scission
// has none.
func (c Class) Reverse() (Class, bool) {
	r, ok := reverseOf[c]
	return r, ok
}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	for _, k := range classes {
		if k == c {
			return true
		}
	}
	return false
}

func (c Class) String() string { return string(c) }

// ParseClass returns the class named s.
func ParseClass(s string) (Class, error) {
	if c := Class(s); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("ParseClass: %q: %w", s, ErrUnknownClass)
}
