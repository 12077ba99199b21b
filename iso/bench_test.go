// SPDX-License-Identifier: MIT

package iso_test

import (
	"testing"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

// BenchmarkFull_Chain measures a positive match on a 200-carbon chain whose
// copy is keyed in reverse.
func BenchmarkFull_Chain(b *testing.B) {
	const n = 200
	a := chain(n, 0)
	m := make(map[molgraph.Key]molgraph.Key, n)
	for i := 0; i < n; i++ {
		m[molgraph.Key(i)] = molgraph.Key(n - 1 - i)
	}
	c, _ := a.RelabelKeys(m)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iso.Full(a, c)
	}
}
