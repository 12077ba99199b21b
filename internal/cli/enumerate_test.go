// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	cases := []struct {
		name string
		args []string
		sets int
	}{
		{"homolytic ethane", []string{"homolytic", "alkane(2)"}, 2},
		{"homolytic propane", []string{"homolytic", "alkane(3)"}, 3},
		{"beta n-propyl", []string{"beta", "alkyl(3,0)"}, 2},
		{"loss of H from methane", []string{"loss", "alkane(1)"}, 1},
		{"addition", []string{"addition", "alkyl(1,0)", "hydrogen"}, 1},
		{"abstraction", []string{"abstraction", "alkane(1)", "hydrogen"}, 1},
		{"migration needs more atoms", []string{"migration", "hydrogen"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"enumerate"}, c.args...)...)
			require.NoError(t, err)
			out = strings.TrimSpace(out)
			if c.sets == 0 {
				assert.Empty(t, out)
				return
			}
			assert.Len(t, strings.Split(out, "\n"), c.sets)
		})
	}
}

func TestEnumerate_JSON(t *testing.T) {
	out, err := run(t, "", "-o", "json", "enumerate", "homolytic", "{0:H 1:H; 0-1}")
	require.NoError(t, err)

	var views []enumerateView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Len(t, views[0].Products, 2)
}

func TestEnumerate_Errors(t *testing.T) {
	_, err := run(t, "", "enumerate", "pyrolysis", "alkane(2)")
	require.ErrorContains(t, err, "unknown step")

	_, err = run(t, "", "enumerate", "addition", "alkane(2)")
	require.ErrorContains(t, err, "takes 2 graph(s)")

	_, err = run(t, "", "enumerate", "beta", "{0:C")
	require.Error(t, err)

	_, err = run(t, "", "enumerate")
	require.Error(t, err)
}
