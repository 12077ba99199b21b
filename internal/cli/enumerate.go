// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rxnclass/enumerate"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/notation"
)

// step is one enumeration entry point; symbol is only read by "loss".
type step struct {
	arity int
	run   func(gs []*molgraph.Graph, symbol string) ([]enumerate.ProductSet, error)
}

var steps = map[string]step{
	"abstraction": {2, func(gs []*molgraph.Graph, _ string) ([]enumerate.ProductSet, error) {
		return enumerate.HydrogenAbstraction(gs[0], gs[1])
	}},
	"addition": {2, func(gs []*molgraph.Graph, _ string) ([]enumerate.ProductSet, error) {
		return enumerate.Addition(gs[0], gs[1])
	}},
	"migration": {1, func(gs []*molgraph.Graph, _ string) ([]enumerate.ProductSet, error) {
		return enumerate.HydrogenMigration(gs[0])
	}},
	"beta": {1, func(gs []*molgraph.Graph, _ string) ([]enumerate.ProductSet, error) {
		return enumerate.BetaScission(gs[0])
	}},
	"homolytic": {1, func(gs []*molgraph.Graph, _ string) ([]enumerate.ProductSet, error) {
		return enumerate.HomolyticScission(gs[0])
	}},
	"loss": {1, func(gs []*molgraph.Graph, symbol string) ([]enumerate.ProductSet, error) {
		return enumerate.GroupLoss(gs[0], symbol)
	}},
}

func stepNames() []string {
	names := make([]string, 0, len(steps))
	for n := range steps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newEnumerateCmd(a *app) *cobra.Command {
	var symbol string
	cmd := &cobra.Command{
		Use:   "enumerate <step> <graph> [graph]",
		Short: "Enumerate the distinct products of one elementary step",
		Long: "Steps: " + strings.Join(stepNames(), ", ") + ".\n" +
			"abstraction and addition take two graphs, the others one. Graphs are\n" +
			"written as in reaction files, e.g. 'alkane(3)' or '{0:C[3] 1:C[3]; 0-1}'.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEnumerate(cmd.OutOrStdout(), args[0], args[1:], symbol)
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "H", "element lost by the loss step")
	return cmd
}

func (a *app) runEnumerate(out io.Writer, name string, args []string, symbol string) error {
	st, ok := steps[name]
	if !ok {
		return fmt.Errorf("unknown step %q (want one of %s)", name, strings.Join(stepNames(), ", "))
	}
	if len(args) != st.arity {
		return fmt.Errorf("step %s takes %d graph(s), got %d", name, st.arity, len(args))
	}
	gs := make([]*molgraph.Graph, len(args))
	for i, s := range args {
		g, err := notation.ParseGraph(s)
		if err != nil {
			return err
		}
		gs[i] = g
	}
	sets, err := st.run(gs, symbol)
	if err != nil {
		return err
	}
	a.logger.Debug("enumerated", zap.String("step", name), zap.Int("sets", len(sets)))

	views := make([]enumerateView, len(sets))
	for i, ps := range sets {
		views[i].Products = make([]string, len(ps))
		for j, g := range ps {
			views[i].Products[j] = notation.FormatGraph(g)
		}
	}
	return render(out, a.cfg.Output.Format, views, func(w io.Writer) error {
		for _, ps := range sets {
			if _, err := fmt.Fprintln(w, notation.FormatSide(ps)); err != nil {
				return err
			}
		}
		return nil
	})
}
