// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rxnclass/internal/config"
	"github.com/katalvlaran/rxnclass/internal/metrics"
	"github.com/katalvlaran/rxnclass/internal/store"
	"github.com/katalvlaran/rxnclass/notation"
	"github.com/katalvlaran/rxnclass/reac"
)

// ErrInvalidReactions is returned after output when some reactions were
// rejected by the classifier.
var ErrInvalidReactions = errors.New("cli: invalid reactions in input")

func newClassifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Classify every reaction of a reaction file",
		Long: "Reads one reaction per line, for example\n\n" +
			"  r1: alkyl(1,0) + alkyl(1,0) >> alkane(2)\n" +
			"  r2: {0:C 1:H; 0-1} >> {0:C;} + {1:H;}\n\n" +
			"from the file, or from stdin when the file is '-' or omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return a.runClassify(cmd.Context(), in, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.Int("workers", config.DefaultWorkers, "reactions classified concurrently")
	fs.Bool("simple", false, "normalise graphs (explicit hydrogens, no stereo) before classifying")
	fs.Bool("maximum-trivial", false, "pair trivial reactions by maximum bipartite matching")
	fs.String("cache-dir", "", "badger directory caching results between runs")
	fs.String("metrics-file", "", "write prometheus textfile metrics to this path")
	mustBind(a.v, fs, map[string]string{
		"classify.workers":                  "workers",
		"classify.simple":                   "simple",
		"classify.maximum_trivial_matching": "maximum-trivial",
		"cache.dir":                         "cache-dir",
		"metrics.file":                      "metrics-file",
	})
	return cmd
}

// runClassify parses the input, serves what it can from the cache, classifies
// the rest in one batch and prints the results in input order.
func (a *app) runClassify(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rxs, err := notation.ReadReactions(in)
	if err != nil {
		return err
	}
	cc := a.cfg.Classify
	opts := []reac.Option{reac.WithLogger(a.logger)}
	variant := "default"
	if cc.MaximumTrivialMatching {
		opts = append(opts, reac.WithMaximumTrivialMatching())
		variant = "maximum"
	}
	for i := range rxs {
		if rxs[i].ID == "" {
			rxs[i].ID = uuid.NewString()
		}
		if cc.Simple {
			rxs[i].Reactants = reac.Normalize(rxs[i].Reactants)
			rxs[i].Products = reac.Normalize(rxs[i].Products)
		}
	}
	if cc.Simple {
		variant = "simple+" + variant
	}

	var cache *store.Store
	if a.cfg.Cache.Dir != "" {
		if cache, err = store.Open(a.cfg.Cache.Dir); err != nil {
			return err
		}
		defer cache.Close()
	}

	m := metrics.New()
	items := make([]reac.BatchResult, len(rxs))
	cached := make([]bool, len(rxs))
	fps := make([]store.Fingerprint, len(rxs))
	var pending []reac.Reaction
	var slots []int
	for i, rx := range rxs {
		if cache != nil {
			fps[i] = store.FingerprintOf(rx, variant)
			res, ok, err := cache.Get(fps[i])
			if err != nil {
				return err
			}
			if ok {
				items[i] = reac.BatchResult{ID: rx.ID, Result: res}
				cached[i] = true
				m.CacheHits.Inc()
				continue
			}
			m.CacheMiss.Inc()
		}
		pending = append(pending, rx)
		slots = append(slots, i)
	}
	a.logger.Info("classifying reactions",
		zap.Int("total", len(rxs)),
		zap.Int("pending", len(pending)),
		zap.Int("workers", cc.Workers),
		zap.String("variant", variant))

	start := time.Now()
	done, err := reac.ClassifyBatch(ctx, pending, cc.Workers, opts...)
	if err != nil {
		return err
	}
	for j, item := range done {
		i := slots[j]
		items[i] = item
		if cache != nil && item.Err == nil {
			if err := cache.Put(fps[i], item.Result); err != nil {
				return err
			}
		}
	}
	m.ObserveBatch(items, time.Since(start))
	if a.cfg.Metrics.File != "" {
		if err := m.WriteTextfile(a.cfg.Metrics.File); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	views := make([]classifyView, len(items))
	invalid := 0
	for i, item := range items {
		views[i] = newClassifyView(item, cached[i])
		if item.Err != nil {
			invalid++
			a.logger.Warn("invalid reaction", zap.String("id", item.ID), zap.Error(item.Err))
		}
	}
	if err := render(out, a.cfg.Output.Format, views, func(w io.Writer) error {
		return writeClassifyText(w, views)
	}); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidReactions, invalid, len(items))
	}
	return nil
}
