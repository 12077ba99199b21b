// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rxnclass/internal/config"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/reac"
	"github.com/katalvlaran/rxnclass/trans"
)

// transformationView is the printed form of a trans.Transformation.
type transformationView struct {
	Class  string   `json:"class" yaml:"class"`
	Formed []string `json:"formed" yaml:"formed"`
	Broken []string `json:"broken" yaml:"broken"`
}

// classifyView is the printed form of one classified reaction.
type classifyView struct {
	ID              string               `json:"id" yaml:"id"`
	Class           string               `json:"class,omitempty" yaml:"class,omitempty"`
	Transformations []transformationView `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	ReactantOrder   []int                `json:"reactant_order,omitempty" yaml:"reactant_order,omitempty"`
	ProductOrder    []int                `json:"product_order,omitempty" yaml:"product_order,omitempty"`
	Cached          bool                 `json:"cached,omitempty" yaml:"cached,omitempty"`
	Error           string               `json:"error,omitempty" yaml:"error,omitempty"`
}

// enumerateView is the printed form of one enumerated product set.
type enumerateView struct {
	Products []string `json:"products" yaml:"products"`
}

func newClassifyView(item reac.BatchResult, cached bool) classifyView {
	v := classifyView{ID: item.ID, Cached: cached}
	if item.Err != nil {
		v.Error = item.Err.Error()
		return v
	}
	if c, ok := item.Result.Class(); ok {
		v.Class = c.String()
	}
	for _, t := range item.Result.Transformations {
		v.Transformations = append(v.Transformations, newTransformationView(t))
	}
	v.ReactantOrder = item.Result.ReactantOrder
	v.ProductOrder = item.Result.ProductOrder
	return v
}

func newTransformationView(t trans.Transformation) transformationView {
	return transformationView{
		Class:  t.Class().String(),
		Formed: bondStrings(t.Formed()),
		Broken: bondStrings(t.Broken()),
	}
}

func bondStrings(bks []molgraph.BondKey) []string {
	out := make([]string, len(bks))
	for i, b := range bks {
		out[i] = b.String()
	}
	return out
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText:
		return text(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeClassifyText prints one line per reaction: id, class, then every
// transformation, tab separated.
func writeClassifyText(w io.Writer, views []classifyView) error {
	for _, v := range views {
		var line string
		switch {
		case v.Error != "":
			line = v.ID + "\terror\t" + v.Error
		case v.Class == "":
			line = v.ID + "\tunclassified"
		default:
			parts := make([]string, len(v.Transformations))
			for i, t := range v.Transformations {
				parts[i] = fmt.Sprintf("+[%s] -[%s]", strings.Join(t.Formed, " "), strings.Join(t.Broken, " "))
			}
			line = v.ID + "\t" + v.Class + "\t" + strings.Join(parts, "\t")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
