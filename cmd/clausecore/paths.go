package main

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/builder"
	"github.com/mlnforge/clausecore/pkg/clause"
	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Variabilize a hard-coded toy hypergraph path and print the resulting clauses.",
	Long: `Walks a toy path p(c) -> q(c) -> r(c), all three atoms decoding to the
same ground constant "ann" in domain "person", through the Path
Variabilizer and Clause Builder (spec.md §4.5, §4.6), printing both the
Horn and conjunction clauses synthesized from it.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		p := formula.NewSignature("p", 1)
		q := formula.NewSignature("q", 1)
		r := formula.NewSignature("r", 1)

		sch := schema.PredicateSchema{
			p: {"person"},
			q: {"person"},
			r: {"person"},
		}

		modes := schema.ModeDeclarations{
			p: {{Constant: false, Input: true}},
			q: {{Constant: false, Input: true}},
			r: {{Constant: false, Output: true}},
		}

		ev := schema.Evidence{
			p: schema.MapEvidenceDB{1: {"ann"}},
			q: schema.MapEvidenceDB{2: {"ann"}},
			r: schema.MapEvidenceDB{3: {"ann"}},
		}

		path := schema.HPath{
			{AtomID: 1, Signature: p},
			{AtomID: 2, Signature: q},
			{AtomID: 3, Signature: r},
		}

		clauses, err := builder.Clauses(
			[]schema.HPath{path},
			sch,
			modes,
			ev,
			clause.Both,
			nil,
			builder.Options{},
		)
		if err != nil {
			fmt.Println(err)
			return
		}

		for _, c := range clauses {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
