// Package cnf implements the CNF Pipeline (spec.md §4.4): the public
// make_cnf entry point that wraps, normalizes, distributes and extracts a
// collection of formulas into one alpha-equivalence-deduplicated clause
// set.
package cnf

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/clause"
	"github.com/mlnforge/clausecore/pkg/distribute"
	"github.com/mlnforge/clausecore/pkg/normalize"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/mlnforge/clausecore/pkg/util"
	log "github.com/sirupsen/logrus"
)

type result struct {
	index   int
	clauses []clause.Clause
	err     error
}

// MakeCNF compiles every input formula into clauses and unions them into
// one set. Formulas are compiled concurrently — CNF compilation is
// embarrassingly parallel per formula (spec.md §5) — with no locks and a
// single fan-out/fan-in wave, grounded on the teacher's
// ParallelTraceValidation. The order clauses are discovered in is
// unspecified, but errors are reported deterministically: if more than one
// formula fails, the error from the lowest input index wins.
func MakeCNF(inputs []Input, constants schema.ConstantsMap) (*clause.Set, error) {
	stats := util.NewPerfStats()

	ch := make(chan result, len(inputs))

	for i, in := range inputs {
		go func(i int, in Input) {
			cs, err := compileOne(in, constants)
			ch <- result{index: i, clauses: cs, err: err}
		}(i, in)
	}

	results := make([]result, len(inputs))
	for range inputs {
		r := <-ch
		results[r.index] = r
	}

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	set := clause.NewSet(uint(len(inputs)))
	for _, r := range results {
		set.AddAll(r.clauses)
	}

	stats.Log(fmt.Sprintf("make_cnf: compiled %d formulas into %d clauses", len(inputs), set.Size()))

	return set, nil
}

func compileOne(in Input, constants schema.ConstantsMap) ([]clause.Clause, error) {
	wf := in.weighted()

	normalized, err := normalize.Normalize(wf.Body, constants)
	if err != nil {
		return nil, err
	}

	cnfConstruct, stats, err := distribute.Distribute(normalized)
	if err != nil {
		return nil, err
	}

	if stats.Path != distribute.PathFast {
		log.Debugf("make_cnf: formula took the %s distribute path (%d clauses)", stats.Path, stats.ClauseCount)
	}

	return clause.Extract(wf.Weight, cnfConstruct), nil
}
