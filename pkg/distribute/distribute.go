package distribute

import (
	"github.com/mlnforge/clausecore/pkg/formula"
	log "github.com/sirupsen/logrus"
)

// Path records which branch of the hybrid distributor produced a result.
type Path string

const (
	// PathFast is the integer-encoded linear-bookkeeping distributor.
	PathFast Path = "fast"
	// PathGeneric is the exponential A∧(B∨C)→(A∧B)∨(A∧C) rewrite, taken
	// because the formula never qualified for the fast path.
	PathGeneric Path = "generic"
	// PathFastFallback is PathGeneric taken after canFastDistribute said
	// yes but fastDistribute found a disjunct it could not flatten.
	PathFastFallback Path = "fast-fallback"
)

// Stats reports which path the distributor took and how many clauses it
// produced.
type Stats struct {
	Path        Path
	ClauseCount int
}

// Distribute converts an NNF construct into conjunctive normal form (a
// top-level ∧ of ∨ of literals), choosing the fast integer-encoded path
// when the formula's ∧/∨ nesting qualifies and falling back to the generic
// distributor otherwise.
func Distribute(f formula.Construct) (formula.Construct, Stats, error) {
	codes, keyToLit, err := Encode(f)
	if err != nil {
		return nil, Stats{}, err
	}

	if !canFastDistribute(codes) {
		log.Warnf("distribute: formula does not qualify for the fast path; falling back to the generic distributor")

		result := genericDistribute(f)

		return result, Stats{Path: PathGeneric, ClauseCount: countTopClauses(result)}, nil
	}

	clauses, err := fastDistribute(codes)
	if err == errNotFlat {
		log.Warnf("distribute: formula passed canFastDistribute but a disjunct was not a flat conjunction; falling back to the generic distributor")

		result := genericDistribute(f)

		return result, Stats{Path: PathFastFallback, ClauseCount: countTopClauses(result)}, nil
	} else if err != nil {
		return nil, Stats{}, err
	}

	result, decErr := decodeClauses(clauses, keyToLit)
	if decErr != nil {
		return nil, Stats{}, decErr
	}

	return result, Stats{Path: PathFast, ClauseCount: len(clauses)}, nil
}

// decodeClauses rebuilds each candidate (a sorted list of literal keys) as
// a right-associated ∨ chain, then joins the clauses as a right-associated
// ∧ chain — matching spec.md §4.2's "decoding from integer form rebuilds
// this as a right-associated ∧ chain over the produced clauses."
func decodeClauses(clauses [][]int, keyToLit map[int]formula.Literal) (formula.Construct, error) {
	if len(clauses) == 0 {
		return nil, &malformedEncodingError{reason: "no clauses produced"}
	}

	built := make([]formula.Construct, len(clauses))

	for i, keys := range clauses {
		lits := make([]formula.Construct, len(keys))

		for j, k := range keys {
			lit, ok := keyToLit[k]
			if !ok {
				return nil, &malformedEncodingError{reason: "unknown atom key"}
			}

			lits[j] = formula.Lit{Literal: lit}
		}

		built[i] = formula.Or2(lits[0], lits[1:]...)
	}

	return formula.And2(built[0], built[1:]...), nil
}

// countTopClauses counts the ∨-disjuncts joined by the top-level ∧ nodes
// of a CNF construct, however those ∧ nodes are nested, for reporting in
// Stats.
func countTopClauses(c formula.Construct) int {
	if a, ok := c.(formula.And); ok {
		return countTopClauses(a.Left) + countTopClauses(a.Right)
	}

	return 1
}
