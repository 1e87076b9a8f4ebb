// Package variabilize implements the Path Variabilizer (spec.md §4.5):
// turning a ground hypergraph path into variabilized literals, honoring
// mode declarations' constant/variable policy and reusing variables for
// constants seen earlier in the same path.
package variabilize

import (
	"strconv"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
)

// Orientation selects which end of the path is treated as the head
// (spec.md §4.5).
type Orientation int

const (
	// CNFOrientation walks the path as given; its last element is the
	// head, used by the Horn/CNF clause builder.
	CNFOrientation Orientation = iota
	// DefiniteOrientation walks the path in reverse; the walk's final
	// element (the path's original first element) is the head, used by
	// the definite-clause builder.
	DefiniteOrientation
)

// Result carries the variabilized literals produced by one call to
// Variabilize: the body literals in walk order, and both candidate head
// literals so the Clause/Definite Builder can emit Horn and conjunction
// forms without re-walking the path.
type Result struct {
	BodyLiterals []formula.Literal
	PositiveHead formula.Literal
	NegativeHead formula.Literal
}

// Variabilize walks path in the orientation the caller requires, mapping
// each (atomId, signature) pair to a variabilized atom per the schema,
// modes and evidence database, and splits the walk into body literals plus
// the head's two literal candidates.
func Variabilize(
	path schema.HPath,
	sch schema.PredicateSchema,
	modes schema.ModeDeclarations,
	ev schema.Evidence,
	orientation Orientation,
) (Result, error) {
	walk := walkOrder(path, orientation)
	headIndex := len(walk) - 1

	counters := map[string]int{}
	mapping := map[string]formula.Variable{}

	atoms := make([]formula.AtomicFormula, len(walk))

	for i, elem := range walk {
		atom, err := variabilizeElement(elem, sch, modes, ev, i == headIndex, counters, mapping)
		if err != nil {
			return Result{}, err
		}

		atoms[i] = atom
	}

	head := atoms[headIndex]
	body := atoms[:headIndex]

	// CNF/Horn body literals are retained negative (spec.md §4.5); the
	// definite builder's body is a conjunction of plain atoms, so its
	// literals carry no negation.
	bodyLiterals := make([]formula.Literal, len(body))

	for i, a := range body {
		if orientation == DefiniteOrientation {
			bodyLiterals[i] = formula.Positive(a)
		} else {
			bodyLiterals[i] = formula.Negative(a)
		}
	}

	return Result{
		BodyLiterals: bodyLiterals,
		PositiveHead: formula.Positive(head),
		NegativeHead: formula.Negative(head),
	}, nil
}

func walkOrder(path schema.HPath, orientation Orientation) schema.HPath {
	if orientation == CNFOrientation {
		return path
	}

	reversed := make(schema.HPath, len(path))
	for i, e := range path {
		reversed[len(path)-1-i] = e
	}

	return reversed
}

func variabilizeElement(
	elem schema.HPathElement,
	sch schema.PredicateSchema,
	modes schema.ModeDeclarations,
	ev schema.Evidence,
	isHead bool,
	counters map[string]int,
	mapping map[string]formula.Variable,
) (formula.AtomicFormula, error) {
	domains, ok := sch.Domains(elem.Signature)
	if !ok {
		return formula.AtomicFormula{}, &MissingSchema{Signature: elem.Signature}
	}

	consts, present, err := ev.Decode(elem.Signature, elem.AtomID)
	if err != nil {
		return formula.AtomicFormula{}, &EvidenceDecodeError{Signature: elem.Signature, AtomID: elem.AtomID, Cause: err}
	}

	if !present {
		return formula.AtomicFormula{}, &EvidenceDecodeError{Signature: elem.Signature, AtomID: elem.AtomID, Cause: errNoEvidenceDB}
	}

	terms := make([]formula.Term, len(consts))

	for pos, c := range consts {
		domain := ""
		if pos < len(domains) {
			domain = domains[pos]
		}

		// The head's placemarker-constant check is always suppressed:
		// every head argument becomes a variable regardless of mode
		// (spec.md §4.5 — "heads are fully general predictors").
		pm := modes.At(elem.Signature, pos)
		if !isHead && pm != nil && pm.Constant {
			terms[pos] = formula.NewConstant(c)
			continue
		}

		terms[pos] = variableFor(domain, c, counters, mapping)
	}

	return formula.NewAtomicFormula(elem.Signature.Predicate, terms...), nil
}

func variableFor(domain, constant string, counters map[string]int, mapping map[string]formula.Variable) formula.Variable {
	key := domain + "\x00" + constant

	if v, ok := mapping[key]; ok {
		return v
	}

	n := counters[domain] + 1
	counters[domain] = n

	v := formula.NewVariable("v"+domainLetter(domain)+strconv.Itoa(n), domain)
	mapping[key] = v

	return v
}

func domainLetter(domain string) string {
	if domain == "" {
		return "v"
	}

	return string(domain[0])
}
