package schema

import "github.com/mlnforge/clausecore/pkg/formula"

// Placemarker is the per-argument-position mode policy controlling
// variabilization (spec.md §3, GLOSSARY). At minimum it records whether
// the position is held constant, and whether it is conventionally an
// input or output argument (informational — the variabilizer in this
// core only consults Constant).
type Placemarker struct {
	Constant bool
	Input    bool
	Output   bool
}

// ModeDeclarations maps a predicate signature to its ordered
// placemarkers, one per argument position.
type ModeDeclarations map[formula.Signature][]Placemarker

// Placemarkers returns the ordered placemarkers for sig, and whether sig
// is declared at all.
func (m ModeDeclarations) Placemarkers(sig formula.Signature) ([]Placemarker, bool) {
	p, ok := m[sig]
	return p, ok
}

// At returns the placemarker for argument position i of sig, or nil if
// modes for sig don't cover that position. spec.md §9's third Open
// Question: a nil placemarker is never treated as "constant" — see
// pkg/variabilize.
func (m ModeDeclarations) At(sig formula.Signature, i int) *Placemarker {
	ps, ok := m[sig]
	if !ok || i < 0 || i >= len(ps) {
		return nil
	}

	return &ps[i]
}
