package formula

import "fmt"

// Signature identifies a predicate by symbol and arity.  It is the key
// type for PredicateSchema and ModeDeclarations lookups (spec.md §3).
type Signature struct {
	Predicate string
	Arity     uint
}

// NewSignature constructs a signature.
func NewSignature(predicate string, arity uint) Signature {
	return Signature{Predicate: predicate, Arity: arity}
}

// String renders the signature as "predicate/arity".
func (s Signature) String() string {
	return fmt.Sprintf("%s/%d", s.Predicate, s.Arity)
}

// AtomicFormula is a predicate symbol applied to an ordered list of terms.
type AtomicFormula struct {
	Predicate string
	Terms     []Term
}

// NewAtomicFormula constructs an atomic formula.
func NewAtomicFormula(predicate string, terms ...Term) AtomicFormula {
	return AtomicFormula{Predicate: predicate, Terms: terms}
}

// Signature returns this atom's (predicate, arity) pair.
func (a AtomicFormula) Signature() Signature {
	return NewSignature(a.Predicate, uint(len(a.Terms)))
}

// String renders the atom as "predicate(t1, t2, ...)".
func (a AtomicFormula) String() string {
	s := a.Predicate + "("

	for i, t := range a.Terms {
		if i > 0 {
			s += ", "
		}

		s += t.String()
	}

	return s + ")"
}

// Equals tests structural equality (same predicate, arity and
// term-for-term equality — not alpha-equivalence).
func (a AtomicFormula) Equals(b AtomicFormula) bool {
	if a.Predicate != b.Predicate || len(a.Terms) != len(b.Terms) {
		return false
	}

	for i := range a.Terms {
		if !a.Terms[i].Equals(b.Terms[i]) {
			return false
		}
	}

	return true
}

// Substitute returns a copy of this atom with each term replaced according
// to subst, leaving unmapped terms unchanged.  Used by the path
// variabilizer to turn ground atoms into variabilized ones.
func (a AtomicFormula) Substitute(subst func(Term) Term) AtomicFormula {
	terms := make([]Term, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = subst(t)
	}

	return AtomicFormula{Predicate: a.Predicate, Terms: terms}
}

// Literal is an atom or its negation.
type Literal struct {
	Atom     AtomicFormula
	Negative bool
}

// Positive constructs a positive literal.
func Positive(a AtomicFormula) Literal {
	return Literal{Atom: a, Negative: false}
}

// Negative constructs a negative literal.
func Negative(a AtomicFormula) Literal {
	return Literal{Atom: a, Negative: true}
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return Literal{Atom: l.Atom, Negative: !l.Negative}
}

// String renders the literal, prefixing negative literals with "not".
func (l Literal) String() string {
	if l.Negative {
		return "not(" + l.Atom.String() + ")"
	}

	return l.Atom.String()
}

// Equals tests structural equality of two literals.
func (l Literal) Equals(o Literal) bool {
	return l.Negative == o.Negative && l.Atom.Equals(o.Atom)
}

// IsComplementOf returns true when l and o are the same atom with opposite
// sign — the condition that makes a clause containing both a tautology.
func (l Literal) IsComplementOf(o Literal) bool {
	return l.Negative != o.Negative && l.Atom.Equals(o.Atom)
}
