package formula

// DefiniteClause is a head atom entailed by a conjunction of body atoms:
// head <- body (spec.md §3). Body is restricted by convention to a
// conjunction of Atomic/Lit constructs, though this type does not itself
// enforce that shape.
type DefiniteClause struct {
	Head AtomicFormula
	Body Construct
}

// NewDefiniteClause constructs a definite clause.
func NewDefiniteClause(head AtomicFormula, body Construct) DefiniteClause {
	return DefiniteClause{Head: head, Body: body}
}

// ToImplication rewrites this definite clause as the implication
// body => head, the form the Normalizer's removeImplications pass expects
// (spec.md §4.4's "convert a definite clause head <- body to the
// implication body => head before normalizing").
func (d DefiniteClause) ToImplication() Construct {
	return Implies{Left: d.Body, Right: Atomic{Atom: d.Head}}
}

// String renders the clause as "head <- body".
func (d DefiniteClause) String() string {
	return d.Head.String() + " <- " + d.Body.String()
}

// WeightedDefiniteClause pairs a weight with a definite clause.
type WeightedDefiniteClause struct {
	Weight Weight
	Clause DefiniteClause
}

// NewWeightedDefiniteClause constructs a weighted definite clause.
func NewWeightedDefiniteClause(weight Weight, c DefiniteClause) WeightedDefiniteClause {
	return WeightedDefiniteClause{Weight: weight, Clause: c}
}
