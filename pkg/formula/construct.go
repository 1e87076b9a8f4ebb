package formula

// Construct is the recursive variant making up a first-order formula
// (spec.md §3).  It is modelled as a tagged sum — one Go type per
// alternative, each satisfying the isConstruct marker — rather than an
// open class hierarchy, so that a switch over the variants is exhaustive
// and an unhandled case is a deliberate panic, never a silent no-op
// (spec.md §9 "Dynamic dispatch over formula variants").
type Construct interface {
	isConstruct()
	String() string
}

// Atomic wraps a bare atomic formula as a construct.
type Atomic struct {
	Atom AtomicFormula
}

func (Atomic) isConstruct()     {}
func (a Atomic) String() string { return a.Atom.String() }

// Lit wraps a literal (atom or its negation) as a construct.  NNF formulas
// are built entirely from Lit, And and Or once Not has been pushed to the
// atoms.
type Lit struct {
	Literal Literal
}

func (Lit) isConstruct()     {}
func (l Lit) String() string { return l.Literal.String() }

// Not negates a subformula.
type Not struct {
	Sub Construct
}

func (Not) isConstruct()     {}
func (n Not) String() string { return "not(" + n.Sub.String() + ")" }

// And is the conjunction of two subformulas.
type And struct {
	Left, Right Construct
}

func (And) isConstruct() {}
func (a And) String() string {
	return "and(" + a.Left.String() + ", " + a.Right.String() + ")"
}

// Or is the disjunction of two subformulas.
type Or struct {
	Left, Right Construct
}

func (Or) isConstruct() {}
func (o Or) String() string {
	return "or(" + o.Left.String() + ", " + o.Right.String() + ")"
}

// Implies is material implication: Left ⇒ Right.
type Implies struct {
	Left, Right Construct
}

func (Implies) isConstruct() {}
func (i Implies) String() string {
	return "implies(" + i.Left.String() + ", " + i.Right.String() + ")"
}

// Iff is logical equivalence: Left ⇔ Right.
type Iff struct {
	Left, Right Construct
}

func (Iff) isConstruct() {}
func (i Iff) String() string {
	return "iff(" + i.Left.String() + ", " + i.Right.String() + ")"
}

// Exists existentially quantifies Var over Sub.
type Exists struct {
	Var Variable
	Sub Construct
}

func (Exists) isConstruct() {}
func (e Exists) String() string {
	return "exists(" + e.Var.String() + ", " + e.Sub.String() + ")"
}

// ForAll universally quantifies Var over Sub.
type ForAll struct {
	Var Variable
	Sub Construct
}

func (ForAll) isConstruct() {}
func (f ForAll) String() string {
	return "forall(" + f.Var.String() + ", " + f.Sub.String() + ")"
}

// And2 builds a right-associated conjunction over one or more constructs,
// matching the binary And variant above. A single construct is returned
// unchanged.
func And2(first Construct, rest ...Construct) Construct {
	return foldRight(And{}.wrap, first, rest)
}

// Or2 builds a right-associated disjunction over one or more constructs;
// a single construct is returned unchanged.
func Or2(first Construct, rest ...Construct) Construct {
	return foldRight(Or{}.wrap, first, rest)
}

func (And) wrap(l, r Construct) Construct { return And{Left: l, Right: r} }
func (Or) wrap(l, r Construct) Construct  { return Or{Left: l, Right: r} }

func foldRight(join func(l, r Construct) Construct, first Construct, rest []Construct) Construct {
	if len(rest) == 0 {
		return first
	}

	return join(first, foldRight(join, rest[0], rest[1:]))
}
