package clause

// Kind selects what shape the Clause/Definite Builder's Clauses function
// produces from a walked path (spec.md §4.6). Both variants still produce a
// plain disjunctive Clause; only the head literal's polarity differs.
type Kind int

const (
	// Horn produces body ∪ {¬head}, where body holds the negated body
	// atoms: the clause whose negation is the conjunction body ∧ head.
	Horn Kind = iota
	// Conjunction produces body ∪ {+head}, the disjunctive form whose
	// negation is the conjunction body ∧ ¬head.
	Conjunction
	// Both produces the Horn clause and the Conjunction clause per path.
	Both
)

// String renders the clause kind by name.
func (k Kind) String() string {
	switch k {
	case Horn:
		return "horn"
	case Conjunction:
		return "conjunction"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}
