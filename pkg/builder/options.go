package builder

import "github.com/mlnforge/clausecore/pkg/formula"

// Options configures optional policy hooks for the Clause/Definite
// Builder.
type Options struct {
	// RequireDistinctHeadTerms, when set, rejects any path whose head
	// atom repeats a term across argument positions (e.g. a head p(X,X)).
	// The source this core is modeled on carries this check commented
	// out in the definite-clause builder; spec.md §9 leaves it an open
	// question whether it should run, so it is specified here as an
	// opt-in policy the caller must explicitly enable rather than
	// default behavior.
	RequireDistinctHeadTerms bool
}

// NonFluentHeadError reports that Options.RequireDistinctHeadTerms is set
// and a path's head atom failed the distinct-terms check.
type NonFluentHeadError struct {
	Head formula.AtomicFormula
}

// Error implements the error interface.
func (e *NonFluentHeadError) Error() string {
	return "builder: head atom repeats a term across argument positions: " + e.Head.String()
}

func allTermsDistinct(terms []formula.Term) bool {
	for i := range terms {
		for j := i + 1; j < len(terms); j++ {
			if terms[i].Equals(terms[j]) {
				return false
			}
		}
	}

	return true
}
