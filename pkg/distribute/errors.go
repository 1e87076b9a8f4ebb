package distribute

import "github.com/mlnforge/clausecore/pkg/formula"

// EncodingError reports that the integer encoder was handed a construct
// shape it cannot represent: anything other than Lit, And or Or. Any
// properly normalized NNF formula never triggers this; seeing it means the
// caller skipped normalization or the formula still carries an implication,
// quantifier or bare Atomic node (spec.md §7).
type EncodingError struct {
	Construct formula.Construct
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return "distribute: cannot encode construct of type " + typeName(e.Construct) + ": " + e.Construct.String()
}

// malformedEncodingError reports that a code sequence could not be decoded
// back into a construct: a stack underflow or an unknown atom key. This
// only happens if Decode is handed codes it did not itself produce via
// Encode, or a key→literal map that doesn't match them.
type malformedEncodingError struct {
	reason string
}

func (e *malformedEncodingError) Error() string {
	return "distribute: malformed code sequence: " + e.reason
}

func typeName(c formula.Construct) string {
	switch c.(type) {
	case formula.Atomic:
		return "Atomic"
	case formula.Not:
		return "Not"
	case formula.Implies:
		return "Implies"
	case formula.Iff:
		return "Iff"
	case formula.Exists:
		return "Exists"
	case formula.ForAll:
		return "ForAll"
	default:
		return "unknown"
	}
}
