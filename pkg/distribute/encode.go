// Package distribute implements the Hybrid Distributor (spec.md §4.2): an
// integer-encoded fast path for converting an NNF formula into conjunctive
// normal form when its ∧/∨ nesting qualifies, falling back to the classic
// exponential distributive rewrite otherwise.
package distribute

import "github.com/mlnforge/clausecore/pkg/formula"

// Code reserves 0 for ∨ and 1 for ∧; every other value ≥2 is an atom key.
const (
	codeOr       = 0
	codeAnd      = 1
	firstAtomKey = 2
)

// encoder serializes an NNF construct into a prefix-ordered integer
// sequence, assigning each distinct literal a fresh key and recording the
// pair of inverse maps needed to decode it again.
type encoder struct {
	nextKey  int
	keyToLit map[int]formula.Literal
	litToKey map[string]int
}

func newEncoder() *encoder {
	return &encoder{
		nextKey:  firstAtomKey,
		keyToLit: map[int]formula.Literal{},
		litToKey: map[string]int{},
	}
}

func (e *encoder) keyFor(l formula.Literal) int {
	s := l.String()
	if k, ok := e.litToKey[s]; ok {
		return k
	}

	k := e.nextKey
	e.nextKey++
	e.litToKey[s] = k
	e.keyToLit[k] = l

	return k
}

// encode appends the prefix encoding of c onto out, returning the extended
// slice, or an *EncodingError if c contains a variant other than Lit, And
// or Or.
func (e *encoder) encode(c formula.Construct, out []int) ([]int, error) {
	switch f := c.(type) {
	case formula.Lit:
		return append(out, e.keyFor(f.Literal)), nil
	case formula.And:
		out = append(out, codeAnd)

		out, err := e.encode(f.Left, out)
		if err != nil {
			return nil, err
		}

		return e.encode(f.Right, out)
	case formula.Or:
		out = append(out, codeOr)

		out, err := e.encode(f.Left, out)
		if err != nil {
			return nil, err
		}

		return e.encode(f.Right, out)
	default:
		return nil, &EncodingError{Construct: c}
	}
}

// Encode serializes an NNF formula into its integer encoding, returning the
// code sequence and the key→literal map needed to decode it.
func Encode(c formula.Construct) ([]int, map[int]formula.Literal, error) {
	e := newEncoder()

	codes, err := e.encode(c, nil)
	if err != nil {
		return nil, nil, err
	}

	return codes, e.keyToLit, nil
}

// Decode reconstructs a construct from a prefix-encoded code sequence and
// its key→literal map, by scanning right-to-left with a stack: an atom key
// pushes a Lit, and an operator code pops two operands (the more recently
// pushed being the left operand) and pushes the combined Or/And.
func Decode(codes []int, keyToLit map[int]formula.Literal) (formula.Construct, error) {
	stack := make([]formula.Construct, 0, len(codes))

	for i := len(codes) - 1; i >= 0; i-- {
		switch codes[i] {
		case codeOr, codeAnd:
			if len(stack) < 2 {
				return nil, &malformedEncodingError{reason: "operator with fewer than two operands on the stack"}
			}

			left := stack[len(stack)-1]
			right := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			if codes[i] == codeOr {
				stack = append(stack, formula.Or{Left: left, Right: right})
			} else {
				stack = append(stack, formula.And{Left: left, Right: right})
			}
		default:
			lit, ok := keyToLit[codes[i]]
			if !ok {
				return nil, &malformedEncodingError{reason: "unknown atom key"}
			}

			stack = append(stack, formula.Lit{Literal: lit})
		}
	}

	if len(stack) != 1 {
		return nil, &malformedEncodingError{reason: "leftover operands after decoding"}
	}

	return stack[0], nil
}

// subtreeEnd returns the index one past the end of the complete subtree
// whose prefix encoding starts at codes[start], by depth-counting: each
// operator demands one more subtree than it closes (net +1), each atom
// fulfils one demand (net -1); the subtree ends once the running balance,
// begun at 1, reaches 0.
func subtreeEnd(codes []int, start int) int {
	need := 1
	i := start

	for need > 0 {
		if codes[i] == codeOr || codes[i] == codeAnd {
			need++
		} else {
			need--
		}

		i++
	}

	return i
}

func isAtomKey(code int) bool {
	return code >= firstAtomKey
}
