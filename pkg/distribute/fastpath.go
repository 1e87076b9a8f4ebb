package distribute

import (
	"sort"
	"strconv"
	"strings"
)

// errNotFlat signals that a formula passed canFastDistribute but one of its
// disjuncts, once the solo-atom prefix is removed, is not a flat
// conjunction of literals (it still contains a nested ∨). This is the
// subtlety spec.md §9 flags about canFastDistribute's declarative
// restatement: the scanner-based predicate and the "disjunction of
// conjunctions" restatement agree on every case this codebase's scenarios
// exercise, but a pathological input could in principle satisfy the
// left-to-right scan while still nesting a ∨ inside a ∧. Rather than risk
// miscompiling such an input, fastDistribute bails out and the caller falls
// back to the generic distributor.
var errNotFlat = &flatnessError{}

type flatnessError struct{}

func (*flatnessError) Error() string { return "distribute: group is not a flat conjunction of literals" }

// canFastDistribute reports whether codes qualifies for the fast path:
// scanning left-to-right, once a ∨ is seen after a ∧ has already appeared,
// no further ∧ may appear.
func canFastDistribute(codes []int) bool {
	sawAnd := false
	sawOrAfterAnd := false

	for _, c := range codes {
		switch c {
		case codeAnd:
			if sawOrAfterAnd {
				return false
			}

			sawAnd = true
		case codeOr:
			if sawAnd {
				sawOrAfterAnd = true
			}
		}
	}

	return true
}

// flattenDisjuncts splits the complete subtree codes into its top-level ∨
// operands (recursively, since ∨ is associative): each returned chunk is
// itself a complete subtree encoding, either a lone atom key or a
// conjunction group.
func flattenDisjuncts(codes []int) [][]int {
	if len(codes) == 0 {
		return nil
	}

	if codes[0] != codeOr {
		return [][]int{codes}
	}

	leftEnd := subtreeEnd(codes, 1)
	left := codes[1:leftEnd]
	right := codes[leftEnd:]

	return append(flattenDisjuncts(left), flattenDisjuncts(right)...)
}

// flattenConjunction flattens a complete subtree into the list of atom keys
// it conjoins, returning ok=false if it is not a pure ∧-chain of atoms (it
// contains a nested ∨).
func flattenConjunction(codes []int) ([]int, bool) {
	if len(codes) == 1 && isAtomKey(codes[0]) {
		return []int{codes[0]}, true
	}

	if len(codes) == 0 || codes[0] != codeAnd {
		return nil, false
	}

	leftEnd := subtreeEnd(codes, 1)
	left := codes[1:leftEnd]
	right := codes[leftEnd:]

	lk, ok := flattenConjunction(left)
	if !ok {
		return nil, false
	}

	rk, ok := flattenConjunction(right)
	if !ok {
		return nil, false
	}

	return append(lk, rk...), true
}

// fastDistribute runs the prefix-extraction / split / distribution-step
// algorithm of spec.md §4.2 over an already fast-distribute-qualifying code
// sequence, returning the resulting clauses as sorted slices of atom keys.
// It returns errNotFlat if a disjunct turns out not to be a flat
// conjunction of literals once the prefix is removed.
func fastDistribute(codes []int) ([][]int, error) {
	chunks := flattenDisjuncts(codes)

	var prefix []int

	var groups [][]int

	for _, chunk := range chunks {
		if len(chunk) == 1 && isAtomKey(chunk[0]) {
			prefix = append(prefix, chunk[0])
			continue
		}

		group, ok := flattenConjunction(chunk)
		if !ok {
			return nil, errNotFlat
		}

		groups = append(groups, group)
	}

	working := [][]int{sortedCopy(prefix)}

	for _, group := range groups {
		seen := map[string]bool{}

		var next [][]int

		for _, existing := range working {
			for _, atomKey := range group {
				candidate := existing

				if !containsInt(existing, atomKey) {
					candidate = sortedAppend(existing, atomKey)
				}

				key := encodeKey(candidate)
				if seen[key] {
					continue
				}

				seen[key] = true
				next = append(next, candidate)
			}
		}

		working = next
	}

	return working, nil
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

func sortedCopy(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)

	return out
}

func sortedAppend(xs []int, x int) []int {
	out := make([]int, 0, len(xs)+1)
	out = append(out, xs...)
	out = append(out, x)
	sort.Ints(out)

	return out
}

// encodeKey renders a sorted key slice as a comma-joined string, the
// "sorted encoding" spec.md §4.2 uses as the candidate-clause equality key.
func encodeKey(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}
