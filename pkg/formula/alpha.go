package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Canonicalize produces a deterministic string key for a set of literals
// that is invariant under (a) reordering of the literals and (b) a
// consistent, domain-preserving renaming of variables — i.e. two literal
// sets that are alpha-equivalent (spec.md §4.7) produce the same key,
// regardless of the order the caller's slice happens to list them in.
//
// The approach: enumerate every domain-preserving bijection from this
// call's distinct variables to canonical "<domainLetter><n>" names (one
// bijection per domain, since a renaming never crosses domains), render
// every literal under each candidate bijection, sort the rendered literals
// to erase input order, and keep the lexicographically smallest result as
// the key. Two literal sets are alpha-equivalent exactly when this minimum
// matches.
//
// Assigning canonical names via a single left-to-right pass over a sorted
// literal list (the previous approach here) breaks down whenever two or
// more literals render identically once their variables are erased — e.g.
// p(x) and p(y) both look like "p,<var>" — because Go's sort leaves such
// tied elements in whatever relative order the input slice gave them, so
// the first-come-first-served numbering of x and y then depends on input
// order. Minimizing over every bijection sidesteps that: the result no
// longer depends on which literal a tie-breaking pass happened to visit
// first.
func Canonicalize(literals []Literal) string {
	groups := variablesByDomain(literals)

	best := ""
	seen := false

	forEachAssignment(groups, func(assignment map[string]string) {
		rendered := make([]string, len(literals))
		for i, l := range literals {
			rendered[i] = renderWithAssignment(l, assignment)
		}

		sort.Strings(rendered)
		key := strings.Join(rendered, "|")

		if !seen || key < best {
			best = key
			seen = true
		}
	})

	return best
}

// AlphaEquivalent tests whether two literal sets are equivalent under a
// bijective, domain-preserving variable renaming.
func AlphaEquivalent(a, b []Literal) bool {
	return Canonicalize(a) == Canonicalize(b)
}

// variablesByDomain walks every literal's terms (recursing into Function
// arguments) and returns, for each domain, the sorted list of distinct
// variable identity keys ("name\x00domain") appearing in that domain.
func variablesByDomain(literals []Literal) map[string][]string {
	groups := map[string][]string{}
	seen := map[string]bool{}

	var walkTerm func(t Term)
	walkTerm = func(t Term) {
		switch v := t.(type) {
		case Variable:
			key := v.Name + "\x00" + v.Domain
			if !seen[key] {
				seen[key] = true
				groups[v.Domain] = append(groups[v.Domain], key)
			}
		case Function:
			for _, a := range v.Args {
				walkTerm(a)
			}
		}
	}

	for _, l := range literals {
		for _, t := range l.Atom.Terms {
			walkTerm(t)
		}
	}

	for domain := range groups {
		sort.Strings(groups[domain])
	}

	return groups
}

// forEachAssignment calls fn once per combination of per-domain variable
// permutations, assigning each variable in a domain's group a distinct
// canonical name "<domainLetter><rank>" for some permutation of ranks
// 1..len(group). Domains are independent of each other, so the full search
// space is the Cartesian product of each domain's permutation group.
func forEachAssignment(groups map[string][]string, fn func(map[string]string)) {
	domains := make([]string, 0, len(groups))
	for d := range groups {
		domains = append(domains, d)
	}

	sort.Strings(domains)

	assignment := map[string]string{}

	var recurse func(i int)
	recurse = func(i int) {
		if i == len(domains) {
			fn(assignment)
			return
		}

		domain := domains[i]
		keys := groups[domain]

		for _, perm := range permutations(len(keys)) {
			for idx, key := range keys {
				assignment[key] = domainLetter(domain) + strconv.Itoa(perm[idx]+1)
			}

			recurse(i + 1)
		}
	}

	recurse(0)
}

// permutations returns every permutation of {0,...,n-1} as a slice of
// index slices, via the standard swap-based recursive generator.
func permutations(n int) [][]int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var result [][]int

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			cp := make([]int, n)
			copy(cp, indices)
			result = append(result, cp)

			return
		}

		for i := k; i < n; i++ {
			indices[k], indices[i] = indices[i], indices[k]
			permute(k + 1)
			indices[k], indices[i] = indices[i], indices[k]
		}
	}

	permute(0)

	return result
}

func renderWithAssignment(l Literal, assignment map[string]string) string {
	s := l.Atom.Predicate
	if l.Negative {
		s = "!" + s
	}

	for _, t := range l.Atom.Terms {
		s += "," + renderTerm(t, assignment)
	}

	return s
}

func renderTerm(t Term, assignment map[string]string) string {
	switch v := t.(type) {
	case Constant:
		return "c:" + v.Symbol
	case Variable:
		// The full domain is rendered beside the canonical name, since two
		// domains may share a first letter.
		key := v.Name + "\x00" + v.Domain
		return "v:" + assignment[key] + "@" + v.Domain
	case Function:
		s := "f:" + v.Symbol + "("

		for i, a := range v.Args {
			if i > 0 {
				s += ","
			}

			s += renderTerm(a, assignment)
		}

		return s + ")"
	default:
		unreachableTerm(t)
		return ""
	}
}

func domainLetter(domain string) string {
	if domain == "" {
		return "v"
	}

	return string(domain[0])
}
