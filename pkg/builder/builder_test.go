package builder_test

import (
	"errors"
	"testing"

	"github.com/mlnforge/clausecore/pkg/builder"
	"github.com/mlnforge/clausecore/pkg/clause"
	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var friendSig = formula.NewSignature("friend", 2)
var smokesSig = formula.NewSignature("smokes", 1)

func baseSchema() schema.PredicateSchema {
	return schema.PredicateSchema{
		friendSig: {"person", "person"},
		smokesSig: {"person"},
	}
}

func baseEvidence() schema.Evidence {
	return schema.Evidence{
		friendSig: schema.MapEvidenceDB{1: {"ann", "bob"}},
		smokesSig: schema.MapEvidenceDB{2: {"bob"}},
	}
}

func onePath() []schema.HPath {
	return []schema.HPath{
		{
			{AtomID: 1, Signature: friendSig},
			{AtomID: 2, Signature: smokesSig},
		},
	}
}

func TestClausesHornKindNegatesHead(t *testing.T) {
	out, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Horn, nil, builder.Options{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0]
	require.Len(t, c.Literals, 2)
	assert.True(t, c.Literals[0].Negative)
	assert.True(t, c.Literals[1].Negative)
}

func TestClausesConjunctionKindKeepsHeadPositive(t *testing.T) {
	out, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Conjunction, nil, builder.Options{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0]
	require.Len(t, c.Literals, 2)
	assert.True(t, c.Literals[0].Negative)
	assert.False(t, c.Literals[1].Negative)
}

func TestClausesBothKindProducesTwoClausesPerPath(t *testing.T) {
	out, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Both, nil, builder.Options{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestClausesDedupesAgainstPreexisting(t *testing.T) {
	preexisting, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Horn, nil, builder.Options{})
	require.NoError(t, err)

	pre := clause.NewSet(0)
	pre.AddAll(preexisting)

	out, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Horn, pre, builder.Options{})
	require.NoError(t, err)
	assert.Empty(t, out, "a clause already present in preexisting must not be re-emitted")
}

func TestClausesRequireDistinctHeadTermsRejectsRepeatedTerm(t *testing.T) {
	modes := schema.ModeDeclarations{
		friendSig: {{Constant: true}, {Constant: true}},
	}
	ev := schema.Evidence{
		friendSig: schema.MapEvidenceDB{1: {"ann", "ann"}},
	}
	path := []schema.HPath{{{AtomID: 1, Signature: friendSig}}}

	opts := builder.Options{RequireDistinctHeadTerms: true}
	_, err := builder.Clauses(path, baseSchema(), modes, ev, clause.Horn, nil, opts)
	require.Error(t, err)

	var nonFluent *builder.NonFluentHeadError
	assert.ErrorAs(t, err, &nonFluent)
}

func TestClausesRequireDistinctHeadTermsAllowsDistinctTerms(t *testing.T) {
	opts := builder.Options{RequireDistinctHeadTerms: true}
	_, err := builder.Clauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Horn, nil, opts)
	assert.NoError(t, err)
}

func TestClausesPropagatesVariabilizeErrors(t *testing.T) {
	path := []schema.HPath{{{AtomID: 1, Signature: formula.NewSignature("unknown", 1)}}}

	_, err := builder.Clauses(path, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), clause.Horn, nil, builder.Options{})
	require.Error(t, err)
}

type stubIntroducer struct {
	calls int
	fn    func([]formula.WeightedDefiniteClause) ([]formula.WeightedDefiniteClause, error)
}

func (s *stubIntroducer) IntroduceFunctions(cs []formula.WeightedDefiniteClause) ([]formula.WeightedDefiniteClause, error) {
	s.calls++
	if s.fn != nil {
		return s.fn(cs)
	}

	return cs, nil
}

func TestDefiniteClausesBuildsHeadFromPathsFirstElement(t *testing.T) {
	introducer := &stubIntroducer{}

	out, err := builder.DefiniteClauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), nil, introducer, builder.Options{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, friendSig.Predicate, out[0].Clause.Head.Predicate)
	assert.Equal(t, formula.Weight(1.0), out[0].Weight)
	assert.Equal(t, 1, introducer.calls)
}

func TestDefiniteClausesCallsIntroducerExactlyOnceAcrossAllPaths(t *testing.T) {
	paths := append(onePath(), onePath()...)
	introducer := &stubIntroducer{}

	_, err := builder.DefiniteClauses(paths, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), nil, introducer, builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, introducer.calls)
}

func TestDefiniteClausesPropagatesIntroducerError(t *testing.T) {
	wantErr := errors.New("introducer failed")
	introducer := &stubIntroducer{fn: func(cs []formula.WeightedDefiniteClause) ([]formula.WeightedDefiniteClause, error) {
		return nil, wantErr
	}}

	_, err := builder.DefiniteClauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), nil, introducer, builder.Options{})
	assert.ErrorIs(t, err, wantErr)
}

func flattenBodyLiterals(c formula.Construct) []formula.Literal {
	switch f := c.(type) {
	case formula.And:
		return append(flattenBodyLiterals(f.Left), flattenBodyLiterals(f.Right)...)
	case formula.Atomic:
		return []formula.Literal{formula.Positive(f.Atom)}
	case formula.Lit:
		return []formula.Literal{f.Literal}
	default:
		panic("unreachable body shape in test")
	}
}

func TestDefiniteClausesDedupesAgainstPreexisting(t *testing.T) {
	introducer := &stubIntroducer{}

	first, err := builder.DefiniteClauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), nil, introducer, builder.Options{})
	require.NoError(t, err)

	pre := clause.NewSet(0)
	for _, wdc := range first {
		lits := append(flattenBodyLiterals(wdc.Clause.Body), formula.Positive(wdc.Clause.Head))
		pre.Add(clause.NewClause(wdc.Weight, lits...))
	}

	out, err := builder.DefiniteClauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), pre, &stubIntroducer{}, builder.Options{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDefiniteClausesRequireDistinctHeadTermsRejectsRepeatedTerm(t *testing.T) {
	modes := schema.ModeDeclarations{
		friendSig: {{Constant: true}, {Constant: true}},
	}
	ev := schema.Evidence{
		friendSig: schema.MapEvidenceDB{1: {"ann", "ann"}},
		smokesSig: schema.MapEvidenceDB{2: {"bob"}},
	}
	path := []schema.HPath{{
		{AtomID: 1, Signature: friendSig},
		{AtomID: 2, Signature: smokesSig},
	}}

	opts := builder.Options{RequireDistinctHeadTerms: true}
	_, err := builder.DefiniteClauses(path, baseSchema(), modes, ev, nil, &stubIntroducer{}, opts)
	require.Error(t, err)

	var nonFluent *builder.NonFluentHeadError
	assert.ErrorAs(t, err, &nonFluent)
}

func TestDefiniteClausesAllowsNilIntroducer(t *testing.T) {
	out, err := builder.DefiniteClauses(onePath(), baseSchema(), schema.ModeDeclarations{}, baseEvidence(), nil, nil, builder.Options{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
