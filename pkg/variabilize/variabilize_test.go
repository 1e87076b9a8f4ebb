package variabilize_test

import (
	"testing"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/mlnforge/clausecore/pkg/variabilize"
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

func TestVariabilizeReusesVariableForRepeatedConstant(t *testing.T) {
	path := schema.HPath{
		{AtomID: 1, Signature: friendSig},
		{AtomID: 2, Signature: smokesSig},
	}

	result, err := variabilize.Variabilize(path, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), variabilize.CNFOrientation)
	require.NoError(t, err)

	require.Len(t, result.BodyLiterals, 1)
	assert.True(t, result.BodyLiterals[0].Negative)

	bobInBody := result.BodyLiterals[0].Atom.Terms[1]
	bobInHead := result.PositiveHead.Atom.Terms[0]
	assert.Equal(t, bobInBody, bobInHead)
}

func TestVariabilizeSingleElementPathHasEmptyBody(t *testing.T) {
	path := schema.HPath{{AtomID: 2, Signature: smokesSig}}

	result, err := variabilize.Variabilize(path, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), variabilize.CNFOrientation)
	require.NoError(t, err)

	assert.Empty(t, result.BodyLiterals)
	assert.False(t, result.PositiveHead.Negative)
}

func TestVariabilizeConstantPlacemarkerSuppressedForHead(t *testing.T) {
	modes := schema.ModeDeclarations{
		smokesSig: {{Constant: true}},
	}
	path := schema.HPath{{AtomID: 2, Signature: smokesSig}}

	result, err := variabilize.Variabilize(path, baseSchema(), modes, baseEvidence(), variabilize.CNFOrientation)
	require.NoError(t, err)

	_, isVar := result.PositiveHead.Atom.Terms[0].(formula.Variable)
	assert.True(t, isVar, "head argument must be variabilized even when marked constant")
}

func TestVariabilizeConstantPlacemarkerHonoredForBody(t *testing.T) {
	modes := schema.ModeDeclarations{
		friendSig: {{Constant: true}, {}},
	}
	path := schema.HPath{
		{AtomID: 1, Signature: friendSig},
		{AtomID: 2, Signature: smokesSig},
	}

	result, err := variabilize.Variabilize(path, baseSchema(), modes, baseEvidence(), variabilize.CNFOrientation)
	require.NoError(t, err)

	ann := result.BodyLiterals[0].Atom.Terms[0]
	_, isConst := ann.(formula.Constant)
	assert.True(t, isConst)
}

func TestVariabilizeDefiniteOrientationHeadIsPathsFirstElement(t *testing.T) {
	path := schema.HPath{
		{AtomID: 1, Signature: friendSig},
		{AtomID: 2, Signature: smokesSig},
	}

	result, err := variabilize.Variabilize(path, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), variabilize.DefiniteOrientation)
	require.NoError(t, err)

	assert.Equal(t, friendSig.Predicate, result.PositiveHead.Atom.Predicate)
	require.Len(t, result.BodyLiterals, 1)
	assert.Equal(t, smokesSig.Predicate, result.BodyLiterals[0].Atom.Predicate)
}

func TestVariabilizeMissingSchema(t *testing.T) {
	path := schema.HPath{{AtomID: 99, Signature: formula.NewSignature("unknown", 1)}}

	_, err := variabilize.Variabilize(path, schema.PredicateSchema{}, schema.ModeDeclarations{}, schema.Evidence{}, variabilize.CNFOrientation)
	require.Error(t, err)

	var missing *variabilize.MissingSchema
	assert.ErrorAs(t, err, &missing)
}

func TestVariabilizeEvidenceDecodeError(t *testing.T) {
	path := schema.HPath{{AtomID: 404, Signature: smokesSig}}

	_, err := variabilize.Variabilize(path, baseSchema(), schema.ModeDeclarations{}, baseEvidence(), variabilize.CNFOrientation)
	require.Error(t, err)

	var decErr *variabilize.EvidenceDecodeError
	assert.ErrorAs(t, err, &decErr)
}
