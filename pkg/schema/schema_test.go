package schema_test

import (
	"testing"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestModesAtNilForUndeclaredPosition(t *testing.T) {
	sig := formula.NewSignature("p", 2)
	modes := schema.ModeDeclarations{
		sig: {{Constant: true}},
	}

	assert.NotNil(t, modes.At(sig, 0))
	assert.Nil(t, modes.At(sig, 1))
	assert.Nil(t, modes.At(formula.NewSignature("q", 1), 0))
}

func TestEvidenceDecodeMissingSignature(t *testing.T) {
	ev := schema.Evidence{}
	_, present, err := ev.Decode(formula.NewSignature("p", 1), schema.AtomID(1))

	assert.False(t, present)
	assert.NoError(t, err)
}

func TestConstantsMapLookup(t *testing.T) {
	cm := schema.ConstantsMap{"person": {"ann", "bob"}}

	present := cm.Lookup("person")
	assert.True(t, present.HasValue())
	assert.Equal(t, schema.ConstantsSet{"ann", "bob"}, present.Unwrap())

	absent := cm.Lookup("location")
	assert.True(t, absent.IsEmpty())
}

func TestMapEvidenceDBDecode(t *testing.T) {
	db := schema.MapEvidenceDB{1: {"alice"}}

	consts, err := db.Decode(1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice"}, consts)

	_, err = db.Decode(2)
	assert.Error(t, err)
}
