package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/engage-go/internal/domain/form"
)

func TestLookup_KnownKinds(t *testing.T) {
	for _, kind := range Kinds() {
		meta, err := Lookup(kind)
		assert.NoError(t, err, "kind %s", kind)
		assert.Equal(t, kind, meta.Kind)
		assert.NotEmpty(t, meta.Label)
	}
}

func TestLookup_Shapes(t *testing.T) {
	tests := []struct {
		kind  form.QuestionKind
		shape AnswerShape
	}{
		{form.KindShortText, ShapeScalar},
		{form.KindLongText, ShapeScalar},
		{form.KindEmail, ShapeScalar},
		{form.KindNumber, ShapeScalar},
		{form.KindMultipleChoice, ShapeScalar},
		{form.KindScale, ShapeScalar},
		{form.KindDropdown, ShapeScalar},
		{form.KindCheckboxes, ShapeOptionList},
		{form.KindTeam, ShapeTeamList},
	}
	for _, tc := range tests {
		meta, err := Lookup(tc.kind)
		assert.NoError(t, err)
		assert.Equal(t, tc.shape, meta.Shape, "kind %s", tc.kind)
	}
}

func TestLookup_RequiresOptions(t *testing.T) {
	withOptions := map[form.QuestionKind]bool{
		form.KindMultipleChoice: true,
		form.KindCheckboxes:     true,
		form.KindScale:          true,
		form.KindDropdown:       true,
	}
	for _, kind := range Kinds() {
		meta, err := Lookup(kind)
		assert.NoError(t, err)
		assert.Equal(t, withOptions[kind], meta.RequiresOptions, "kind %s", kind)
	}
}

func TestLookup_UnknownKind(t *testing.T) {
	_, err := Lookup("matrix_grid")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLookupOrFallback_UnknownKindDegradesToScalar(t *testing.T) {
	meta := LookupOrFallback("matrix_grid")
	assert.Equal(t, form.QuestionKind("matrix_grid"), meta.Kind)
	assert.Equal(t, ShapeScalar, meta.Shape)
	assert.False(t, meta.RequiresOptions)
}
