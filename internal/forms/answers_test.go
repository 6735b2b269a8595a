package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

func sampleQuestions() []form.Question {
	return []form.Question{
		{ID: "q1", Title: "Name", Type: form.KindShortText},
		{ID: "q2", Title: "Interests", Type: form.KindCheckboxes, Options: []form.Option{{ID: "x"}, {ID: "y"}}},
		{ID: "q3", Title: "Team", Type: form.KindTeam},
	}
}

func TestInitialize_ShapesPerKind(t *testing.T) {
	answers := NewAnswerSet()
	answers.Initialize(sampleQuestions())

	a1, ok := answers.Get("q1")
	assert.True(t, ok)
	assert.Equal(t, ShapeScalar, a1.Shape)
	assert.Equal(t, "", a1.Value)
	assert.True(t, a1.Empty())

	a2, _ := answers.Get("q2")
	assert.Equal(t, ShapeOptionList, a2.Shape)
	assert.Empty(t, a2.Options)
	assert.True(t, a2.Empty())

	a3, _ := answers.Get("q3")
	assert.Equal(t, ShapeTeamList, a3.Shape)
	assert.Empty(t, a3.Team)
	assert.True(t, a3.Empty())
}

func TestInitialize_DoesNotDiscardExistingInput(t *testing.T) {
	questions := sampleQuestions()
	answers := NewAnswerSet()
	answers.Initialize(questions)

	answers.SetScalar("q1", "Dana")
	answers.ToggleOption("q2", "x")

	// A form reload mid-edit re-runs Initialize; typed answers must survive.
	answers.Initialize(questions)

	a1, _ := answers.Get("q1")
	assert.Equal(t, "Dana", a1.Value)
	a2, _ := answers.Get("q2")
	assert.Equal(t, []string{"x"}, a2.Options)
}

func TestSetScalar_Overwrites(t *testing.T) {
	answers := NewAnswerSet()
	answers.SetScalar("q1", "first")
	answers.SetScalar("q1", "second")

	a, _ := answers.Get("q1")
	assert.Equal(t, "second", a.Value)
}

func TestToggleOption_SymmetricAddRemove(t *testing.T) {
	answers := NewAnswerSet()

	answers.ToggleOption("q2", "x")
	a, _ := answers.Get("q2")
	assert.Equal(t, []string{"x"}, a.Options)

	answers.ToggleOption("q2", "y")
	a, _ = answers.Get("q2")
	assert.Equal(t, []string{"x", "y"}, a.Options)

	// Double toggle returns to the original single-item state, no duplicate.
	answers.ToggleOption("q2", "y")
	answers.ToggleOption("q2", "y")
	a, _ = answers.Get("q2")
	assert.Equal(t, []string{"x", "y"}, a.Options)

	answers.ToggleOption("q2", "x")
	a, _ = answers.Get("q2")
	assert.Equal(t, []string{"y"}, a.Options)
}

func TestSetTeam_OverwritesWholeList(t *testing.T) {
	answers := NewAnswerSet()
	answers.SetTeam("q3", []user.TeamMember{{ID: "u1"}, {ID: "u2"}})
	answers.SetTeam("q3", []user.TeamMember{{ID: "u3"}})

	a, _ := answers.Get("q3")
	assert.Len(t, a.Team, 1)
	assert.Equal(t, "u3", a.Team[0].ID)
}
