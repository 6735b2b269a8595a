// Package forms is the shared dynamic-form engine: question metadata lookup,
// in-progress answer state, team member search, and submission payload
// assembly. The response page, the event-registration flow and the forms-list
// surface are all thin callers of this package.
package forms

import (
	"errors"
	"fmt"
	"log"

	"github.com/campuspulse/engage-go/internal/domain/form"
)

var ErrUnknownKind = errors.New("unknown question kind")

// AnswerShape is the in-memory answer representation a kind initializes to.
type AnswerShape int

const (
	ShapeScalar AnswerShape = iota // single string value
	ShapeOptionList                // list of selected option ids
	ShapeTeamList                  // list of selected team members
)

// Meta is the rendering metadata for one question kind.
type Meta struct {
	Kind            form.QuestionKind
	Label           string
	RequiresOptions bool
	Shape           AnswerShape
}

var registry = map[form.QuestionKind]Meta{
	form.KindShortText:      {Kind: form.KindShortText, Label: "Short answer", RequiresOptions: false, Shape: ShapeScalar},
	form.KindLongText:       {Kind: form.KindLongText, Label: "Paragraph", RequiresOptions: false, Shape: ShapeScalar},
	form.KindEmail:          {Kind: form.KindEmail, Label: "Email", RequiresOptions: false, Shape: ShapeScalar},
	form.KindNumber:         {Kind: form.KindNumber, Label: "Number", RequiresOptions: false, Shape: ShapeScalar},
	form.KindMultipleChoice: {Kind: form.KindMultipleChoice, Label: "Multiple choice", RequiresOptions: true, Shape: ShapeScalar},
	form.KindCheckboxes:     {Kind: form.KindCheckboxes, Label: "Checkboxes", RequiresOptions: true, Shape: ShapeOptionList},
	form.KindScale:          {Kind: form.KindScale, Label: "Scale", RequiresOptions: true, Shape: ShapeScalar},
	form.KindDropdown:       {Kind: form.KindDropdown, Label: "Dropdown", RequiresOptions: true, Shape: ShapeScalar},
	form.KindTeam:           {Kind: form.KindTeam, Label: "Team", RequiresOptions: false, Shape: ShapeTeamList},
}

// Lookup returns the metadata for kind, or ErrUnknownKind for values the
// server sends that this client does not know.
func Lookup(kind form.QuestionKind) (Meta, error) {
	meta, ok := registry[kind]
	if !ok {
		return Meta{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return meta, nil
}

// LookupOrFallback never fails: unknown kinds degrade to the short-text
// metadata so a form with a newer question kind still renders, but the
// degradation is logged instead of being silent.
func LookupOrFallback(kind form.QuestionKind) Meta {
	meta, err := Lookup(kind)
	if err != nil {
		log.Printf("Warning: %v, rendering as %s", err, form.KindShortText)
		fallback := registry[form.KindShortText]
		fallback.Kind = kind
		return fallback
	}
	return meta
}

// Kinds lists the known question kinds in display order.
func Kinds() []form.QuestionKind {
	return []form.QuestionKind{
		form.KindShortText,
		form.KindLongText,
		form.KindEmail,
		form.KindNumber,
		form.KindMultipleChoice,
		form.KindCheckboxes,
		form.KindScale,
		form.KindDropdown,
		form.KindTeam,
	}
}
