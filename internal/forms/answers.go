package forms

import (
	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

// Answer holds the in-progress value for one question. Which field is live
// follows the kind's AnswerShape; the zero value is a valid empty answer.
type Answer struct {
	Shape   AnswerShape
	Value   string
	Options []string
	Team    []user.TeamMember
}

// Empty reports whether the answer is still at its initial value.
func (a Answer) Empty() bool {
	switch a.Shape {
	case ShapeOptionList:
		return len(a.Options) == 0
	case ShapeTeamList:
		return len(a.Team) == 0
	default:
		return a.Value == ""
	}
}

// AnswerSet is the answer state for one open form instance. It is local to a
// single user interaction and never persisted: closing the form discards it.
type AnswerSet struct {
	answers map[string]Answer
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{answers: make(map[string]Answer)}
}

// Initialize seeds an empty answer per question: an empty list for
// checkboxes/team, an empty string otherwise. Calling it again on a set that
// already holds input is a no-op, so a form reload mid-edit cannot wipe
// answers the user has typed.
func (s *AnswerSet) Initialize(questions []form.Question) {
	for _, q := range questions {
		if existing, ok := s.answers[q.ID]; ok && !existing.Empty() {
			continue
		}
		meta := LookupOrFallback(q.Type)
		s.answers[q.ID] = Answer{Shape: meta.Shape}
	}
}

// SetScalar overwrites a string answer. No validation happens at write time;
// required-field checks run at payload build.
func (s *AnswerSet) SetScalar(questionID, value string) {
	a := s.answers[questionID]
	a.Shape = ShapeScalar
	a.Value = value
	s.answers[questionID] = a
}

// ToggleOption adds optionID to a checkboxes answer, or removes it when
// already selected.
func (s *AnswerSet) ToggleOption(questionID, optionID string) {
	a := s.answers[questionID]
	a.Shape = ShapeOptionList
	for i, id := range a.Options {
		if id == optionID {
			a.Options = append(a.Options[:i], a.Options[i+1:]...)
			s.answers[questionID] = a
			return
		}
	}
	a.Options = append(a.Options, optionID)
	s.answers[questionID] = a
}

// SetTeam overwrites the whole team-member list. Bounding to the maximum team
// size is the resolver's job; the store accepts what it is given.
func (s *AnswerSet) SetTeam(questionID string, members []user.TeamMember) {
	a := s.answers[questionID]
	a.Shape = ShapeTeamList
	a.Team = members
	s.answers[questionID] = a
}

// Get returns the current answer for a question.
func (s *AnswerSet) Get(questionID string) (Answer, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}

// Len reports how many questions have an entry (answered or initialized).
func (s *AnswerSet) Len() int {
	return len(s.answers)
}
