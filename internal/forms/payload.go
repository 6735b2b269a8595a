package forms

import (
	"fmt"

	"github.com/campuspulse/engage-go/internal/domain/form"
)

// ValidationError reports the first required question left unanswered.
// Validation is fail-fast: building stops at the first violation and nothing
// is emitted for later questions.
type ValidationError struct {
	QuestionID    string
	QuestionTitle string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please answer the required question %q", e.QuestionTitle)
}

// BuildPayload validates required fields and flattens the answer set into the
// wire records the submit endpoint expects, walking questions in form order.
//
// The serialization dispatch order is load-bearing: team answers are checked
// before generic option lists so a team answer never fans out as checkboxes
// would, and option lists fan out to one record per selected id rather than a
// single record carrying an array.
func BuildPayload(questions []form.Question, answers *AnswerSet) ([]form.SubmissionAnswer, error) {
	payload := make([]form.SubmissionAnswer, 0, len(questions))

	for _, q := range questions {
		a, _ := answers.Get(q.ID)

		if q.IsRequired && a.Empty() {
			return nil, &ValidationError{QuestionID: q.ID, QuestionTitle: q.Title}
		}

		switch {
		case q.Type == form.KindTeam && len(a.Team) > 0:
			ids := make([]string, len(a.Team))
			for i, m := range a.Team {
				ids[i] = m.ID
			}
			payload = append(payload, form.SubmissionAnswer{QuestionID: q.ID, TeamMemberIDs: ids})

		case len(a.Options) > 0:
			for _, optionID := range a.Options {
				payload = append(payload, form.SubmissionAnswer{QuestionID: q.ID, OptionID: optionID})
			}

		case q.Type == form.KindMultipleChoice || q.Type == form.KindDropdown:
			if a.Value != "" {
				payload = append(payload, form.SubmissionAnswer{QuestionID: q.ID, OptionID: a.Value})
			}

		default:
			// Questions left at their initial empty value are silently
			// omitted; the server receives no marker for skipped questions.
			if a.Value != "" {
				payload = append(payload, form.SubmissionAnswer{QuestionID: q.ID, ResponseValue: a.Value})
			}
		}
	}

	return payload, nil
}
