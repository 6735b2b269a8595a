package form

// SubmissionAnswer is the wire record sent per answered question (or per
// selected option for checkboxes). Exactly one of OptionID, ResponseValue or
// TeamMemberIDs is populated, chosen by the question kind at build time.
type SubmissionAnswer struct {
	QuestionID    string   `json:"questionId"`
	OptionID      string   `json:"optionId,omitempty"`
	ResponseValue string   `json:"responseValue,omitempty"`
	TeamMemberIDs []string `json:"teamMemberIds,omitempty"`
}

type SubmitFormInput struct {
	Answers []SubmissionAnswer `json:"answers" binding:"required"`
}

// SubmitFormResult carries the submission id that dependent actions (event
// registration linking) key on.
type SubmitFormResult struct {
	ID string `json:"id"`
}

type CreateOptionDTO struct {
	OptionText string `json:"optionText" binding:"required"`
}

type CreateQuestionDTO struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Type        QuestionKind      `json:"type" binding:"required"`
	IsRequired  bool              `json:"isRequired"`
	Order       int               `json:"order"`
	Options     []CreateOptionDTO `json:"options" binding:"omitempty,dive"`
}

type CreateFormDTO struct {
	Title                  string              `json:"title" binding:"required"`
	Description            string              `json:"description"`
	StartDate              string              `json:"startDate"`
	EndDate                string              `json:"endDate"`
	AllowMultipleResponses bool                `json:"allowMultipleResponses"`
	TargetAudience         string              `json:"targetAudience"`
	Questions              []CreateQuestionDTO `json:"questions" binding:"omitempty,dive"`
}

type UpdateFormDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
