package form

import "time"

// QuestionKind selects both the input widget a front-end renders for a
// question and the serialization rule applied when a response is submitted.
type QuestionKind string

const (
	KindShortText      QuestionKind = "short_text"
	KindLongText       QuestionKind = "long_text"
	KindEmail          QuestionKind = "email"
	KindNumber         QuestionKind = "number"
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindCheckboxes     QuestionKind = "checkboxes"
	KindScale          QuestionKind = "scale"
	KindDropdown       QuestionKind = "dropdown"
	KindTeam           QuestionKind = "team"
)

// Form is owned entirely server-side; clients never mutate one directly,
// only issue create/update/publish/delete/submit commands.
type Form struct {
	ID                     string     `json:"id" gorm:"primaryKey"`
	Title                  string     `json:"title" gorm:"not null"`
	Description            string     `json:"description" gorm:"type:text"`
	StartDate              time.Time  `json:"startDate"`
	EndDate                time.Time  `json:"endDate"`
	IsPublished            bool       `json:"isPublished"`
	IsActive               bool       `json:"isActive" gorm:"default:true"`
	AllowMultipleResponses bool       `json:"allowMultipleResponses"`
	TargetAudience         string     `json:"targetAudience"`
	Questions              []Question `json:"questions" gorm:"foreignKey:FormID"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

type Question struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	FormID      string       `json:"formId" gorm:"index"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	Type        QuestionKind `json:"type" gorm:"not null"`
	IsRequired  bool         `json:"isRequired"`
	Order       int          `json:"order"`
	// Populated only for kinds whose widget presents fixed options. The
	// >=2 options rule is enforced at form-creation time, not response time.
	Options []Option `json:"options" gorm:"foreignKey:QuestionID"`
}

// Option is immutable once its form is published.
type Option struct {
	ID            string `json:"id" gorm:"primaryKey"`
	QuestionID    string `json:"questionId" gorm:"index"`
	OptionText    string `json:"optionText" gorm:"not null"`
	ResponseCount int64  `json:"responseCount,omitempty"`
}

// Submission is the stored result of one response to a published form.
type Submission struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	FormID    string         `json:"formId" gorm:"index"`
	UserID    string         `json:"userId" gorm:"index"`
	Answers   []StoredAnswer `json:"answers" gorm:"foreignKey:SubmissionID"`
	CreatedAt time.Time      `json:"createdAt"`
}

// StoredAnswer is one persisted SubmissionAnswer row. TeamMemberIDs is kept
// comma-joined so the stub can round-trip it without a join table.
type StoredAnswer struct {
	ID            string `json:"id" gorm:"primaryKey"`
	SubmissionID  string `json:"submissionId" gorm:"index"`
	QuestionID    string `json:"questionId"`
	OptionID      string `json:"optionId,omitempty"`
	ResponseValue string `json:"responseValue,omitempty" gorm:"type:text"`
	TeamMemberIDs string `json:"teamMemberIds,omitempty"`
}
