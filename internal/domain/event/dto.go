package event

type RegisterInput struct {
	EventID          string `json:"eventId" binding:"required"`
	FormSubmissionID string `json:"formSubmissionId,omitempty"`
}
