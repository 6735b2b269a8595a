package event

import "time"

type Event struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Capacity    int       `json:"capacity"`
	// When set, registering for the event requires a submission of this form
	// first; the registration carries the resulting submission id.
	RegistrationFormID *string   `json:"registrationFormId,omitempty"`
	IsPublished        bool      `json:"isPublished"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Registration struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	EventID          string    `json:"eventId" gorm:"index"`
	UserID           string    `json:"userId" gorm:"index"`
	FormSubmissionID *string   `json:"formSubmissionId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
