package user

import "time"

// TeamMember is the answer-only entity backing team questions: fetched
// transiently via directory search, held in local answer state, discarded on
// submit or cancel. It is never persisted by the client.
type TeamMember struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	MatriculeNumber string `json:"matriculeNumber"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

func (m TeamMember) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Account is a platform user record as the stub stores it. Passwords are
// plaintext demo credentials; real credential handling is server business
// logic outside this repository.
type Account struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	MatriculeNumber string    `json:"matriculeNumber"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AsTeamMember projects an account into the directory-search shape.
func (a Account) AsTeamMember() TeamMember {
	return TeamMember{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		MatriculeNumber: a.MatriculeNumber,
		ProfileImageURL: a.ProfileImageURL,
	}
}
