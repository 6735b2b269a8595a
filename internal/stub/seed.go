package stub

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/event"
	"github.com/campuspulse/engage-go/internal/domain/feed"
	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/poll"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

// Seed loads demo accounts, a published registration form, an event linked to
// it, a poll and a feed post, so a stubserver is usable immediately.
func Seed(db *gorm.DB) error {
	accounts := []user.Account{
		{ID: uuid.NewString(), Username: "alice", Password: "password", FirstName: "Alice", LastName: "Moreau", Email: "alice.moreau@campus.edu", MatriculeNumber: "20230001"},
		{ID: uuid.NewString(), Username: "bob", Password: "password", FirstName: "Bob", LastName: "Martin", Email: "bob.martin@campus.edu", MatriculeNumber: "20230002"},
		{ID: uuid.NewString(), Username: "carol", Password: "password", FirstName: "Carol", LastName: "Nguyen", Email: "carol.nguyen@campus.edu", MatriculeNumber: "20230003"},
		{ID: uuid.NewString(), Username: "dave", Password: "password", FirstName: "Dave", LastName: "Okafor", Email: "dave.okafor@campus.edu", MatriculeNumber: "20230004"},
		{ID: uuid.NewString(), Username: "erin", Password: "password", FirstName: "Erin", LastName: "Silva", Email: "erin.silva@campus.edu", MatriculeNumber: "20230005"},
	}
	for i := range accounts {
		if err := db.Create(&accounts[i]).Error; err != nil {
			return err
		}
	}

	hackathonForm := form.Form{
		ID:          uuid.NewString(),
		Title:       "Hackathon Registration",
		Description: "Tell us about you and your team.",
		StartDate:   time.Now().Add(-24 * time.Hour),
		EndDate:     time.Now().Add(14 * 24 * time.Hour),
		IsPublished: true,
		IsActive:    true,
	}
	levelQ := form.Question{
		ID: uuid.NewString(), FormID: hackathonForm.ID,
		Title: "Experience level", Type: form.KindMultipleChoice,
		IsRequired: true, Order: 1,
	}
	levelQ.Options = []form.Option{
		{ID: uuid.NewString(), QuestionID: levelQ.ID, OptionText: "Beginner"},
		{ID: uuid.NewString(), QuestionID: levelQ.ID, OptionText: "Intermediate"},
		{ID: uuid.NewString(), QuestionID: levelQ.ID, OptionText: "Advanced"},
	}
	dietQ := form.Question{
		ID: uuid.NewString(), FormID: hackathonForm.ID,
		Title: "Dietary restrictions", Type: form.KindShortText,
		IsRequired: false, Order: 2,
	}
	teamQ := form.Question{
		ID: uuid.NewString(), FormID: hackathonForm.ID,
		Title: "Your team", Description: "Search and pick up to 5 members.",
		Type: form.KindTeam, IsRequired: true, Order: 3,
	}
	hackathonForm.Questions = []form.Question{levelQ, dietQ, teamQ}
	if err := db.Create(&hackathonForm).Error; err != nil {
		return err
	}

	hackathon := event.Event{
		ID:                 uuid.NewString(),
		Title:              "Campus Hackathon 2026",
		Description:        "48 hours of building with your team.",
		Location:           "Building C, Atrium",
		StartTime:          time.Now().Add(21 * 24 * time.Hour),
		EndTime:            time.Now().Add(23 * 24 * time.Hour),
		Capacity:           120,
		RegistrationFormID: &hackathonForm.ID,
		IsPublished:        true,
	}
	if err := db.Create(&hackathon).Error; err != nil {
		return err
	}

	cafeteriaPoll := poll.Poll{
		ID:       uuid.NewString(),
		Question: "Which food truck should visit campus next month?",
		IsActive: true,
	}
	cafeteriaPoll.Options = []poll.PollOption{
		{ID: uuid.NewString(), PollID: cafeteriaPoll.ID, Text: "Tacos"},
		{ID: uuid.NewString(), PollID: cafeteriaPoll.ID, Text: "Ramen"},
		{ID: uuid.NewString(), PollID: cafeteriaPoll.ID, Text: "Falafel"},
	}
	if err := db.Create(&cafeteriaPoll).Error; err != nil {
		return err
	}

	welcome := feed.Post{
		ID:       uuid.NewString(),
		AuthorID: accounts[0].ID,
		Content:  "Welcome to the new semester! Registration for the hackathon is open.",
	}
	return db.Create(&welcome).Error
}
