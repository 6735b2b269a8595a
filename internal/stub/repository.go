package stub

import (
	"strings"

	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/event"
	"github.com/campuspulse/engage-go/internal/domain/feed"
	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/poll"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

type Repos struct {
	User  *UserRepo
	Form  *FormRepo
	Event *EventRepo
	Poll  *PollRepo
	Feed  *FeedRepo
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		User:  &UserRepo{db: db},
		Form:  &FormRepo{db: db},
		Event: &EventRepo{db: db},
		Poll:  &PollRepo{db: db},
		Feed:  &FeedRepo{db: db},
	}
}

type UserRepo struct {
	db *gorm.DB
}

func (r *UserRepo) FindByUsername(username string) (user.Account, error) {
	var a user.Account
	err := r.db.Where("username = ?", username).First(&a).Error
	return a, err
}

func (r *UserRepo) Save(a *user.Account) error {
	return r.db.Save(a).Error
}

// Search matches the directory search the real platform exposes: a
// case-insensitive substring match over names, email and matricule number.
func (r *UserRepo) Search(query string) ([]user.Account, error) {
	var accounts []user.Account
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(matricule_number) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("last_name asc").
		Limit(20).
		Find(&accounts).Error
	return accounts, err
}

type FormRepo struct {
	db *gorm.DB
}

func (r *FormRepo) Create(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *FormRepo) FindAll() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.\"order\" asc")
	}).Preload("Questions.Options").Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepo) FindByID(id string) (*form.Form, error) {
	var f form.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.\"order\" asc")
	}).Preload("Questions.Options").First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormRepo) Save(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *FormRepo) Delete(id string) error {
	return r.db.Delete(&form.Form{}, "id = ?", id).Error
}

// CreateSubmission stores the submission and bumps the chosen options'
// response counts in one transaction, so a failed insert leaves no tally
// behind.
func (r *FormRepo) CreateSubmission(sub *form.Submission, optionIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for _, id := range optionIDs {
			err := tx.Model(&form.Option{}).Where("id = ?", id).
				UpdateColumn("response_count", gorm.Expr("response_count + 1")).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *FormRepo) ListSubmissions(formID string) ([]form.Submission, error) {
	var subs []form.Submission
	err := r.db.Preload("Answers").Where("form_id = ?", formID).
		Order("created_at asc").Find(&subs).Error
	return subs, err
}

func (r *FormRepo) CountSubmissions(formID, userID string) (int64, error) {
	var n int64
	err := r.db.Model(&form.Submission{}).
		Where("form_id = ? AND user_id = ?", formID, userID).Count(&n).Error
	return n, err
}

type EventRepo struct {
	db *gorm.DB
}

func (r *EventRepo) Create(e *event.Event) error {
	return r.db.Create(e).Error
}

func (r *EventRepo) FindAll() ([]event.Event, error) {
	var events []event.Event
	err := r.db.Order("start_time asc").Find(&events).Error
	return events, err
}

func (r *EventRepo) FindByID(id string) (*event.Event, error) {
	var e event.Event
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) CreateRegistration(reg *event.Registration) error {
	return r.db.Create(reg).Error
}

func (r *EventRepo) CountRegistrations(eventID string) (int64, error) {
	var n int64
	err := r.db.Model(&event.Registration{}).Where("event_id = ?", eventID).Count(&n).Error
	return n, err
}

func (r *EventRepo) HasRegistration(eventID, userID string) (bool, error) {
	var n int64
	err := r.db.Model(&event.Registration{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).Count(&n).Error
	return n > 0, err
}

type PollRepo struct {
	db *gorm.DB
}

func (r *PollRepo) Create(p *poll.Poll) error {
	return r.db.Create(p).Error
}

func (r *PollRepo) FindAll() ([]poll.Poll, error) {
	var polls []poll.Poll
	err := r.db.Preload("Options").Order("created_at desc").Find(&polls).Error
	return polls, err
}

func (r *PollRepo) FindByID(id string) (*poll.Poll, error) {
	var p poll.Poll
	if err := r.db.Preload("Options").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PollRepo) IncrementVote(pollID, optionID string) error {
	result := r.db.Model(&poll.PollOption{}).
		Where("id = ? AND poll_id = ?", optionID, pollID).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type FeedRepo struct {
	db *gorm.DB
}

func (r *FeedRepo) CreatePost(p *feed.Post) error {
	return r.db.Create(p).Error
}

func (r *FeedRepo) FindPosts() ([]feed.Post, error) {
	var posts []feed.Post
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at asc")
	}).Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (r *FeedRepo) FindPostByID(id string) (*feed.Post, error) {
	var p feed.Post
	if err := r.db.Preload("Comments").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *FeedRepo) CreateComment(c *feed.Comment) error {
	return r.db.Create(c).Error
}

func (r *FeedRepo) IncrementLikes(postID string) error {
	return r.db.Model(&feed.Post{}).Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
}
