// Package stub is an in-memory stand-in for the campus engagement platform
// API. It implements the endpoints the SDK consumes with just enough
// behavior to develop and test front-ends against; it is not the real
// platform and makes no attempt at business-logic fidelity.
package stub

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campuspulse/engage-go/internal/domain/event"
	"github.com/campuspulse/engage-go/internal/domain/feed"
	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/poll"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

// OpenMemory opens a fresh in-memory SQLite database with the stub schema.
// Each call gets its own database, so tests stay isolated.
func OpenMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:stub-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open opens (or creates) a file-backed stub database, for stubserver runs
// that should keep state across restarts.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.Account{},
		&form.Form{},
		&form.Question{},
		&form.Option{},
		&form.Submission{},
		&form.StoredAnswer{},
		&event.Event{},
		&event.Registration{},
		&poll.Poll{},
		&poll.PollOption{},
		&feed.Post{},
		&feed.Comment{},
	)
}
