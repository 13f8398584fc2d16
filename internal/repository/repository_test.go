package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with foreign keys enforced,
// so cascade and unique-key behavior matches the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Event{},
		&models.RSVP{},
		&models.Review{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: "hashed",
		Profile:  &models.UserProfile{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createEvent(t *testing.T, db *gorm.DB, organizer *models.User, title string, isPublic bool) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:       title,
		Description: "a test event",
		OrganizerID: organizer.ID,
		Location:    "Berlin",
		StartTime:   time.Now().Add(24 * time.Hour),
		EndTime:     time.Now().Add(26 * time.Hour),
		IsPublic:    isPublic,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}
