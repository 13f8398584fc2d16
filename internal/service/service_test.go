package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingDispatcher captures notification hand-offs so tests can assert
// they happened without any real delivery.
type recordingDispatcher struct {
	mu      sync.Mutex
	rsvps   []string
	reviews []string
}

func (d *recordingDispatcher) RSVPCreated(organizerEmail, eventTitle, userName, status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rsvps = append(d.rsvps, fmt.Sprintf("%s:%s:%s:%s", organizerEmail, eventTitle, userName, status))
}

func (d *recordingDispatcher) ReviewCreated(organizerEmail, eventTitle, userName string, rating int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reviews = append(d.reviews, fmt.Sprintf("%s:%s:%s:%d", organizerEmail, eventTitle, userName, rating))
}

func (d *recordingDispatcher) rsvpCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rsvps)
}

func (d *recordingDispatcher) reviewCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.reviews)
}

type testEnv struct {
	db         *gorm.DB
	dispatcher *recordingDispatcher
	auth       *AuthService
	events     *EventService
	rsvps      *RSVPService
	reviews    *ReviewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_fk=1", t.Name())
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

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	dispatcher := &recordingDispatcher{}

	return &testEnv{
		db:         db,
		dispatcher: dispatcher,
		auth:       NewAuthService(userRepo),
		events:     NewEventService(eventRepo),
		rsvps:      NewRSVPService(rsvpRepo, eventRepo, dispatcher),
		reviews:    NewReviewService(reviewRepo, eventRepo, dispatcher),
	}
}

func (env *testEnv) registerUser(t *testing.T, username string) (*models.User, *models.Actor) {
	t.Helper()
	resp, err := env.auth.Register(models.RegisterRequest{
		Username:  username,
		Email:     username + "@test.com",
		Password:  "supersecret",
		Password2: "supersecret",
	})
	require.NoError(t, err)

	actor := &models.Actor{
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}
	return &resp.User, actor
}

func (env *testEnv) createEvent(t *testing.T, actor *models.Actor, title string, isPublic bool) *models.EventResponse {
	t.Helper()
	event, err := env.events.CreateEvent(actor, models.EventRequest{
		Title:     title,
		Location:  "Berlin",
		StartTime: time.Now().Add(24 * time.Hour),
		EndTime:   time.Now().Add(26 * time.Hour),
		IsPublic:  &isPublic,
	})
	require.NoError(t, err)
	return event
}
