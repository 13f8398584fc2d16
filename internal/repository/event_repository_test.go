package repository

import (
	"testing"
	"time"

	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleAnonymousSeesOnlyPublic(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")
	createEvent(t, db, alice, "Public meetup", true)
	createEvent(t, db, alice, "Private dinner", false)

	events, err := repo.ListVisible(nil, models.EventListQuery{})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Public meetup", events[0].Title)
}

func TestListVisibleIncludesOrganizedAndRSVPdPrivates(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	public := createEvent(t, db, alice, "Public meetup", true)
	ownPrivate := createEvent(t, db, bob, "Bob's private", false)
	rsvpPrivate := createEvent(t, db, alice, "Alice's private", false)
	createEvent(t, db, carol, "Carol's private", false)

	require.NoError(t, db.Create(&models.RSVP{
		EventID: rsvpPrivate.ID,
		UserID:  bob.ID,
		Status:  models.RSVPGoing,
	}).Error)

	actor := &models.Actor{UserID: bob.ID, Username: bob.Username}
	events, err := repo.ListVisible(actor, models.EventListQuery{})
	require.NoError(t, err)

	ids := make(map[uint]int)
	for _, e := range events {
		ids[e.ID]++
	}
	assert.Len(t, events, 3)
	assert.Equal(t, 1, ids[public.ID])
	assert.Equal(t, 1, ids[ownPrivate.ID])
	assert.Equal(t, 1, ids[rsvpPrivate.ID])
}

func TestListVisibleDefaultOrderingIsStartTimeDesc(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")

	early := &models.Event{
		Title: "Early", OrganizerID: alice.ID, IsPublic: true,
		StartTime: time.Now().Add(1 * time.Hour), EndTime: time.Now().Add(2 * time.Hour),
	}
	late := &models.Event{
		Title: "Late", OrganizerID: alice.ID, IsPublic: true,
		StartTime: time.Now().Add(10 * time.Hour), EndTime: time.Now().Add(11 * time.Hour),
	}
	require.NoError(t, db.Create(early).Error)
	require.NoError(t, db.Create(late).Error)

	events, err := repo.ListVisible(nil, models.EventListQuery{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Late", events[0].Title)
	assert.Equal(t, "Early", events[1].Title)

	events, err = repo.ListVisible(nil, models.EventListQuery{Ordering: "start_time"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
}

func TestListVisibleFiltersAndSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")

	berlin := createEvent(t, db, alice, "Go meetup", true)
	other := &models.Event{
		Title: "Rust workshop", Description: "systems programming", OrganizerID: alice.ID,
		Location: "Hamburg", IsPublic: true,
		StartTime: time.Now().Add(time.Hour), EndTime: time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, db.Create(other).Error)

	events, err := repo.ListVisible(nil, models.EventListQuery{Location: "Berlin"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, berlin.ID, events[0].ID)

	events, err = repo.ListVisible(nil, models.EventListQuery{Search: "rust"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, other.ID, events[0].ID)

	events, err = repo.ListVisible(nil, models.EventListQuery{Search: "systems"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, other.ID, events[0].ID)
}

func TestCreateRejectsInvertedTimes(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")

	_, err := repo.Create(&models.Event{
		Title:       "Backwards",
		OrganizerID: alice.ID,
		StartTime:   time.Now().Add(2 * time.Hour),
		EndTime:     time.Now().Add(1 * time.Hour),
		IsPublic:    true,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Event{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteEventCascadesToReactions(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	event := createEvent(t, db, alice, "Doomed", true)

	require.NoError(t, db.Create(&models.RSVP{EventID: event.ID, UserID: bob.ID, Status: models.RSVPGoing}).Error)
	require.NoError(t, db.Create(&models.Review{EventID: event.ID, UserID: bob.ID, Rating: 4, Comment: "nice"}).Error)

	require.NoError(t, repo.Delete(event.ID))

	var rsvps, reviews int64
	require.NoError(t, db.Model(&models.RSVP{}).Where("event_id = ?", event.ID).Count(&rsvps).Error)
	require.NoError(t, db.Model(&models.Review{}).Where("event_id = ?", event.ID).Count(&reviews).Error)
	assert.Zero(t, rsvps)
	assert.Zero(t, reviews)
}

func TestDeleteUserCascadesToEventsAndProfile(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	event := createEvent(t, db, alice, "Alice's event", true)
	require.NoError(t, db.Create(&models.RSVP{EventID: event.ID, UserID: bob.ID, Status: models.RSVPMaybe}).Error)

	require.NoError(t, userRepo.Delete(alice.ID))

	var events, rsvps, profiles int64
	require.NoError(t, db.Model(&models.Event{}).Where("organizer_id = ?", alice.ID).Count(&events).Error)
	require.NoError(t, db.Model(&models.RSVP{}).Where("event_id = ?", event.ID).Count(&rsvps).Error)
	require.NoError(t, db.Model(&models.UserProfile{}).Where("user_id = ?", alice.ID).Count(&profiles).Error)
	assert.Zero(t, events)
	assert.Zero(t, rsvps)
	assert.Zero(t, profiles)
}

func TestUpdateTouchesUpdatedAtOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	alice := createUser(t, db, "alice")
	event := createEvent(t, db, alice, "Original", true)
	createdAt := event.CreatedAt

	time.Sleep(10 * time.Millisecond)
	event.Title = "Renamed"
	require.NoError(t, repo.Update(event))

	fetched, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Title)
	assert.True(t, fetched.CreatedAt.Equal(createdAt))
	assert.True(t, fetched.UpdatedAt.After(createdAt))
}
