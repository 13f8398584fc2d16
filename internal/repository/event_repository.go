package repository

import (
	"strings"

	"github.com/gatherly/gatherly-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Organizer").Preload("RSVPs").Preload("Reviews").First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListVisible returns the events the actor may see. Anonymous actors get
// public events only; an authenticated actor additionally sees private events
// they organize or hold an RSVP on. The whole predicate is one WHERE clause,
// so an event can never appear twice.
func (r *EventRepository) ListVisible(actor *models.Actor, query models.EventListQuery) ([]models.Event, error) {
	db := r.db.Model(&models.Event{}).
		Preload("Organizer").Preload("RSVPs").Preload("Reviews")

	if actor == nil {
		db = db.Where("is_public = ?", true)
	} else {
		rsvpEvents := r.db.Model(&models.RSVP{}).
			Select("event_id").
			Where("user_id = ?", actor.UserID)
		db = db.Where("is_public = ? OR organizer_id = ? OR id IN (?)",
			true, actor.UserID, rsvpEvents)
	}

	if query.Location != "" {
		db = db.Where("location = ?", query.Location)
	}
	if query.IsPublic != nil {
		db = db.Where("is_public = ?", *query.IsPublic)
	}
	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	db = db.Order(orderClause(query.Ordering))

	var events []models.Event
	err := db.Find(&events).Error
	return events, err
}

// orderClause whitelists the orderable columns; anything else falls back to
// the default ordering of start_time descending.
func orderClause(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	column := strings.TrimPrefix(ordering, "-")

	switch column {
	case "start_time", "created_at":
	default:
		return "start_time DESC"
	}

	if desc {
		return column + " DESC"
	}
	return column
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event; RSVPs and reviews go with it through the
// store's cascade rules.
func (r *EventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
