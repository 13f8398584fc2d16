package service

import (
	"errors"
	"math"

	"github.com/gatherly/gatherly-backend/internal/apperr"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent requires an identified actor; the organizer is always the
// acting user, never taken from the payload.
func (s *EventService) CreateEvent(actor *models.Actor, req models.EventRequest) (*models.EventResponse, error) {
	if actor == nil {
		return nil, apperr.Authentication("authentication required to create events")
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, apperr.Validation("end_time", "End time must be after start time.")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		OrganizerID: actor.UserID,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsPublic:    isPublic,
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Internal(err)
	}

	created.Organizer = models.User{ID: actor.UserID, Username: actor.Username, Email: actor.Email}
	resp := buildEventResponse(created)
	return &resp, nil
}

// ListEvents applies the visibility rules for the actor, then the optional
// filters. A nil actor lists public events only.
func (s *EventService) ListEvents(actor *models.Actor, query models.EventListQuery) ([]models.EventResponse, error) {
	events, err := s.eventRepo.ListVisible(actor, query)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	responses := make([]models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, buildEventResponse(&events[i]))
	}
	return responses, nil
}

// GetEvent fetches a single event by id. Detail retrieval is not gated by
// visibility; private events resolve for any caller that knows the id.
func (s *EventService) GetEvent(eventID uint) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, apperr.Internal(err)
	}

	resp := buildEventResponse(event)
	return &resp, nil
}

// UpdateEvent re-reads the stored organizer before deciding; only the
// organizer may mutate, regardless of what the actor presented earlier.
func (s *EventService) UpdateEvent(actor *models.Actor, eventID uint, req models.UpdateEventRequest) (*models.EventResponse, error) {
	if actor == nil {
		return nil, apperr.Authentication("authentication required to update events")
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, apperr.Internal(err)
	}

	if event.OrganizerID != actor.UserID {
		return nil, apperr.Forbidden("only the organizer can update this event")
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}

	if !event.EndTime.After(event.StartTime) {
		return nil, apperr.Validation("end_time", "End time must be after start time.")
	}

	if err := s.eventRepo.Update(event); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Internal(err)
	}

	resp := buildEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes the event and, through the store's cascade rules,
// every RSVP and review attached to it.
func (s *EventService) DeleteEvent(actor *models.Actor, eventID uint) error {
	if actor == nil {
		return apperr.Authentication("authentication required to delete events")
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Event not found.")
		}
		return apperr.Internal(err)
	}

	if event.OrganizerID != actor.UserID {
		return apperr.Forbidden("only the organizer can delete this event")
	}

	if err := s.eventRepo.Delete(eventID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func buildEventResponse(event *models.Event) models.EventResponse {
	resp := models.EventResponse{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		OrganizerID:   event.OrganizerID,
		OrganizerName: event.Organizer.Username,
		Location:      event.Location,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		IsPublic:      event.IsPublic,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
		RSVPCount:     len(event.RSVPs),
	}

	if len(event.Reviews) > 0 {
		sum := 0
		for _, review := range event.Reviews {
			sum += review.Rating
		}
		avg := math.Round(float64(sum)/float64(len(event.Reviews))*10) / 10
		resp.AverageRating = &avg
	}

	return resp
}
