package service

import (
	"errors"

	"github.com/gatherly/gatherly-backend/internal/apperr"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"github.com/gatherly/gatherly-backend/pkg/notifier"
	"gorm.io/gorm"
)

type RSVPService struct {
	rsvpRepo   *repository.RSVPRepository
	eventRepo  *repository.EventRepository
	dispatcher notifier.Dispatcher
}

func NewRSVPService(rsvpRepo *repository.RSVPRepository, eventRepo *repository.EventRepository, dispatcher notifier.Dispatcher) *RSVPService {
	return &RSVPService{
		rsvpRepo:   rsvpRepo,
		eventRepo:  eventRepo,
		dispatcher: dispatcher,
	}
}

// CreateRSVP records the actor's first reaction to an event. Organizers may
// not RSVP to their own events, and a second RSVP from the same user fails on
// the store's unique key rather than a racy pre-check.
func (s *RSVPService) CreateRSVP(actor *models.Actor, eventID uint, req models.RSVPRequest) (*models.RSVPResponse, error) {
	if actor == nil {
		return nil, apperr.Authentication("authentication required to RSVP")
	}

	if !models.ValidRSVPStatus(req.Status) {
		return nil, apperr.Validation("status", "Status must be one of: Going, Maybe, Not Going.")
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, apperr.Internal(err)
	}

	if event.OrganizerID == actor.UserID {
		return nil, apperr.Forbidden("organizers cannot RSVP to their own event")
	}

	rsvp := &models.RSVP{
		EventID: eventID,
		UserID:  actor.UserID,
		Status:  req.Status,
	}

	created, err := s.rsvpRepo.Create(rsvp)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("you have already RSVP'd to this event")
		}
		return nil, apperr.Internal(err)
	}

	// Hand-off only; the dispatcher delivers on its own goroutine and
	// failures never reach this path.
	s.dispatcher.RSVPCreated(event.Organizer.Email, event.Title, actor.Username, string(created.Status))

	return &models.RSVPResponse{
		ID:         created.ID,
		EventID:    created.EventID,
		UserID:     created.UserID,
		UserName:   actor.Username,
		EventTitle: event.Title,
		Status:     created.Status,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// UpdateRSVP changes the status of an existing RSVP. Only the owning user may
// change it, and only the status field is mutable.
func (s *RSVPService) UpdateRSVP(actor *models.Actor, eventID, userID uint, req models.RSVPRequest) (*models.RSVPResponse, error) {
	if actor == nil {
		return nil, apperr.Authentication("authentication required to update an RSVP")
	}

	if actor.UserID != userID {
		return nil, apperr.Forbidden("you can only update your own RSVP")
	}

	if !models.ValidRSVPStatus(req.Status) {
		return nil, apperr.Validation("status", "Status must be one of: Going, Maybe, Not Going.")
	}

	rsvp, err := s.rsvpRepo.GetByEventAndUser(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("RSVP not found.")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.rsvpRepo.UpdateStatus(rsvp, req.Status); err != nil {
		return nil, apperr.Internal(err)
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.RSVPResponse{
		ID:         rsvp.ID,
		EventID:    rsvp.EventID,
		UserID:     rsvp.UserID,
		UserName:   actor.Username,
		EventTitle: event.Title,
		Status:     rsvp.Status,
		CreatedAt:  rsvp.CreatedAt,
	}, nil
}
