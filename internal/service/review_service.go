package service

import (
	"errors"

	"github.com/gatherly/gatherly-backend/internal/apperr"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"github.com/gatherly/gatherly-backend/pkg/notifier"
	"gorm.io/gorm"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	eventRepo  *repository.EventRepository
	dispatcher notifier.Dispatcher
}

func NewReviewService(reviewRepo *repository.ReviewRepository, eventRepo *repository.EventRepository, dispatcher notifier.Dispatcher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		eventRepo:  eventRepo,
		dispatcher: dispatcher,
	}
}

// CreateReview records a one-time review. Reviews are immutable once written;
// a second review from the same user fails on the store's unique key.
// Organizers may review their own events.
func (s *ReviewService) CreateReview(actor *models.Actor, eventID uint, req models.ReviewRequest) (*models.ReviewResponse, error) {
	if actor == nil {
		return nil, apperr.Authentication("authentication required to review")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating", "Rating must be between 1 and 5.")
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, apperr.Internal(err)
	}

	review := &models.Review{
		EventID: eventID,
		UserID:  actor.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	created, err := s.reviewRepo.Create(review)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("you have already reviewed this event")
		}
		return nil, apperr.Internal(err)
	}

	s.dispatcher.ReviewCreated(event.Organizer.Email, event.Title, actor.Username, created.Rating)

	return &models.ReviewResponse{
		ID:         created.ID,
		EventID:    created.EventID,
		UserID:     created.UserID,
		UserName:   actor.Username,
		EventTitle: event.Title,
		Rating:     created.Rating,
		Comment:    created.Comment,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// ListReviews is a public read scoped to one event. An unknown event id
// yields an empty list rather than an error.
func (s *ReviewService) ListReviews(eventID uint) ([]models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByEvent(eventID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	event, err := s.eventRepo.GetByID(eventID)
	eventTitle := ""
	if err == nil {
		eventTitle = event.Title
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, models.ReviewResponse{
			ID:         review.ID,
			EventID:    review.EventID,
			UserID:     review.UserID,
			UserName:   review.User.Username,
			EventTitle: eventTitle,
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		})
	}
	return responses, nil
}
