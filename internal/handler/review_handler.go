package handler

import (
	"github.com/gatherly/gatherly-backend/internal/middleware"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/service"
	"github.com/gatherly/gatherly-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	validator     *utils.Validator
}

func NewReviewHandler(reviewService *service.ReviewService, validator *utils.Validator) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	reviews, err := h.reviewService.ListReviews(eventID)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(reviews, "Reviews retrieved successfully"))
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	actor := middleware.ActorFromContext(c)

	review, err := h.reviewService.CreateReview(actor, eventID, req)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(review, "Review created successfully"))
}
