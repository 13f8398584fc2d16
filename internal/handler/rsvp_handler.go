package handler

import (
	"github.com/gatherly/gatherly-backend/internal/middleware"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/service"
	"github.com/gatherly/gatherly-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
	validator   *utils.Validator
}

func NewRSVPHandler(rsvpService *service.RSVPService, validator *utils.Validator) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
		validator:   validator,
	}
}

func (h *RSVPHandler) CreateRSVP(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	actor := middleware.ActorFromContext(c)

	rsvp, err := h.rsvpService.CreateRSVP(actor, eventID, req)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(rsvp, "RSVP created successfully"))
}

func (h *RSVPHandler) UpdateRSVP(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	var req models.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	actor := middleware.ActorFromContext(c)

	rsvp, err := h.rsvpService.UpdateRSVP(actor, eventID, userID, req)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(rsvp, "RSVP updated successfully"))
}
