package handler

import (
	"strconv"

	"github.com/gatherly/gatherly-backend/internal/middleware"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/service"
	"github.com/gatherly/gatherly-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

// ListEvents is open to anonymous callers; the visibility rules decide what
// each actor sees.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	query := models.EventListQuery{
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	if raw := c.Query("is_public"); raw != "" {
		isPublic, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid is_public filter"))
		}
		query.IsPublic = &isPublic
	}

	events, err := h.eventService.ListEvents(actor, query)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	actor := middleware.ActorFromContext(c)

	event, err := h.eventService.CreateEvent(actor, req)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	actor := middleware.ActorFromContext(c)

	event, err := h.eventService.UpdateEvent(actor, eventID, req)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	actor := middleware.ActorFromContext(c)

	if err := h.eventService.DeleteEvent(actor, eventID); err != nil {
		return renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
