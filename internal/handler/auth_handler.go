package handler

import (
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/service"
	"github.com/gatherly/gatherly-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered successfully"))
}

func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fields := h.validator.StructFields(req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("validation failed", fields))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"token": resp.Token,
	}, "Login successful"))
}
