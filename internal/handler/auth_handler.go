package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/internal/service"
	"github.com/photoshare/photoshare-backend/pkg/session"
	"github.com/photoshare/photoshare-backend/pkg/utils"
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

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing login_name or password"))
	}

	user, token, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid login"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.authService.SessionTTL()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Not logged in"))
	}

	if err := h.authService.Logout(token); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Not logged in"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.SendString("Logged out")
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing required fields"))
	}

	if err := h.authService.Register(req); err != nil {
		if errors.Is(err, service.ErrLoginNameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Login name already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error creating user"))
	}

	return c.SendString("User registered successfully")
}
