package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/internal/service"
)

// TestHandler serves the unauthenticated connectivity endpoints.
type TestHandler struct {
	diagService *service.DiagService
}

func NewTestHandler(diagService *service.DiagService) *TestHandler {
	return &TestHandler{
		diagService: diagService,
	}
}

func (h *TestHandler) Liveness(c *fiber.Ctx) error {
	return c.SendString("Photo sharing backend is running")
}

func (h *TestHandler) Test(c *fiber.Ctx) error {
	// A bare /test means /test/info.
	param := c.Params("p1")
	if param == "" {
		param = "info"
	}

	switch param {
	case "info":
		info, err := h.diagService.Info()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).SendString("Missing SchemaInfo")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
		}
		return c.JSON(info)
	case "counts":
		counts, err := h.diagService.Counts()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
		}
		return c.JSON(counts)
	default:
		return c.Status(fiber.StatusBadRequest).SendString("Bad param " + param)
	}
}
