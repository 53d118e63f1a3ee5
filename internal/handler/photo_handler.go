package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/internal/service"
)

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

func (h *PhotoHandler) PhotosOfUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user id."))
	}

	photos, err := h.photoService.PhotosOfUser(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("User not found."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error."))
	}

	return c.JSON(photos)
}

func (h *PhotoHandler) AddComment(c *fiber.Ctx) error {
	photoID, err := strconv.ParseUint(c.Params("photoId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo id."))
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User must be logged in to comment."))
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.photoService.AddComment(uint(photoID), userID, req.Comment); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Comment cannot be empty."))
		case errors.Is(err, service.ErrPhotoNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Photo not found."))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error."))
		}
	}

	return c.SendString("Comment added successfully.")
}

func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not logged in"))
	}

	file, err := c.FormFile("uploadedphoto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded."))
	}

	photo, err := h.photoService.Upload(userID, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType), errors.Is(err, service.ErrFileTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error saving photo on server."))
		}
	}

	return c.JSON(photo)
}
