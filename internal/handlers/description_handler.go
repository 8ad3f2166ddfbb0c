package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lostfound/internal/services"
)

// DescriptionHandler handles HTTP requests for AI-assisted post descriptions.
type DescriptionHandler struct {
	service  *services.DescriptionService
	validate *validator.Validate
}

// NewDescriptionHandler creates a new DescriptionHandler.
func NewDescriptionHandler(service *services.DescriptionService) *DescriptionHandler {
	return &DescriptionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the description generation route. Drafting text
// is only offered to authenticated users composing a post.
func (h *DescriptionHandler) RegisterRoutes(protected fiber.Router) {
	protected.Post("/posts/generate-description", h.HandleGenerateDescription)
}

// GenerateDescriptionRequest carries the post title and an optional
// base64-encoded photo of the item.
type GenerateDescriptionRequest struct {
	Judul    string `json:"judul" validate:"required,max=255"`
	Foto     string `json:"foto" validate:"omitempty,base64"`
	MimeType string `json:"mime_type" validate:"omitempty,max=64"`
}

// HandleGenerateDescription drafts a description for the given title and
// photo. The operation degrades to placeholder text instead of failing, so a
// 200 response is the only success or fallback outcome.
func (h *DescriptionHandler) HandleGenerateDescription(c *fiber.Ctx) error {
	var req GenerateDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing generate description request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	deskripsi := h.service.GenerateDescription(req.Judul, req.Foto, req.MimeType)
	return c.JSON(fiber.Map{
		"deskripsi": deskripsi,
	})
}
