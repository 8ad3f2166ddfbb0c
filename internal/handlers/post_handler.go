package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lostfound/internal/models"
	"lostfound/internal/repositories"
	"lostfound/internal/services"
)

// PostHandler handles HTTP requests for lost and found posts.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers post routes. Browsing the feed and viewing a post
// are public; creating, updating and deleting require authentication.
func (h *PostHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	publicRoutes := public.Group("/posts")
	publicRoutes.Get("/", h.HandleListPosts)
	publicRoutes.Get("/:id", h.HandleGetPostByID)

	protectedRoutes := protected.Group("/posts")
	protectedRoutes.Post("/", h.HandleCreatePost)
	protectedRoutes.Put("/:id", h.HandleUpdatePost)
	protectedRoutes.Delete("/:id", h.HandleDeletePost)
}

// HandleListPosts returns the filtered feed, most recent first. An empty
// feed is a normal 200 response.
func (h *PostHandler) HandleListPosts(c *fiber.Ctx) error {
	filter := repositories.PostFilter{
		Search:   c.Query("search"),
		Kategori: c.Query("kategori"),
		Status:   c.Query("status"),
	}

	posts, err := h.service.ListPosts(filter)
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single post by its ID.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	post, err := h.service.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Post with ID %d not found", id),
			})
		}
		log.Printf("Error getting post by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new post owned by the authenticated caller.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing create post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.StructExcept(post, "User"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	callerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing caller identity",
		})
	}

	created, err := h.service.CreatePost(&post, callerID)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Post owner not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create post",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdatePost applies a partial update to a post the caller owns.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	var changes models.PostUpdate
	if err := c.BodyParser(&changes); err != nil {
		log.Printf("Error parsing update post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(changes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	callerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing caller identity",
		})
	}

	updated, err := h.service.UpdatePost(id, &changes, callerID)
	if err != nil {
		return h.mutationError(c, id, "update", err)
	}
	return c.JSON(updated)
}

// HandleDeletePost removes a post the caller owns.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	callerID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing caller identity",
		})
	}

	if err := h.service.DeletePost(id, callerID); err != nil {
		return h.mutationError(c, id, "delete", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Post %d deleted successfully", id),
	})
}

// mutationError maps service failures on update/delete to HTTP statuses.
func (h *PostHandler) mutationError(c *fiber.Ctx, id uint, op string, err error) error {
	log.Printf("Error on %s for post %d: %v", op, id, err)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Post with ID %d not found", id),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only the owner may modify this post",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Could not %s post", op),
			"error":   err.Error(),
		})
	}
}

// parseID extracts the numeric :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter %q", c.Params("id"))
	}
	return uint(id), nil
}

// callerID reads the authenticated user's ID stored by the JWT middleware.
func callerID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}
