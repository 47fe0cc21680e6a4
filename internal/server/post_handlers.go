package server

import (
	"context"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest is the body for POST /posts.
type CreatePostRequest struct {
	Content  string `json:"content"`
	AuthorID uint   `json:"authorId"`
}

// UpdatePostRequest is the body for PUT /posts/:id.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	posts, err := s.postService.List(ctx)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}
	if req.AuthorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("authorId is required"))
	}

	post, err := s.postService.Create(c.Context(), req.Content, req.AuthorID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	post, err := s.postService.Update(c.Context(), id, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// GetPostsByHashtag handles GET /posts/hashtag/:tag
func (s *Server) GetPostsByHashtag(c *fiber.Ctx) error {
	tag := strings.TrimSpace(c.Params("tag"))
	if tag == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Hashtag is required"))
	}
	page := parsePagination(c)

	posts, err := s.postService.ListByHashtag(c.Context(), tag, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}
