package server

import (
	"strings"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// HashtagRequest is the body for POST /hashtags and PUT /hashtags/:id.
type HashtagRequest struct {
	Name string `json:"name"`
}

// GetHashtags handles GET /hashtags
func (s *Server) GetHashtags(c *fiber.Ctx) error {
	hashtags, err := s.hashtagService.List(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(hashtags)
}

// GetHashtag handles GET /hashtags/:id
func (s *Server) GetHashtag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	hashtag, err := s.hashtagService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(hashtag)
}

// CreateHashtag handles POST /hashtags
func (s *Server) CreateHashtag(c *fiber.Ctx) error {
	var req HashtagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	hashtag, err := s.hashtagService.Create(c.Context(), req.Name)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(hashtag)
}

// UpdateHashtag handles PUT /hashtags/:id
func (s *Server) UpdateHashtag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req HashtagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	hashtag, err := s.hashtagService.Update(c.Context(), id, req.Name)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(hashtag)
}

// DeleteHashtag handles DELETE /hashtags/:id
func (s *Server) DeleteHashtag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.hashtagService.Delete(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Hashtag deleted successfully"})
}
