package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PostHashtagRequest is the body for POST /post-hashtags and
// DELETE /post-hashtags/remove.
type PostHashtagRequest struct {
	PostID    uint `json:"postId"`
	HashtagID uint `json:"hashtagId"`
}

func parsePostHashtagRequest(c *fiber.Ctx) (*PostHashtagRequest, error) {
	var req PostHashtagRequest
	if err := c.BodyParser(&req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	if req.PostID == 0 || req.HashtagID == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId and hashtagId are required"))
		return nil, errResponseWritten
	}
	return &req, nil
}

// GetPostHashtags handles GET /post-hashtags
func (s *Server) GetPostHashtags(c *fiber.Ctx) error {
	postHashtags, err := s.hashtagService.ListPostHashtags(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(postHashtags)
}

// GetPostHashtag handles GET /post-hashtags/:id
func (s *Server) GetPostHashtag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ph, err := s.hashtagService.GetPostHashtagByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(ph)
}

// CreatePostHashtag handles POST /post-hashtags
func (s *Server) CreatePostHashtag(c *fiber.Ctx) error {
	req, err := parsePostHashtagRequest(c)
	if err != nil {
		return nil
	}

	ph, err := s.hashtagService.TagPost(c.Context(), req.PostID, req.HashtagID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ph)
}

// RemoveHashtagFromPost handles DELETE /post-hashtags/remove, removing the
// association by its natural (post, hashtag) key.
func (s *Server) RemoveHashtagFromPost(c *fiber.Ctx) error {
	req, err := parsePostHashtagRequest(c)
	if err != nil {
		return nil
	}

	if err := s.hashtagService.UntagPost(c.Context(), req.PostID, req.HashtagID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Hashtag removed from post successfully"})
}

// DeletePostHashtag handles DELETE /post-hashtags/:id
func (s *Server) DeletePostHashtag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.hashtagService.DeletePostHashtag(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post hashtag relationship deleted successfully"})
}
