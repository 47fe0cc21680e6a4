package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeRequest is the body for POST /likes and DELETE /likes/unlike.
type LikeRequest struct {
	UserID uint `json:"userId"`
	PostID uint `json:"postId"`
}

func parseLikeRequest(c *fiber.Ctx) (*LikeRequest, error) {
	var req LikeRequest
	if err := c.BodyParser(&req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	if req.UserID == 0 || req.PostID == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId and postId are required"))
		return nil, errResponseWritten
	}
	return &req, nil
}

// GetLikes handles GET /likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	likes, err := s.likeService.List(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(likes)
}

// GetLike handles GET /likes/:id
func (s *Server) GetLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(like)
}

// CreateLike handles POST /likes
func (s *Server) CreateLike(c *fiber.Ctx) error {
	req, err := parseLikeRequest(c)
	if err != nil {
		return nil
	}

	like, err := s.likeService.Like(c.Context(), req.UserID, req.PostID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost handles DELETE /likes/unlike, removing a like by its natural
// (user, post) key.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	req, err := parseLikeRequest(c)
	if err != nil {
		return nil
	}

	if err := s.likeService.Unlike(c.Context(), req.UserID, req.PostID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post unliked successfully"})
}

// DeleteLike handles DELETE /likes/:id
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.Delete(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Like deleted successfully"})
}
