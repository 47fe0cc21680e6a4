package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowRequest is the body for POST /follows and POST /follows/unfollow.
type FollowRequest struct {
	FollowerID  uint `json:"followerId"`
	FollowingID uint `json:"followingId"`
}

func parseFollowRequest(c *fiber.Ctx) (*FollowRequest, error) {
	var req FollowRequest
	if err := c.BodyParser(&req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	if req.FollowerID == 0 || req.FollowingID == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("followerId and followingId are required"))
		return nil, errResponseWritten
	}
	return &req, nil
}

// GetFollows handles GET /follows. Only active relationships are listed.
func (s *Server) GetFollows(c *fiber.Ctx) error {
	follows, err := s.followService.ListActive(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(follows)
}

// GetFollow handles GET /follows/:id
func (s *Server) GetFollow(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	follow, err := s.followService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(follow)
}

// CreateFollow handles POST /follows
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	req, err := parseFollowRequest(c)
	if err != nil {
		return nil
	}

	follow, err := s.followService.Follow(c.Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser handles POST /follows/unfollow. The active relationship is
// retired in place, preserving it for activity history.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	req, err := parseFollowRequest(c)
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), req.FollowerID, req.FollowingID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed successfully"})
}

// DeleteFollow handles DELETE /follows/:id
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Delete(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Follow relationship deleted successfully"})
}
