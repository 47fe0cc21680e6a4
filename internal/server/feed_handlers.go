package server

import (
	"context"
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FeedRequest is the body for GET /feed. The userId may also be supplied as
// a query parameter for clients that cannot send a body with GET.
type FeedRequest struct {
	UserID uint `json:"userId"`
}

// GetFeed handles GET /feed, returning recent posts from users the given
// user follows.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	var req FeedRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}
	if req.UserID == 0 {
		req.UserID = uint(c.QueryInt("userId", 0))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId is required"))
	}

	page := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	posts, total, err := s.feedService.GetFeed(ctx, req.UserID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(paginated(posts, total, page))
}
