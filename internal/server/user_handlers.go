package server

import (
	"context"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the body for POST /users.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateUserRequest is the body for PUT /users/:id. All fields are optional
// but at least one must be present.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// GetUsers handles GET /users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := s.userService.List(ctx)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("firstName, lastName and email are required"))
	}
	if !strings.Contains(req.Email, "@") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email must be a valid email address"))
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.userService.Create(c.Context(), user); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if req.FirstName == "" && req.LastName == "" && req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one field must be provided"))
	}

	user, err := s.userService.Update(c.Context(), id, req.FirstName, req.LastName, req.Email)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Delete(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// GetUserFollowers handles GET /users/:id/followers
func (s *Server) GetUserFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c)

	followers, total, err := s.userService.GetFollowers(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(paginated(followers, total, page))
}

// GetUserActivity handles GET /users/:id/activity. Query parameters:
// limit, offset, type (post|like|follow|unfollow), startDate and endDate
// (YYYY-MM-DD, inclusive).
func (s *Server) GetUserActivity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c)

	var filter models.ActivityFilter

	if raw := c.Query("type"); raw != "" {
		kind, ok := models.ParseActivityKind(raw)
		if !ok {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid activity type: "+raw))
		}
		filter.Kind = &kind
	}

	start, perr := parseDate(c.Query("startDate"), false)
	if perr != nil {
		return models.RespondWithAppError(c, perr)
	}
	filter.Start = start

	end, perr := parseDate(c.Query("endDate"), true)
	if perr != nil {
		return models.RespondWithAppError(c, perr)
	}
	filter.End = end

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	events, total, err := s.activityService.GetUserActivity(ctx, id, filter, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(paginated(events, total, page))
}
