package handler

import (
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns a page of users, newest first
// GET /users?limit=&offset=
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, count, err := h.userService.ListUsers(c.UserContext(), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, users, count)
}

// CreateUser handles user creation; a missing email is stored as ""
// POST /users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, user)
}

// GetUser returns a single user by ID
// GET /users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, user)
}

// UpdateUser handles partial user update
// PATCH /users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, user)
}

// DeleteUser handles user deletion
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.userService.DeleteUser(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return response.Message(c, "User removed with ID: "+id.String())
}
