package handler

import (
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetCategories GET /categories?limit=&offset=
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, count, err := h.service.ListCategories(c.UserContext(), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, categories, count)
}

// CreateCategory POST /categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	category, err := h.service.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, category)
}

// GetCategory GET /categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	category, err := h.service.GetCategory(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, category)
}

// UpdateCategory PATCH /categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	category, err := h.service.UpdateCategory(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, category)
}

// DeleteCategory DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return response.Message(c, "Category removed with ID: "+id.String())
}
