package handler

import (
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts GET /products?limit=&offset=&category_id=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	categoryID, err := parseUUIDQuery(c, "category_id")
	if err != nil {
		return fail(c, err)
	}

	products, count, err := h.service.ListProducts(c.UserContext(),
		repository.ProductFilter{CategoryID: categoryID}, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, products, count)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, product)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return response.Message(c, "Product removed with ID: "+id.String())
}
