package handler

import (
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// GetPurchases GET /purchases?limit=&offset=&product_id=&user_id=
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	productID, err := parseUUIDQuery(c, "product_id")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseUUIDQuery(c, "user_id")
	if err != nil {
		return fail(c, err)
	}

	purchases, count, err := h.service.ListPurchases(c.UserContext(),
		repository.PurchaseFilter{ProductID: productID, UserID: userID}, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, purchases, count)
}

func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.CreatePurchaseRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	purchase, err := h.service.CreatePurchase(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, purchase)
}

func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	purchase, err := h.service.GetPurchase(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, purchase)
}

func (h *PurchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdatePurchaseRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	purchase, err := h.service.UpdatePurchase(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, purchase)
}

func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeletePurchase(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return response.Message(c, "Purchase removed with ID: "+id.String())
}
