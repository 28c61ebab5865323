package handler

import (
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	service service.RatingService
}

func NewRatingHandler(s service.RatingService) *RatingHandler {
	return &RatingHandler{service: s}
}

// GetRatings GET /ratings?limit=&offset=&product_id=&user_id=
func (h *RatingHandler) GetRatings(c *fiber.Ctx) error {
	productID, err := parseUUIDQuery(c, "product_id")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseUUIDQuery(c, "user_id")
	if err != nil {
		return fail(c, err)
	}

	ratings, count, err := h.service.ListRatings(c.UserContext(),
		repository.RatingFilter{ProductID: productID, UserID: userID}, parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, ratings, count)
}

func (h *RatingHandler) CreateRating(c *fiber.Ctx) error {
	var req service.CreateRatingRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	rating, err := h.service.CreateRating(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, rating)
}

func (h *RatingHandler) GetRating(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	rating, err := h.service.GetRating(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, rating)
}

func (h *RatingHandler) UpdateRating(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateRatingRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	rating, err := h.service.UpdateRating(c.UserContext(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return response.Data(c, rating)
}

func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteRating(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return response.Message(c, "Rating removed with ID: "+id.String())
}
