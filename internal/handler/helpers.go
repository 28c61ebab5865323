package handler

import (
	"errors"
	"fmt"

	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// errBadRequest marks decoding failures that happen before any service call.
var errBadRequest = errors.New("bad request")

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid ID %q", errBadRequest, c.Params("id"))
	}
	return id, nil
}

// parsePage reads limit/offset; anything missing, non-numeric or non-positive
// falls back to the defaults.
func parsePage(c *fiber.Ctx) repository.Page {
	return repository.NewPage(
		c.QueryInt("limit", repository.DefaultLimit),
		c.QueryInt("offset", repository.DefaultOffset),
	)
}

// parseUUIDQuery returns nil when the filter is absent.
func parseUUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s %q", errBadRequest, key, raw)
	}
	return &id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: Invalid JSON: %s", errBadRequest, err.Error())
	}
	return nil
}

// fail maps an error onto the error envelope: decoding and validation errors
// are 400, missing rows 404, everything else 500 with the raw message.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, service.ErrValidation):
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, err.Error())
	}

	event := log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path())
	if rid, ok := c.Locals("requestid").(string); ok {
		event = event.Str("request_id", rid)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		event = event.Str("sqlstate", pgErr.Code).Str("constraint", pgErr.ConstraintName)
	}
	event.Msg("request failed")

	return response.Error(c, fiber.StatusInternalServerError, err.Error())
}
