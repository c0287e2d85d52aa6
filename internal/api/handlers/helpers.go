package handlers

import (
	"errors"
	"fmt"
	"strings"

	"voyagr/internal/analytics"
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("no user in context")
	}
	return uuid.Parse(raw)
}

func parseTripID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// parseFilter reads the shared report filter from query parameters:
// ?range=all|today|week|month and ?categories=food,transport.
func parseFilter(c *fiber.Ctx) (analytics.Filter, error) {
	filter := analytics.Filter{Range: analytics.RangeAll}

	switch r := c.Query("range", string(analytics.RangeAll)); analytics.DateRange(r) {
	case analytics.RangeAll, analytics.RangeToday, analytics.RangeWeek, analytics.RangeMonth:
		filter.Range = analytics.DateRange(r)
	default:
		return filter, fmt.Errorf("unknown range %q", r)
	}

	if raw := c.Query("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filter.Categories = append(filter.Categories, name)
			}
		}
	}

	return filter, nil
}

// serviceError maps service-layer sentinels to HTTP responses. Unknown
// errors become an opaque 500; the handler logs the detail.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTripNotFound), errors.Is(err, service.ErrExpenseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotEnoughData), errors.Is(err, service.ErrTripEnded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
