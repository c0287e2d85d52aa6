package handlers

import (
	"time"

	"voyagr/internal/dto"
	"voyagr/internal/models"
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TripHandler struct {
	tripService *service.TripService
	logger      *zap.Logger
}

func NewTripHandler(tripService *service.TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a new trip with budget, date range and countries
// @Tags trips
// @Accept json
// @Produce json
// @Param request body dto.TripRequest true "Trip"
// @Security Bearer
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/trips [post]
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	trip, err := h.tripService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create trip", zap.Error(err))
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tripResponse(trip))
}

// ListTrips godoc
// @Summary List trips
// @Tags trips
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TripResponse
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	trips, err := h.tripService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list trips", zap.Error(err))
		return serviceError(c, err)
	}

	out := make([]dto.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, tripResponse(trip))
	}
	return c.JSON(out)
}

// GetTrip godoc
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	trip, err := h.tripService.Get(c.Context(), userID, tripID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tripResponse(trip))
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.TripRequest true "Trip"
// @Security Bearer
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	var req dto.TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	trip, err := h.tripService.Update(c.Context(), userID, tripID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tripResponse(trip))
}

// DeleteTrip godoc
// @Summary Delete a trip and its expenses
// @Tags trips
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	if err := h.tripService.Delete(c.Context(), userID, tripID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func tripResponse(trip *models.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:                    trip.ID.String(),
		Name:                  trip.Name,
		StartDate:             trip.StartDate.Format("2006-01-02"),
		EndDate:               trip.EndDate.Format("2006-01-02"),
		MainCurrency:          trip.MainCurrency,
		TotalBudget:           trip.TotalBudget,
		Countries:             trip.Countries,
		EnableCategoryBudgets: trip.EnableCategoryBudgets,
		FrequentExpenses:      trip.FrequentExpenses,
		DurationDays:          trip.DurationDays(),
		CreatedAt:             trip.CreatedAt.Format(time.RFC3339),
	}
}
