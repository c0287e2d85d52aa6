package handlers

import (
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insightService *service.InsightService
	logger         *zap.Logger
}

func NewInsightHandler(insightService *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		logger:         logger,
	}
}

// GenerateInsights godoc
// @Summary Generate spending observations for a trip
// @Description Summarizes the filtered expense set and asks the language model for three short observations. Requires at least three expenses.
// @Tags insights
// @Produce json
// @Param id path string true "Trip ID"
// @Param range query string false "Date range" Enums(all, today, week, month)
// @Param categories query string false "Comma-separated category names"
// @Security Bearer
// @Success 200 {object} dto.InsightsResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/trips/{id}/insights [post]
func (h *InsightHandler) GenerateInsights(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	insights, err := h.insightService.GenerateInsights(c.Context(), userID, tripID, filter)
	if err != nil {
		h.logger.Error("Failed to generate insights", zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(insights)
}

// GenerateForecast godoc
// @Summary Generate a budget forecast for an active trip
// @Description Projects the daily burn rate over the remaining trip days and asks the language model for an outlook plus anomalies. Fails for ended trips.
// @Tags insights
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.ForecastResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/trips/{id}/forecast [post]
func (h *InsightHandler) GenerateForecast(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	forecast, err := h.insightService.GenerateForecast(c.Context(), userID, tripID)
	if err != nil {
		h.logger.Error("Failed to generate forecast", zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(forecast)
}

// ListInsights godoc
// @Summary List stored insights for a trip
// @Tags insights
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {array} dto.StoredInsightResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/insights [get]
func (h *InsightHandler) ListInsights(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	insights, err := h.insightService.List(c.Context(), userID, tripID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(insights)
}
