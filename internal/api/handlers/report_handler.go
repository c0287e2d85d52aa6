package handlers

import (
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// GetReport godoc
// @Summary Build the analytics report for a trip
// @Description Category and country breakdowns, burn curve and highlights, all in the trip's main currency. Filter with ?range=all|today|week|month and ?categories=food,transport.
// @Tags reports
// @Produce json
// @Param id path string true "Trip ID"
// @Param range query string false "Date range" Enums(all, today, week, month)
// @Param categories query string false "Comma-separated category names"
// @Security Bearer
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/report [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
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

	report, err := h.reportService.BuildReport(c.Context(), userID, tripID, filter)
	if err != nil {
		h.logger.Error("Failed to build report", zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(report)
}

// GetHeatmap godoc
// @Summary Calendar heatmap for a trip
// @Description One cell per trip day up to today with a square-root compressed intensity and a discrete level 0-4
// @Tags reports
// @Produce json
// @Param id path string true "Trip ID"
// @Param range query string false "Date range" Enums(all, today, week, month)
// @Param categories query string false "Comma-separated category names"
// @Security Bearer
// @Success 200 {array} dto.HeatmapCellResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/report/heatmap [get]
func (h *ReportHandler) GetHeatmap(c *fiber.Ctx) error {
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

	cells, err := h.reportService.Heatmap(c.Context(), userID, tripID, filter)
	if err != nil {
		h.logger.Error("Failed to build heatmap", zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(cells)
}
