package handlers

import (
	"voyagr/internal/dto"
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// AddExpense godoc
// @Summary Add an expense to a trip
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.ExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/expenses [post]
func (h *ExpenseHandler) AddExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.expenseService.Add(c.Context(), userID, tripID, &req)
	if err != nil {
		h.logger.Error("Failed to add expense", zap.Error(err))
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ListExpenses godoc
// @Summary List a trip's expenses
// @Description Expenses are returned newest first
// @Tags expenses
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}

	expenses, err := h.expenseService.List(c.Context(), userID, tripID)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return serviceError(c, err)
	}
	return c.JSON(expenses)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Replaces the expense with the submitted values
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param expenseID path string true "Expense ID"
// @Param request body dto.ExpenseRequest true "Expense"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/expenses/{expenseID} [put]
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}
	expenseID, err := uuid.Parse(c.Params("expenseID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.expenseService.Update(c.Context(), userID, tripID, expenseID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(expense)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path string true "Trip ID"
// @Param expenseID path string true "Expense ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/expenses/{expenseID} [delete]
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	tripID, err := parseTripID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip id"})
	}
	expenseID, err := uuid.Parse(c.Params("expenseID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}

	if err := h.expenseService.Delete(c.Context(), userID, tripID, expenseID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
