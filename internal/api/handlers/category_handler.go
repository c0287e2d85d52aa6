package handlers

import (
	"voyagr/internal/dto"
	"voyagr/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryStore service.CategoryStore
	logger        *zap.Logger
}

func NewCategoryHandler(categoryStore service.CategoryStore, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// ListCategories godoc
// @Summary List the category registry
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryStore.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{Name: cat.Name, Icon: cat.Icon})
	}
	return c.JSON(out)
}
