package handlers

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/pkg/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	// AnalysisHandler answers with the bare analysis object or {"error": ...},
	// not the presenter envelope.
	AnalysisHandler interface {
		AnalyzeMeal(c *fiber.Ctx) error
		AnalyzeMealImage(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) AnalyzeMeal(c *fiber.Ctx) error {
	req := new(domain.AnalyzeMealRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	res, err := h.analysisService.AnalyzeDescription(c.Context(), req.Description)
	if err != nil {
		log.Errorf("meal analysis error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": domain.MessageFailedAnalyzeMeal})
	}

	return c.Status(fiber.StatusOK).JSON(res.Estimate())
}

func (h *analysisHandler) AnalyzeMealImage(c *fiber.Ctx) error {
	req := new(domain.AnalyzeMealImageRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	res, err := h.analysisService.AnalyzeImage(c.Context(), req.Image)
	if err != nil {
		log.Errorf("meal image analysis error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": domain.MessageFailedAnalyzeMealImage})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
