package handlers

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/internal/api/presenters"
	"BulkBlitz-Backend/pkg/meal"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealDetails(c *fiber.Ctx) error
		ArchiveMeal(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

// mealError hides store errors behind the generic message and maps caller
// mistakes to 4xx.
func mealError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrMealNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrInvalidMealDate),
		errors.Is(err, domain.ErrNegativeMacro),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		log.Errorf("%s: %v", message, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
	}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	res, err := h.mealService.CreateMeal(c.Context(), *req, userID)
	if err != nil {
		return mealError(c, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meals, err := h.mealService.GetMeals(
		c.Context(),
		userID,
		c.Query("status", domain.MealStatusActive),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		return mealError(c, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealService.GetMealByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return mealError(c, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeal)
}

func (h *mealHandler) ArchiveMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.mealService.ArchiveMeal(c.Context(), c.Params("id"), userID); err != nil {
		return mealError(c, domain.MessageFailedArchiveMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessArchiveMeal)
}
