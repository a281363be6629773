package handler

import (
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	uc *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	analytics := app.Group("/analytics", auth.Protected())
	analytics.Get("/jobs", h.Jobs)
	analytics.Get("/applications", h.Applications)
	analytics.Get("/batches", h.Batches)
}

func (h *AnalyticsHandler) Jobs(c *fiber.Ctx) error {
	stats, err := h.uc.Jobs()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to aggregate job stats",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job stats",
		Data:    stats,
	})
}

func (h *AnalyticsHandler) Applications(c *fiber.Ctx) error {
	rows, err := h.uc.Applications(c.QueryInt("days", 30))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to aggregate applications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application stats",
		Data:    rows,
	})
}

func (h *AnalyticsHandler) Batches(c *fiber.Ctx) error {
	stats, err := h.uc.Batches()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get batch stats",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get batch stats",
		Data:    stats,
	})
}
