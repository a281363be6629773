package handler

import (
	"errors"
	"log"

	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	batch *usecase.BatchUsecase
}

func NewAdminHandler(batch *usecase.BatchUsecase) *AdminHandler {
	return &AdminHandler{batch: batch}
}

func (h *AdminHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	admin := app.Group("/admin", auth.Protected(), auth.RequireRole("service_role"))
	admin.Post("/batch/run", h.RunBatch)
	admin.Get("/batch", h.ListRuns)
	admin.Get("/batch/:id", h.GetRun)
}

// RunBatch triggers a matching batch in the background and returns 202.
func (h *AdminHandler) RunBatch(c *fiber.Ctx) error {
	go func() {
		if _, err := h.batch.Run(); err != nil && !errors.Is(err, usecase.ErrBatchRunning) {
			log.Printf("admin-triggered batch failed: %v", err)
		}
	}()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Batch run started",
	})
}

func (h *AdminHandler) ListRuns(c *fiber.Ctx) error {
	runs, err := h.batch.ListRuns(c.QueryInt("limit", 20))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list batch runs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list batch runs",
		Data:    runs,
	})
}

func (h *AdminHandler) GetRun(c *fiber.Ctx) error {
	run, err := h.batch.GetRun(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "batch run not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get batch run",
		Data:    run,
	})
}
