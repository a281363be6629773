package handler

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/dto"
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ActionHandler struct {
	uc *usecase.JobUsecase
}

func NewActionHandler(uc *usecase.JobUsecase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

func (h *ActionHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	actions := app.Group("/actions", auth.Protected())
	actions.Post("/apply", middleware.RateLimiter(20, 1*time.Minute), h.Apply)
}

func (h *ActionHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if ferr := util.ValidateStruct(req); ferr != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: ferr.Message,
			Details: ferr.Errors,
		})
	}

	userIDStr, _ := c.Locals(middleware.LocalUserID).(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "invalid user identity",
		}, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "job_id is not a valid uuid",
		}, err)
	}

	app, err := h.uc.Apply(userID, jobID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to apply to job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success apply to job",
		Data:    app,
	})
}
