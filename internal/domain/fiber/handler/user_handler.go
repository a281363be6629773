package handler

import (
	"github.com/fadilmartias/jobmatch/internal/dto"
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	users := app.Group("/users", auth.Protected())
	users.Post("/", h.Sync)
	users.Get("/:id", h.Get)
	users.Get("/:id/preferences", h.GetPreferences)
	users.Put("/:id/preferences", h.UpdatePreferences)
}

// Sync creates or updates the profile row for the authenticated user.
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	var req dto.SyncUserRequest
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

	user := model.User{
		ID:          userID,
		Email:       req.Email,
		FullName:    req.FullName,
		Preferences: req.Preferences,
	}
	if err := h.uc.Sync(&user); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to sync user",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success sync user",
		Data:    toUserDTO(&user),
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "user not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get user",
		Data:    toUserDTO(user),
	})
}

func (h *UserHandler) GetPreferences(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "user not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get preferences",
		Data:    fiber.Map{"preferences": user.Preferences},
	})
}

func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
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

	user, err := h.uc.UpdatePreferences(c.Params("id"), req.Preferences)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to update preferences",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update preferences",
		Data:    toUserDTO(user),
	})
}

func toUserDTO(u *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Preferences: u.Preferences,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
