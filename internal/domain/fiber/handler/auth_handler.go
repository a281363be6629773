package handler

import (
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	users *usecase.UserUsecase
}

func NewAuthHandler(users *usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	app.Get("/auth/me", auth.Protected(), h.Me)
}

// Me echoes the verified claims plus the local profile row, if synced.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	email, _ := c.Locals(middleware.LocalEmail).(string)
	role, _ := c.Locals(middleware.LocalRole).(string)

	data := fiber.Map{
		"id":    userID,
		"email": email,
		"role":  role,
	}
	if user, err := h.users.Get(userID); err == nil {
		data["profile"] = toUserDTO(user)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get identity",
		Data:    data,
	})
}
