package handler

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/dto"
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc *usecase.MatchingUsecase
}

func NewMatchHandler(uc *usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	users := app.Group("/users", auth.Protected())
	users.Get("/:id/recommendations", h.Get)
	users.Post("/:id/recommendations/refresh", middleware.RateLimiter(2, 1*time.Minute), h.Refresh)
}

// Get serves the persisted result set, grouped back into section order.
func (h *MatchHandler) Get(c *fiber.Ctx) error {
	userID := c.Params("id")
	recs, err := h.uc.GetStored(userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "recommendations not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get recommendations",
		Data:    h.toResponse(userID, recs),
	})
}

// Refresh reruns the pipeline inline for one user. Rate limited ketat karena
// satu refresh = scoring satu pool penuh.
func (h *MatchHandler) Refresh(c *fiber.Ctx) error {
	userID := c.Params("id")
	if _, err := h.uc.RefreshUser(userID); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to refresh recommendations",
		}, err)
	}

	recs, err := h.uc.GetStored(userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load refreshed recommendations",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success refresh recommendations",
		Data:    h.toResponse(userID, recs),
	})
}

func (h *MatchHandler) toResponse(userID string, recs []model.Recommendation) dto.RecommendationResponseDTO {
	bySection := make(map[string][]dto.RecommendationItemDTO)
	for _, r := range recs {
		bySection[r.Section] = append(bySection[r.Section], dto.RecommendationItemDTO{
			JobKey:     r.JobKey,
			Score:      r.Score,
			Category:   r.Category,
			Location:   r.Location,
			Position:   r.Position,
			IsFallback: r.IsFallback,
		})
	}
	resp := dto.RecommendationResponseDTO{
		UserID: userID,
		Total:  len(recs),
	}
	for _, name := range h.uc.SectionOrder() {
		resp.Sections = append(resp.Sections, dto.RecommendationSectionDTO{
			Name: name,
			Jobs: bySection[name],
		})
	}
	return resp
}
