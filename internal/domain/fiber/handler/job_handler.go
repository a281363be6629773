package handler

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/dto"
	"github.com/fadilmartias/jobmatch/internal/middleware"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/fadilmartias/jobmatch/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App, auth *middleware.AuthMiddleware) {
	jobs := app.Group("/jobs")
	jobs.Get("/", h.List)
	jobs.Get("/:id", h.Get)
	jobs.Get("/:id/similar", h.Similar)
	jobs.Post("/", auth.Protected(), middleware.RateLimiter(10, 1*time.Minute), h.Create)
	jobs.Put("/:id", auth.Protected(), h.Update)
	jobs.Delete("/:id", auth.Protected(), auth.RequireRole("service_role"), h.Delete)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
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

	employerID, err := uuid.Parse(req.EmployerID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "employer_id is not a valid uuid",
		}, err)
	}

	job := model.Job{
		EmployerID:    employerID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		LocationScore: req.LocationScore,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		FlexibleHours: req.FlexibleHours,
		WeekendWork:   req.WeekendWork,
	}
	if err := h.uc.Create(&job); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    toJobDTO(&job),
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	filter := repository.JobFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   c.Query("status", "active"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	jobs, pagination, err := h.uc.List(filter)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}
	data := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		data[i] = toJobDTO(&jobs[i])
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get jobs",
		Data:       data,
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    toJobDTO(job),
	})
}

func (h *JobHandler) Similar(c *fiber.Ctx) error {
	jobs, err := h.uc.Similar(c.Params("id"), c.QueryInt("top_k", 10))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "failed to find similar jobs",
		}, err)
	}
	data := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		data[i] = toJobDTO(&jobs[i])
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar jobs",
		Data:    data,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		}, err)
	}

	var req dto.UpdateJobRequest
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

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Category != "" {
		job.Category = req.Category
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.LocationScore > 0 {
		job.LocationScore = req.LocationScore
	}
	if req.SalaryMin > 0 {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax > 0 {
		job.SalaryMax = req.SalaryMax
	}
	if req.FlexibleHours != nil {
		job.FlexibleHours = *req.FlexibleHours
	}
	if req.WeekendWork != nil {
		job.WeekendWork = *req.WeekendWork
	}
	if req.Status != "" {
		job.Status = req.Status
	}

	if err := h.uc.Update(job); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update job",
		Data:    toJobDTO(job),
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to delete job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete job",
	})
}

func toJobDTO(j *model.Job) dto.JobDTO {
	return dto.JobDTO{
		ID:            j.ID,
		EmployerID:    j.EmployerID,
		Title:         j.Title,
		Category:      j.Category,
		Location:      j.Location,
		SalaryMin:     j.SalaryMin,
		SalaryMax:     j.SalaryMax,
		FlexibleHours: j.FlexibleHours,
		WeekendWork:   j.WeekendWork,
		Popularity:    j.Popularity,
		Status:        j.Status,
		CreatedAt:     j.CreatedAt,
	}
}
