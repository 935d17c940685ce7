package handlers

import (
	"github.com/CampusOrbit/mentoring_service/internal/api/rest/middleware"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/helper/utils"
	"github.com/CampusOrbit/mentoring_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecruitmentHandler struct {
	svc    services.RecruitmentService
	appSvc services.ApplicationService
}

func NewRecruitmentHandler(svc services.RecruitmentService, appSvc services.ApplicationService) *RecruitmentHandler {
	return &RecruitmentHandler{svc: svc, appSvc: appSvc}
}

func (h *RecruitmentHandler) SetupRoutes(api fiber.Router) {
	rec := api.Group("/recruitments")

	rec.Get("/", h.List)
	rec.Get("/:recruitmentID", h.Detail)
	rec.Get("/:recruitmentID/applications", h.ListApplications)

	rec.Post("/", middleware.OperatorOnly(), h.Create)
	rec.Get("/:recruitmentID/preview", middleware.OperatorOnly(), h.Preview)
}

func (h *RecruitmentHandler) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRecruitmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	operatorID, _ := ctx.Locals("accountID").(uint)
	resp, err := h.svc.Create(operatorID, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *RecruitmentHandler) List(ctx *fiber.Ctx) error {
	var query dto.ListRecruitmentQuery
	if err := ctx.QueryParser(&query); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query")
	}

	resp, err := h.svc.List(query)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *RecruitmentHandler) Detail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("recruitmentID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruitment id")
	}

	resp, err := h.svc.Detail(uint(id))
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *RecruitmentHandler) Preview(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("recruitmentID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruitment id")
	}

	resp, err := h.svc.Preview(uint(id))
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *RecruitmentHandler) ListApplications(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("recruitmentID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruitment id")
	}

	var query dto.ListApplicationQuery
	if err := ctx.QueryParser(&query); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query")
	}

	resp, err := h.appSvc.List(uint(id), query)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}
