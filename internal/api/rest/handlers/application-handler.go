package handlers

import (
	"github.com/CampusOrbit/mentoring_service/internal/api/rest/middleware"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/helper/utils"
	"github.com/CampusOrbit/mentoring_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) SetupRoutes(api fiber.Router) {
	app := api.Group("/applications")

	app.Post("/", h.Submit)
	app.Get("/:applicationID", h.Detail)
	app.Post("/:applicationID/cancel", h.Cancel)

	app.Post("/:applicationID/approve", middleware.OperatorOnly(), h.Approve)
	app.Post("/:applicationID/reject", middleware.OperatorOnly(), h.Reject)
}

func (h *ApplicationHandler) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	accountID, ok := ctx.Locals("accountID").(uint)
	if !ok || accountID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.svc.Submit(ctx.Context(), accountID, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *ApplicationHandler) Detail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("applicationID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	resp, err := h.svc.Detail(uint(id))
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ApplicationHandler) Cancel(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("applicationID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	if err := h.svc.Cancel(uint(id)); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "application canceled")
}

func (h *ApplicationHandler) Approve(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("applicationID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	if err := h.svc.Approve(uint(id)); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "application approved")
}

func (h *ApplicationHandler) Reject(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("applicationID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var req dto.RejectApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.Reject(uint(id), req.Reason); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "application rejected")
}
