package handlers

import (
	"github.com/CampusOrbit/mentoring_service/internal/api/rest/middleware"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/helper/utils"
	"github.com/CampusOrbit/mentoring_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MatchingHandler struct {
	svc       services.MatchingService
	threadSvc services.ThreadService
}

func NewMatchingHandler(svc services.MatchingService, threadSvc services.ThreadService) *MatchingHandler {
	return &MatchingHandler{svc: svc, threadSvc: threadSvc}
}

func (h *MatchingHandler) SetupRoutes(api fiber.Router) {
	api.Post("/recruitments/:recruitmentID/matchings", middleware.OperatorOnly(), h.CommitBatch)
	api.Get("/recruitments/:recruitmentID/rooms", h.ListRooms)

	rooms := api.Group("/rooms")
	rooms.Get("/:matchingID", h.RoomDetail)
	rooms.Post("/:matchingID/messages", h.PostMessage)
}

func (h *MatchingHandler) CommitBatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("recruitmentID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruitment id")
	}

	var req dto.CommitBatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	resp, err := h.svc.CommitBatch(uint(id), req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *MatchingHandler) ListRooms(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("recruitmentID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruitment id")
	}

	limit := ctx.QueryInt("limit")
	offset := ctx.QueryInt("offset")

	resp, err := h.threadSvc.ListRooms(uint(id), limit, offset)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *MatchingHandler) RoomDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("matchingID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid matching id")
	}

	resp, err := h.threadSvc.RoomDetail(uint(id))
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *MatchingHandler) PostMessage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("matchingID")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid matching id")
	}

	var req dto.PostMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	accountID, ok := ctx.Locals("accountID").(uint)
	if !ok || accountID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.threadSvc.PostMessage(accountID, uint(id), req); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "message posted")
}
