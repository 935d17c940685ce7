package utils

import (
	"errors"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": msg})
}

// ResponseDomainError renders a domain failure as {code, message} with the
// HTTP status implied by the code. Commit failures additionally carry the
// 1-based index of the assignment that failed.
func ResponseDomainError(ctx *fiber.Ctx, err error) error {
	body := fiber.Map{}

	var assignErr *domain.AssignmentError
	if errors.As(err, &assignErr) {
		body["assignment_index"] = assignErr.Index
	}

	var domErr *domain.Error
	if errors.As(err, &domErr) {
		body["code"] = domErr.Code
		body["message"] = domErr.Message
		return ctx.Status(statusForCode(domErr.Code)).JSON(body)
	}

	body["code"] = "INTERNAL"
	body["message"] = err.Error()
	return ctx.Status(fiber.StatusInternalServerError).JSON(body)
}

func statusForCode(code string) int {
	switch code {
	case "RECRUITMENT_NOT_FOUND", "APPLICATION_NOT_FOUND", "MATCHING_NOT_FOUND",
		"MENTEE_APP_NOT_FOUND", "MENTOR_APP_NOT_FOUND":
		return fiber.StatusNotFound
	case "BATCH_ALREADY_COMMITTED", "REVIEW_STATE_INVALID", "APPLICATION_ALREADY_EXISTS",
		"RECRUITMENT_NOT_OPEN":
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
