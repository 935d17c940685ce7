package middleware

import (
	"strings"

	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("accountID", claims.AccountID)
		ctx.Locals("claims", claims)
		return ctx.Next()
	}
}

// OperatorOnly gates review, commit and recruitment administration. The
// operator flag is asserted upstream by the identity service; this layer only
// honors it.
func OperatorOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("claims").(dto.AuthClaims)
		if !ok || claims.AccountID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		if !claims.Operator {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "operator only",
			})
		}
		return ctx.Next()
	}
}
