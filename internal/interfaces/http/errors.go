package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain"
)

// LocalError guarda el error interno para que lo registre RequestLogger.
const LocalError = "error"

var conflictCodes = []struct {
	err  error
	code string
}{
	{domain.ErrAlreadyClaimed, "ALREADY_CLAIMED"},
	{domain.ErrDuplicateFavorite, "DUPLICATE_FAVORITE"},
	{domain.ErrPlanLimitReached, "PLAN_LIMIT_REACHED"},
	{domain.ErrInsufficientStock, "INSUFFICIENT_STOCK"},
}

// respondError traduce un error de dominio a status y dto.ErrorResponse.
// Los fallos de almacenamiento no exponen su causa.
func respondError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Message()
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	case domain.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	case domain.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
	case domain.KindConflict:
		code := "CONFLICT"
		for _, cc := range conflictCodes {
			if errors.Is(err, cc.err) {
				code = cc.code
				break
			}
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: code, Message: msg})
	default:
		c.Locals(LocalError, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
