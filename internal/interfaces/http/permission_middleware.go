package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
)

// RequirePermission exige un permiso concreto. Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay principal en el contexto.
//   - 403 si el principal no tiene el permiso.
func RequirePermission(perm string) fiber.Handler {
	return RequireAnyPermission(perm)
}

// RequireAnyPermission deja pasar si el principal tiene al menos uno de los permisos.
func RequireAnyPermission(perms ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "principal no encontrado en el contexto",
			})
		}
		if !p.HasAny(perms...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "requiere permiso: " + strings.Join(perms, " o "),
			})
		}
		return c.Next()
	}
}
