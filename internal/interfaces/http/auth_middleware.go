package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
	"github.com/jhoicas/Inventario-restock/pkg/jwt"
)

// LocalPrincipal key de Fiber Locals con el *authz.Principal de la petición.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el principal en c.Locals.
// El token original viaja dentro del principal para reenviarlo al backend.
// Con issuer no vacío se rechazan tokens emitidos por otro servicio.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, authz.NewPrincipal(id.UserID, id.CustomerID, tokenString, id.Roles, id.Permissions))
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth), o nil.
func GetPrincipal(c *fiber.Ctx) *authz.Principal {
	p, _ := c.Locals(LocalPrincipal).(*authz.Principal)
	return p
}
