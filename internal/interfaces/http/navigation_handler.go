package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
)

// GetNavigation godoc
// @Summary      Entradas del sidebar visibles para el usuario
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   authz.NavItem
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me/navigation [get]
func GetNavigation(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	return c.JSON(authz.NavigationFor(p))
}
