// Package authz modela el contexto de autorización explícito de cada petición:
// quién es el usuario, a qué cliente (tenant) pertenece y qué permisos tiene.
// Se construye una vez a partir del JWT y se pasa hacia abajo; nada lee permisos
// de estado global.
package authz

import "sort"

// Códigos de permiso emitidos por el backend (los mismos que usa el sidebar de la consola).
const (
	PermInventoryView      = "INVENTORY_VIEW"
	PermStockInManage      = "STOCK_IN_MANAGE"
	PermStockOutManage     = "STOCK_OUT_MANAGE"
	PermLowStockView       = "LOW_STOCK_VIEW"
	PermReportView         = "REPORT_VIEW"
	PermSupplierView       = "SUPPLIER_VIEW"
	PermRoleManage         = "ROLE_MANAGE"
	PermSystemSettingsEdit = "SYSTEM_SETTINGS_EDIT"
	PermViewLogs           = "VIEW_LOGS"
)

// Principal usuario autenticado de la petición.
// Token es el bearer original; se reenvía al backend de inventario.
type Principal struct {
	UserID      string
	CustomerID  string
	Roles       []string
	Token       string
	permissions map[string]struct{}
}

// NewPrincipal construye el principal con su conjunto de permisos.
func NewPrincipal(userID, customerID, token string, roles, permissions []string) *Principal {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return &Principal{
		UserID:      userID,
		CustomerID:  customerID,
		Roles:       roles,
		Token:       token,
		permissions: set,
	}
}

// Has indica si el principal tiene el permiso. Un principal nil no tiene ninguno.
func (p *Principal) Has(perm string) bool {
	if p == nil {
		return false
	}
	_, ok := p.permissions[perm]
	return ok
}

// HasAny indica si tiene al menos uno de los permisos.
func (p *Principal) HasAny(perms ...string) bool {
	for _, perm := range perms {
		if p.Has(perm) {
			return true
		}
	}
	return false
}

// Permissions devuelve los permisos ordenados; lo usa el log de accesos denegados.
func (p *Principal) Permissions() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.permissions))
	for perm := range p.permissions {
		out = append(out, perm)
	}
	sort.Strings(out)
	return out
}
