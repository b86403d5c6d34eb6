package authz

// NavItem entrada del menú lateral de la consola.
type NavItem struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Permission string `json:"permission,omitempty"` // vacío = visible para todos
}

var sidebar = []NavItem{
	{Name: "Dashboard", Path: "/app/dashboard"},
	{Name: "Inventory", Path: "/app/inventory", Permission: PermInventoryView},
	{Name: "Stock In", Path: "/app/stock-in", Permission: PermStockInManage},
	{Name: "Stock Out", Path: "/app/stock-out", Permission: PermStockOutManage},
	{Name: "Low Stock", Path: "/app/low-stock", Permission: PermLowStockView},
	{Name: "Reports", Path: "/app/reports", Permission: PermReportView},
	{Name: "Supplier", Path: "/app/supplier", Permission: PermSupplierView},
	{Name: "User Roles", Path: "/app/user-roles", Permission: PermRoleManage},
	{Name: "Settings", Path: "/app/settings", Permission: PermSystemSettingsEdit},
	{Name: "Logs", Path: "/app/logs", Permission: PermViewLogs},
}

// NavigationFor devuelve las entradas del sidebar visibles para el principal, en orden.
func NavigationFor(p *Principal) []NavItem {
	out := make([]NavItem, 0, len(sidebar))
	for _, item := range sidebar {
		if item.Permission == "" || p.Has(item.Permission) {
			out = append(out, item)
		}
	}
	return out
}
