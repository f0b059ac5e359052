// Package nav defines the navigation model: the fixed master list of
// sidebar destinations and the role filter over it.
package nav

import domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"

// Item is a static navigation descriptor. Items are fixed at build time and
// never mutated at runtime.
type Item struct {
	Key   string
	Label string
	Icon  string
	Path  string
	Roles []domainauth.Role
}

// AllowsRole reports whether the item is visible to the given role.
func (i Item) AllowsRole(role domainauth.Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

var privileged = []domainauth.Role{
	domainauth.RoleAdmin,
	domainauth.RoleCEO,
	domainauth.RoleManager,
}

var anyAuthenticated = []domainauth.Role{
	domainauth.RoleAdmin,
	domainauth.RoleCEO,
	domainauth.RoleManager,
	domainauth.RoleEmployee,
}

// items is the master list. Order here is display order; VisibleItems never
// re-sorts.
var items = []Item{
	{Key: "dashboard", Label: "Dashboard", Icon: "📊", Path: "/", Roles: anyAuthenticated},
	{Key: "employees", Label: "Employees", Icon: "👥", Path: "/employees", Roles: privileged},
	{Key: "departments", Label: "Departments", Icon: "🏢", Path: "/departments", Roles: privileged},
	{Key: "leaves", Label: "Leave Mgmt", Icon: "📋", Path: "/leaves", Roles: privileged},
	{Key: "my-leaves", Label: "My Leaves", Icon: "🗓", Path: "/my-leaves", Roles: []domainauth.Role{domainauth.RoleEmployee}},
	{Key: "payroll", Label: "Payroll", Icon: "💰", Path: "/payroll", Roles: privileged},
	{Key: "reports", Label: "Reports", Icon: "📈", Path: "/reports", Roles: privileged},
}

// VisibleItems returns the navigation items visible to role, in master-list
// order. It is a pure function of role; callers query it fresh on every
// render.
func VisibleItems(role domainauth.Role) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.AllowsRole(role) {
			out = append(out, it)
		}
	}
	return out
}

// AllItems returns a copy of the master list, mainly for tests and the
// route table.
func AllItems() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
