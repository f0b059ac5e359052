package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
)

func keys(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func TestVisibleItems_PrivilegedRolesShareOneSet(t *testing.T) {
	want := []string{"dashboard", "employees", "departments", "leaves", "payroll", "reports"}

	for _, role := range []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleCEO, domainauth.RoleManager} {
		assert.Equal(t, want, keys(VisibleItems(role)), "role %s", role)
	}
}

func TestVisibleItems_Employee(t *testing.T) {
	got := VisibleItems(domainauth.RoleEmployee)

	// Exactly the two self-service items, in master-list order.
	require.Equal(t, []string{"dashboard", "my-leaves"}, keys(got))
	for _, it := range got {
		assert.NotEqual(t, "employees", it.Key)
		assert.NotEqual(t, "payroll", it.Key)
	}
}

func TestVisibleItems_UnknownRoleSeesNothing(t *testing.T) {
	assert.Empty(t, VisibleItems(domainauth.Role("GUEST")))
}

func TestVisibleItems_PreservesMasterOrder(t *testing.T) {
	master := keys(AllItems())
	visible := keys(VisibleItems(domainauth.RoleAdmin))

	// Visible items appear in the same relative order as the master list.
	idx := 0
	for _, k := range master {
		if idx < len(visible) && visible[idx] == k {
			idx++
		}
	}
	assert.Equal(t, len(visible), idx)
}

func TestAllItems_ReturnsCopy(t *testing.T) {
	a := AllItems()
	a[0].Key = "mutated"
	assert.Equal(t, "dashboard", AllItems()[0].Key)
}
