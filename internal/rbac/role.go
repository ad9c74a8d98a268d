// Package rbac implements the gallery's role model and permission gate.
//
// The API predates this rewrite; the two-letter role codes and the
// 401-on-denial convention are kept for wire compatibility.
package rbac

// Role is an enumerated capability tier attached to a user account.
type Role string

const (
	RoleManager  Role = "MA"
	RoleStaff    Role = "ST"
	RoleEducator Role = "ED"
	RoleVisitor  Role = "VI"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleStaff, RoleEducator, RoleVisitor:
		return true
	}
	return false
}
