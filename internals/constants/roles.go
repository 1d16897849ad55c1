package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleParent = "parent"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminOnly = []string{
		RoleAdmin,
	}
)
