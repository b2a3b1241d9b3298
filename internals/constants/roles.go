package constants

// Role enum. Exactly one role row is created per identity by the
// provisioning flow; elsewhere the schema allows more than one.
const (
	RoleAdmin       = "admin"
	RoleBranchAdmin = "branch_admin"
	RoleTeacher     = "teacher"
	RoleSales       = "sales"
	RoleSupport     = "support"
	RoleStudent     = "student"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleBranchAdmin,
		RoleTeacher,
		RoleSales,
		RoleSupport,
		RoleStudent,
	}

	// Roles that require an employees row (and therefore a branch_id).
	EmployeeRoles = []string{
		RoleBranchAdmin,
		RoleTeacher,
		RoleSales,
		RoleSupport,
	}

	// Staff allowed to work the leads pipeline.
	LeadRoles = []string{
		RoleAdmin,
		RoleBranchAdmin,
		RoleSales,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleBranchAdmin,
		RoleTeacher,
		RoleSales,
		RoleSupport,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	BranchAdminAndAbove = []string{
		RoleAdmin,
		RoleBranchAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsEmployeeRole(role string) bool {
	for _, r := range EmployeeRoles {
		if r == role {
			return true
		}
	}
	return false
}
