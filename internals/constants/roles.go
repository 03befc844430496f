package constants

import "fmt"

const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleTrainer    = "trainer"
	RoleStudent    = "student"
)

// Role error message templates
const (
	ErrOnlyStudentsCanAccess = "❌ Only students may access %s."
	ErrOnlyTrainersCanAccess = "❌ Only trainers, admins, or super-admins may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admins or super-admins may access %s."
	ErrOnlySuperAdminAccess  = "❌ Only the super-admin may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorTrainer(feature string) string {
	return fmt.Sprintf(ErrOnlyTrainersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTrainer,
		RoleAdmin,
		RoleSuperAdmin,
	}

	StaffRoles = []string{
		RoleTrainer,
		RoleAdmin,
		RoleSuperAdmin,
	}

	TrainerAndAbove = []string{
		RoleTrainer,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
