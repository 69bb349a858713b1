package constants

// Role user mengikuti vocabulary direktori user.
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleStaff   = "STAFF"
)

var AllRoles = []string{
	RoleAdmin,
	RoleStudent,
	RoleStaff,
}
