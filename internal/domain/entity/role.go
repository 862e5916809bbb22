package entity

// Staff role IDs carried in access-token claims. Accounts themselves are
// managed by the external identity service; the scheduler only authorizes
// against the role ID it finds in a validated token.
const (
	RoleIDAdmin    = 1
	RoleIDDoctor   = 2
	RoleIDNurse    = 3
	RoleIDEmployee = 4
)

// Role name constants
const (
	RoleAdmin    = "admin"
	RoleDoctor   = "doctor"
	RoleNurse    = "nurse"
	RoleEmployee = "employee"
)
