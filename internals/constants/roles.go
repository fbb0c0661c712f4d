package constants

// Application roles. Admins manage case records and accounts; regular
// users get the self-service views only.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var AllowedRoles = []string{RoleAdmin, RoleUser}
