package domain

// Role enumerates the roles an end-user can hold.
type Role string

const (
	RoleAgent  Role = "agent"
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
	RoleGuest  Role = "guest"
)

// User is the domain model for registered users. Users are seeded
// externally; the core never creates or deletes them. Only Active is
// expected to change after creation.
type User struct {
	ID     string
	Email  string
	Role   Role
	Active bool
}
