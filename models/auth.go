package models

// Role is the two-valued session role flag. Absent means signed out.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// SignInRequest carries the sign-in form. Credentials are accepted but never
// verified against a store: sign-in always succeeds after a simulated delay.
type SignInRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the registration form. Like sign-in, registration
// always succeeds; nothing is persisted.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthSession is the issued in-memory session: a bearer token carrying the
// role claim, reset on reload, backed by no credential store.
type AuthSession struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}
