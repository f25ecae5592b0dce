package auth

// Identity is the authenticated principal. The system has exactly
// one of these, sourced from configuration at startup.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

const RoleAdmin = "admin"
