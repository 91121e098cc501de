package domain

// Claims is the minimal authenticated principal carried inside a session
// token: a snapshot of the identity taken at authentication time.
type Claims struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Role           Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccess reports whether the principal may mutate a resource owned by
// ownerID: the owner themselves, or any admin.
func (c Claims) CanAccess(ownerID string) bool {
	return c.UserID == ownerID || c.IsAdmin()
}

// RequireAccess is CanAccess for mutation boundaries: it returns
// ErrForbidden instead of a boolean.
func (c Claims) RequireAccess(ownerID string) error {
	if !c.CanAccess(ownerID) {
		return ErrForbidden
	}
	return nil
}

// RequireAuthenticated guards endpoints that need a signed-in principal.
// Token-level failures (missing, malformed, expired, revoked) all surface
// here as the single ErrUnauthenticated.
func RequireAuthenticated(c *Claims) (*Claims, error) {
	if c == nil || c.UserID == "" {
		return nil, ErrUnauthenticated
	}
	return c, nil
}
