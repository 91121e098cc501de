package domain

import "time"

// Role is the capability level of a user. Standard users pass authorization
// only for resources they own; admins pass every ownership check.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// User is the persisted identity record: credentials plus profile. The
// password hash is never serialized; plaintext passwords are never stored.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Gender         string    `json:"gender,omitempty"`
	ContactNo      string    `json:"contact_no,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Claims returns the authenticated-principal snapshot derived from the
// user's current field values. Later mutations of the user do not change
// claims that were already issued.
func (u *User) Claims() Claims {
	return Claims{
		UserID:         u.ID,
		Email:          u.Email,
		Name:           u.Name,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
	}
}
