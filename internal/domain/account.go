package domain

import "time"

// Role classifies what an account is allowed to manage.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is the domain model for a credentialed operator of the admin panel.
type Account struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicAccount is the projection safe to return to callers. It never carries
// the password hash.
type PublicAccount struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Public returns the caller-facing projection of the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// AccountUpdate carries the fields of a partial account update. Nil fields
// are left untouched by the store.
type AccountUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// Empty reports whether the update would change nothing.
func (u AccountUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil
}
