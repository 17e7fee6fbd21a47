// Package auth holds the clinic's static credential table, the role tiers
// that gate UI sections, and the in-memory session registry.
package auth

import "errors"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleStaff  Role = "Staff"
	RoleViewer Role = "Viewer"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords;
// the login form shows the same message for either.
var ErrInvalidCredentials = errors.New("invalid credentials")

type user struct {
	Password string
	Role     Role
}

// users is the clinic's fixed account table. Plain-text passwords, no
// lockout, no rate limiting: this guards a trusted front-desk machine,
// not the internet.
var users = map[string]user{
	"admin":   {Password: "surokkha123", Role: RoleAdmin},
	"staff1":  {Password: "staffpass", Role: RoleStaff},
	"viewer1": {Password: "viewonly", Role: RoleViewer},
}

// Check returns the role for an exact username/password match.
func Check(username, password string) (Role, error) {
	u, ok := users[username]
	if !ok || u.Password != password {
		return "", ErrInvalidCredentials
	}
	return u.Role, nil
}

// CanRecord reports whether the role may enter transactions and see the
// analytics panels.
func (r Role) CanRecord() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanManage reports whether the role may manage categories.
func (r Role) CanManage() bool {
	return r == RoleAdmin
}
