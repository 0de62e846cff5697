package domain

import "strings"

const (
	// AuthorityDefault is granted when a user record carries no role.
	AuthorityDefault = "ROLE_USER"

	authorityPrefix = "ROLE_"
)

// User models a registered account. Email is the unique login identifier and
// doubles as the token subject; matching is exact, no case normalization.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
}

// DisplayName returns the user-facing name shown in auth responses.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Authority projects the optional role into a single authority label:
// "ROLE_" + uppercased role name, or the default when no role is attached.
func (u *User) Authority() string {
	if u.Role == "" {
		return AuthorityDefault
	}
	return authorityPrefix + strings.ToUpper(u.Role)
}

// AuthResult is returned by login and registration. It never carries the
// credential hash.
type AuthResult struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Identity is the minimal projection returned by token validation.
type Identity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Authority string `json:"-"`
}
