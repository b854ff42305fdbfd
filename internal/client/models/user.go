// Package models defines client-side data models shared by the API client,
// the local stores and the CLI.
package models

import (
	"strings"
	"time"
)

// User is the authenticated identity returned by the remote auth endpoint.
// The token is the opaque session credential persisted locally.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender,omitempty"`
	Image        string `json:"image,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// DisplayName joins first and last name, falling back to the username.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Initials returns up to two upper-case initials of the display name.
func (u User) Initials() string {
	parts := strings.Fields(u.DisplayName())
	if len(parts) == 0 {
		return ""
	}
	s := string([]rune(parts[0])[:1])
	if len(parts) > 1 {
		s += string([]rune(parts[len(parts)-1])[:1])
	}
	return strings.ToUpper(s)
}

// RegisterRequest carries the fields posted to the user creation endpoint.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisteredUser is the created-user payload. It carries no token: a newly
// registered user still has to log in.
type RegisteredUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProfileUpdate holds optional profile edits. Nil fields are left unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Bio       *string
}

// Apply returns a copy of u with the non-nil fields of p applied.
// Identity and credentials are never touched.
func (p ProfileUpdate) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		u.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	return u
}

// SessionStatus is the state of the authentication state machine.
type SessionStatus string

const (
	SessionUnknown         SessionStatus = "unknown"
	SessionChecking        SessionStatus = "checking"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// Session is the observable authentication state.
type Session struct {
	Status SessionStatus
	User   *User
	// Error is the last failure message; empty when there is none.
	Error string
	// ExpiresAt is the token expiry when the token carries one.
	ExpiresAt time.Time
}

// IsAuthenticated reports whether a user is logged in.
func (s Session) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated && s.User != nil
}

// IsLoading reports whether an auth operation is in flight.
func (s Session) IsLoading() bool {
	return s.Status == SessionChecking
}
