package session

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Role identifies a console role. The set mirrors the roles provisioned by
// the identity service.
type Role string

const (
	RoleSuperAdmin      Role = "super-admin"
	RoleAdmin           Role = "admin"
	RoleManager         Role = "manager"
	RoleStaffOnboarding Role = "staff-onboarding"
	RoleStaffContent    Role = "staff-content"
	RoleStaffServices   Role = "staff-services"
)

// Valid reports whether r is one of the known console roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager,
		RoleStaffOnboarding, RoleStaffContent, RoleStaffServices:
		return true
	}
	return false
}

// Session carries the authenticated operator's identity and location scope.
// It is built once by the auth middleware and passed through the request
// context; handlers never re-read ambient storage.
type Session struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	LocationID   int64  `json:"location_id"`
	PropertyName string `json:"property_name"`
}

const contextKey = "nextu_session"

var ErrNoSession = errors.New("no session in request context")

// Set stores the session on the gin context.
func Set(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session built by the auth middleware.
func FromContext(c *gin.Context) (*Session, error) {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil, ErrNoSession
	}
	s, ok := v.(*Session)
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// HasAnyRole reports whether the session role is one of the given roles.
func (s *Session) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
