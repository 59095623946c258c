package middleware

import (
	"net/http"
	"strings"

	"nextu/internal/shared/config"
	"nextu/internal/shared/session"
	"nextu/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// JWTAuth creates a JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig verifies the bearer token and builds the request Session
// from its claims. Token issuance belongs to the identity service; this API
// only verifies.
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header is required", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})

		if err != nil || !token.Valid {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid token claims", nil, nil)
			c.Abort()
			return
		}

		if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid token type", nil, nil)
			c.Abort()
			return
		}

		sess := sessionFromClaims(claims)
		if !sess.Role.Valid() {
			response.RespondJSON(c, "error", http.StatusForbidden, "unknown console role", nil, nil)
			c.Abort()
			return
		}

		session.Set(c, sess)
		c.Next()
	}
}

func sessionFromClaims(claims jwt.MapClaims) *session.Session {
	sess := &session.Session{}

	if v, ok := claims["user_id"].(string); ok {
		sess.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		sess.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		sess.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		sess.Role = session.Role(v)
	}
	// JSON numbers decode as float64
	if v, ok := claims["location_id"].(float64); ok {
		sess.LocationID = int64(v)
	}
	if v, ok := claims["property_name"].(string); ok {
		sess.PropertyName = v
	}

	return sess
}

// RequireRoles checks that the session role is one of the required roles.
// Super-admin always passes.
func RequireRoles(requiredRoles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := session.FromContext(c)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "session not found in context", nil, nil)
			c.Abort()
			return
		}

		if sess.Role == session.RoleSuperAdmin || sess.HasAnyRole(requiredRoles...) {
			c.Next()
			return
		}

		response.RespondJSON(c, "error", http.StatusForbidden, "Insufficient permissions", nil, nil)
		c.Abort()
	}
}

// RequireSuperAdmin restricts a route to the super-admin role.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRoles(session.RoleSuperAdmin)
}
