package auth

import (
	"net/http"
	"strings"

	apperrors "pev-registry-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.authenticate(c)
		if !ok {
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setUserContext(c, userID, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them.
// Requests without a usable token proceed anonymously.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			c.Next()
			return
		}

		setUserContext(c, userID, claims)
		c.Next()
	}
}

func (m *Middleware) authenticate(c *gin.Context) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return nil, false
	}

	claims, err := m.service.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		c.Abort()
		return nil, false
	}
	return claims, true
}

func setUserContext(c *gin.Context, userID uuid.UUID, claims *Claims) {
	c.Set("user_id", userID)
	c.Set("email", claims.Email)
	c.Set("name", claims.Name)
	c.Set("auth_claims", claims)
}

// CurrentUserID extracts the authenticated user id from the request context
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperrors.ErrMissingCallerIdentity
	}

	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.ErrInvalidCallerIdentity
	}
	return id, nil
}

// CurrentUserEmail extracts the authenticated user's email from the request context
func CurrentUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get("email")
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
