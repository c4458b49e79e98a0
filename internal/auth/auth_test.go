package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pev-registry-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Jordan Reyes",
		Email:     "jordan.reyes@example.com",
		Phone:     "+1-555-0123",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-signing-key")
	user := testUser()

	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "pev-registry-backend", claims.Issuer)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-signing-key")

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("rejects wrong signing key", func(t *testing.T) {
		other := NewService("a-different-key")
		token, err := other.GenerateToken(testUser())
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		now := time.Now()
		claims := &Claims{
			UserID: uuid.New().String(),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.Error(t, err)
	})
}

func TestSubjectIDFallback(t *testing.T) {
	t.Run("falls back to sub", func(t *testing.T) {
		userID := uuid.New()
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
		}

		id, err := claims.SubjectID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		claims := &Claims{UserID: "not-a-uuid"}

		_, err := claims.SubjectID()
		assert.Error(t, err)
	})
}

// buildRouter wires the given middleware in front of a probe handler that
// reports whether an identity was attached.
func buildRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", handler, func(c *gin.Context) {
		id, err := CurrentUserID(c)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "user_id": id.String()})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	service := NewService("test-signing-key")
	middleware := NewMiddleware(service)
	router := buildRouter(middleware.RequireAuth())

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/probe", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Token abc")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		user := testUser()
		token, err := service.GenerateToken(user)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, user.ID.String(), body["user_id"])
	})
}

func TestOptionalAuth(t *testing.T) {
	service := NewService("test-signing-key")
	middleware := NewMiddleware(service)
	router := buildRouter(middleware.OptionalAuth())

	t.Run("no header proceeds anonymously", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/probe", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("bad token proceeds anonymously", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		user := testUser()
		token, err := service.GenerateToken(user)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, user.ID.String(), body["user_id"])
	})
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, err := CurrentUserID(c)
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "a-plain-string")

		_, err := CurrentUserID(c)
		assert.Error(t, err)
	})

	t.Run("present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		userID := uuid.New()
		c.Set("user_id", userID)

		id, err := CurrentUserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
	})
}
