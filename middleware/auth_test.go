package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(handler gin.HandlerFunc, authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	handler(c)
	return c, w
}

func TestValidateTokenAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleCustomer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	c, w := runMiddleware(ValidateToken, token)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", c.GetString("user_id"))
	assert.Equal(t, models.RoleCustomer, c.GetString("role"))
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	c, w := runMiddleware(ValidateToken, "")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	c, w := runMiddleware(ValidateToken, token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "another-secret")

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	c, w := runMiddleware(ValidateToken, token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("role", models.RoleAdmin)
	RequireAdmin(c)
	assert.False(t, c.IsAborted())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set("role", models.RoleCustomer)
	RequireAdmin(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token claims at all
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RequireAdmin(c)
	assert.True(t, c.IsAborted())
}
