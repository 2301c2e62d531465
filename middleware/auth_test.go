package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autohub/config"
	"autohub/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, role models.UserRole, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":  uint(7),
		"username": "tester",
		"email":    "tester@example.com",
		"role":     role,
		"exp":      time.Now().Add(expiresIn).Unix(),
		"iat":      time.Now().Unix(),
		"nbf":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)
	return token
}

func testRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		role, _ := c.Get("role")
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"role": role, "email": email})
	})
	router.GET("/secure", chain...)
	return router
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/secure", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleUser, -time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareResolvesIdentity(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleStaff, time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"staff"`)
	assert.Contains(t, w.Body.String(), `"email":"tester@example.com"`)
}

func TestAuthMiddlewareNormalizesUnknownRole(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "superuser", time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireRoleForbidsOrdinaryUser(t *testing.T) {
	router := testRouter(RequireRole(models.RoleStaff, models.RoleAdmin))

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleUser, time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAdmitsStaff(t *testing.T) {
	router := testRouter(RequireRole(models.RoleStaff, models.RoleAdmin))

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleStaff, time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		_, authed := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleUser, time.Hour))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":true`)
}
