package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	_ = logging.InitLogger()
	gin.SetMode(gin.TestMode)
}

// setupAuth installs an auth service with one servant and one parent and
// returns their tokens
func setupAuth(t *testing.T) (servant, parent string) {
	t.Helper()
	services.AuthServiceInstance = services.NewAuthService(
		repository.NewMemoryStore[models.Usuario]("usuarios", "email"),
		services.AuthOptions{Secret: "middleware-test-secret-0123456789", Issuer: "test", TTL: time.Hour, BcryptCost: bcrypt.MinCost},
	)

	ctx := context.Background()
	token := func(email string, tipo models.TipoUsuario) string {
		_, err := services.AuthServiceInstance.CreateUser(ctx, email, "senha123", "Teste", tipo)
		require.NoError(t, err)
		resp, err := services.AuthServiceInstance.SignIn(ctx, email, "senha123")
		require.NoError(t, err)
		return resp.Token
	}
	return token("servo@igreja.org", models.TipoServants), token("pai@familia.com", models.TipoParents)
}

func authRouter(extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware())
	router.Use(extra...)
	router.GET("/test", func(c *gin.Context) {
		uid, err := GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid, "servant": IsServant(c)})
	})
	return router
}

func doGet(router http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Success(t *testing.T) {
	servant, _ := setupAuth(t)

	w := doGet(authRouter(), "Bearer "+servant)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"servant":true`)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	setupAuth(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"missing token", "Bearer "},
		{"garbage token", "Bearer abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(authRouter(), tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestRequireServant(t *testing.T) {
	servant, parent := setupAuth(t)
	router := authRouter(RequireServant())

	assert.Equal(t, http.StatusOK, doGet(router, "Bearer "+servant).Code)
	assert.Equal(t, http.StatusForbidden, doGet(router, "Bearer "+parent).Code)
}

func TestRequireServant_WithoutClaims(t *testing.T) {
	router := gin.New()
	router.GET("/test", RequireServant(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "").Code)
}

func TestGetClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetClaims(c)
	assert.ErrorIs(t, err, ErrClaimsNotFound)
	assert.False(t, IsServant(c))
	assert.False(t, IsParent(c))

	c.Set(ClaimsKey, "not claims")
	_, err = GetClaims(c)
	assert.Error(t, err)

	c.Set(ClaimsKey, &models.SessionClaims{Tipo: models.TipoParents})
	claims, err := GetClaims(c)
	require.NoError(t, err)
	assert.True(t, claims.IsParent())
	assert.True(t, IsParent(c))
	assert.False(t, IsServant(c))
}
