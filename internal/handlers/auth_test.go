package handlers

import (
	"net/http"
	"testing"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	a := newAPITest(t)

	w := a.do(http.MethodPost, "/v1/auth/login", "", models.LoginRequest{Email: "servo@igreja.org", Password: "senha123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.LoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.TipoServants, resp.User.Tipo)

	w = a.do(http.MethodGet, "/v1/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.UsuarioResponse](t, w)
	assert.Equal(t, "servo@igreja.org", me.Email)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestLogin_Rejects(t *testing.T) {
	a := newAPITest(t)

	w := a.do(http.MethodPost, "/v1/auth/login", "", models.LoginRequest{Email: "servo@igreja.org", Password: "errada1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, models.ErrInvalidCredentials.Error(), decode[ErrorResponse](t, w).Error)

	w = a.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "nao-e-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ValidationErrorResponse](t, w)
	fields := map[string]bool{}
	for _, d := range resp.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
}

func TestLogout(t *testing.T) {
	a := newAPITest(t)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodPost, "/v1/auth/logout", a.parent, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/v1/auth/logout", "", nil).Code)
}
