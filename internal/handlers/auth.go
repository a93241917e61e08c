package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Login godoc
// @Summary Entrar
// @Description Autentica com email e senha e retorna o token de sessão.
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.LoginResponse "Sessão iniciada"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Email ou senha inválidos"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	h, end := startHandler(c, "Login", attribute.String("service", "auth"))
	defer end()

	var req models.LoginRequest
	if !h.bind(&req) {
		return
	}
	if services.AuthServiceInstance == nil {
		h.unavailable("auth")
		return
	}

	resp, err := services.AuthServiceInstance.SignIn(h.ctx, req.Email, req.Password)
	if err != nil {
		h.fail(err, msgInternal)
		return
	}
	h.ok(http.StatusOK, resp)
}

// Logout godoc
// @Summary Sair
// @Description O token é descartado pelo cliente; a rota existe para o console encerrar a sessão.
// @Tags auth
// @Security BearerAuth
// @Success 204 "Sessão encerrada"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	h, end := startHandler(c, "Logout", attribute.String("service", "auth"))
	defer end()

	if claims, err := middleware.GetClaims(c); err == nil {
		h.logger.Info("user signed out", zap.String("uid", claims.Subject))
	}
	h.ok(http.StatusNoContent, nil)
}

// Me godoc
// @Summary Usuário atual
// @Description Retorna a conta da sessão atual.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UsuarioResponse "Usuário autenticado"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 404 {object} ErrorResponse "Usuário não encontrado"
// @Router /auth/me [get]
func Me(c *gin.Context) {
	h, end := startHandler(c, "Me", attribute.String("service", "auth"))
	defer end()

	uid, ok := h.currentUID()
	if !ok {
		return
	}
	if services.AuthServiceInstance == nil {
		h.unavailable("auth")
		return
	}

	usuario, err := services.AuthServiceInstance.CurrentUser(h.ctx, uid)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, usuario.ToResponse())
}
