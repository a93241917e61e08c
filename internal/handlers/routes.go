package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
)

// RegisterRoutes mounts the API under /v1. Reads need a session; writes to
// the cadastro and attendance confirmations need a servant.
func RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	v1.GET("/health", HealthCheck)
	v1.GET("/labels", GetLabels)
	v1.POST("/auth/login", Login)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(), middleware.AuditMiddleware())
	{
		authed.POST("/auth/logout", Logout)
		authed.GET("/auth/me", Me)

		authed.GET("/criancas", ListCriancas)
		authed.GET("/criancas/:id", GetCrianca)
		authed.GET("/responsaveis", ListResponsaveis)
		authed.GET("/responsaveis/:id", GetResponsavel)
		authed.GET("/tios", ListTios)
		authed.GET("/tios/:id", GetTio)
		authed.GET("/cultos", ListCultos)
		authed.GET("/cultos/:id", GetCulto)
		authed.GET("/cultos/:id/presencas", GetPresencas)
		authed.GET("/dashboard/stats", GetDashboardStats)

		// drop-off and pick-up may be started from a guardian's device
		authed.POST("/checkin", RequestCheckIn)
		authed.POST("/checkout", RequestCheckOut)
		authed.POST("/photos", UploadPhoto)
		authed.GET("/photos/:id", GetPhoto)
	}

	servants := authed.Group("")
	servants.Use(middleware.RequireServant())
	{
		servants.POST("/criancas", CreateCrianca)
		servants.PUT("/criancas/:id", UpdateCrianca)
		servants.DELETE("/criancas/:id", DeleteCrianca)
		servants.POST("/criancas/:id/responsaveis/:responsavelId", AttachResponsavel)
		servants.DELETE("/criancas/:id/responsaveis/:responsavelId", DetachResponsavel)
		servants.POST("/criancas/:id/tios/:tioId", AttachTio)
		servants.DELETE("/criancas/:id/tios/:tioId", DetachTio)

		servants.POST("/responsaveis", CreateResponsavel)
		servants.PUT("/responsaveis/:id", UpdateResponsavel)
		servants.DELETE("/responsaveis/:id", DeleteResponsavel)

		servants.POST("/tios", CreateTio)
		servants.PUT("/tios/:id", UpdateTio)
		servants.DELETE("/tios/:id", DeleteTio)

		servants.POST("/cultos", CreateCulto)
		servants.PUT("/cultos/:id", UpdateCulto)
		servants.DELETE("/cultos/:id", DeleteCulto)

		servants.POST("/checkin/confirm", ConfirmCheckIn)
		servants.POST("/checkin/cancel", CancelCheckIn)
		servants.POST("/checkout/confirm", ConfirmCheckOut)
	}
}
