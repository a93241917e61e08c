package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
)

// GetDashboardStats godoc
// @Summary Estatísticas do painel
// @Description Totais de cadastros, cultos de hoje e check-ins e check-outs aguardando confirmação.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats "Estatísticas"
// @Failure 500 {object} ErrorResponse "Erro ao carregar dados"
// @Router /dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	h, end := startHandler(c, "GetDashboardStats", attribute.String("service", "dashboard"))
	defer end()

	if services.DashboardServiceInstance == nil {
		h.unavailable("dashboard")
		return
	}

	stats, err := services.DashboardServiceInstance.Stats(h.ctx)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, stats)
}

// GetLabels godoc
// @Summary Rótulos
// @Description Rótulos em português das salas e dos sexos usados pelo console.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.LabelsResponse "Rótulos"
// @Router /labels [get]
func GetLabels(c *gin.Context) {
	c.JSON(http.StatusOK, models.Labels())
}
