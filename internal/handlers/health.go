package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/config"
	"github.com/safekids/app-safekids/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// HealthResponse reports the state of the service dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

const healthPingTimeout = 2 * time.Second

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a conexão com MongoDB e Redis.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável"
// @Failure 503 {object} HealthResponse "Alguma dependência indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	h, end := startHandler(c, "HealthCheck", attribute.String("service", "health"))
	defer end()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	check := func(name string, ping func(ctx context.Context) error) {
		ctx, span := utils.TraceEndpointStep(h.ctx, "ping_"+name, utils.Attrs{"service.name": name})
		defer span.End()

		ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			utils.RecordErrorInSpan(span, err, utils.Attrs{"service.operation": "ping"})
			h.logger.Warn("dependency unhealthy", zap.String("dependency", name), zap.Error(err))
			health.Status = "unhealthy"
			health.Services[name] = "unhealthy"
			return
		}
		health.Services[name] = "healthy"
	}

	check("mongodb", func(ctx context.Context) error {
		if config.MongoDB == nil {
			return errNotConnected
		}
		return config.MongoDB.Client().Ping(ctx, nil)
	})
	check("redis", func(ctx context.Context) error {
		if config.Redis == nil {
			return errNotConnected
		}
		return config.Redis.Ping(ctx).Err()
	})

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	h.ok(status, health)
}
