package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/observability"
	"go.uber.org/zap"
)

const (
	maxAuditBody = 4096

	// ResourceIDKey is the gin context key a handler sets to the id of the
	// record a write created or touched, when the route has no :id
	ResourceIDKey = "audit_resource_id"
)

// SetResourceID names the record a write affected in its audit line
func SetResourceID(c *gin.Context, id string) {
	c.Set(ResourceIDKey, id)
}

func resourceID(c *gin.Context) string {
	if id := c.GetString(ResourceIDKey); id != "" {
		return id
	}
	return c.Param("id")
}

// AuditMiddleware logs every successful write with who made it
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch && method != http.MethodDelete {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/v1/health") || strings.HasPrefix(path, "/v1/auth/login") {
			c.Next()
			return
		}

		var body map[string]interface{}
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			raw, _ := io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody+1))
			rest, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), bytes.NewReader(rest)))
			if len(raw) <= maxAuditBody {
				_ = json.Unmarshal(raw, &body)
			}
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		fields := []zap.Field{
			zap.String("action", auditAction(method)),
			zap.String("resource", auditResource(path)),
			zap.String("resource_id", resourceID(c)),
			zap.String("endpoint", path),
			zap.Int("status", status),
			zap.String("ip_address", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
		}
		if claims, err := GetClaims(c); err == nil {
			fields = append(fields,
				zap.String("uid", claims.Subject),
				zap.String("tipo", string(claims.Tipo)))
		}
		if body != nil {
			fields = append(fields, zap.Any("body", observability.MaskSensitiveData(body)))
		}
		observability.Logger().Info("audit", fields...)
	}
}

func auditAction(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodDelete:
		return "delete"
	default:
		return "update"
	}
}

// auditResource names the entity a path writes to
func auditResource(path string) string {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(path, "/v1/"), "/"), "/")
	switch {
	case len(parts) == 0 || parts[0] == "":
		return "unknown"
	case parts[0] == "criancas" && len(parts) >= 3:
		// /criancas/:id/responsaveis/:rid and /criancas/:id/tios/:tid
		return parts[0] + "." + parts[2]
	default:
		return parts[0]
	}
}
