package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/services"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key holding the verified session claims
const ClaimsKey = "claims"

// AuthMiddleware verifies the bearer session token and stores its claims
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := services.AuthServiceInstance.ParseToken(strings.TrimSpace(token))
		if err != nil {
			observability.Logger().Info("rejected session token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireServant only lets church servants through
func RequireServant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found"})
			c.Abort()
			return
		}

		if !claims.IsServant() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Servant privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetClaims returns the session claims set by AuthMiddleware
func GetClaims(c *gin.Context) (*models.SessionClaims, error) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, ErrClaimsNotFound
	}
	claims, ok := value.(*models.SessionClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetUserID returns the uid of the signed-in user
func GetUserID(c *gin.Context) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsServant checks if the signed-in user is a church servant
func IsServant(c *gin.Context) bool {
	claims, err := GetClaims(c)
	return err == nil && claims.IsServant()
}

// IsParent reports whether the signed-in user is a guardian account
func IsParent(c *gin.Context) bool {
	claims, err := GetClaims(c)
	return err == nil && claims.IsParent()
}

// ErrClaimsNotFound is returned when the request did not pass AuthMiddleware
var ErrClaimsNotFound = errors.New("claims not found")
