package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/services"
	"github.com/safekids/app-safekids/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the fields a request failed validation on
type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []utils.ValidationError `json:"details"`
}

// user-facing messages for server-side failures
const (
	msgInternal    = "Erro interno do servidor"
	msgLoadFailed  = "Erro ao carregar dados"
	msgSaveFailed  = "Erro ao salvar dados"
	msgInvalidBody = "Dados inválidos"
	msgUnavailable = "Serviço indisponível"
)

var errNotConnected = errors.New("not connected")

// errorStatus maps a service error to its HTTP status
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateCPF),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, models.ErrAlreadyPresent),
		errors.Is(err, models.ErrNotPresent),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrPrimaryGuardian),
		utils.IsOptimisticLockError(err):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotAuthorizedPickup):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrPhotoTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrInvalidCPF),
		errors.Is(err, models.ErrInvalidPhone),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidSala),
		errors.Is(err, models.ErrInvalidSexo),
		errors.Is(err, models.ErrInvalidTipo),
		errors.Is(err, models.ErrWeakPassword),
		errors.Is(err, models.ErrInvalidPhotoType),
		errors.Is(err, models.ErrInvalidPhotoFolder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// startHandler opens the handler span and a logger carrying the request id
func startHandler(c *gin.Context, name string, attrs ...attribute.KeyValue) (*handlerScope, func()) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), name)
	span.SetAttributes(attrs...)
	logger := observability.Logger().With(
		zap.String("handler", name),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)
	h := &handlerScope{c: c, ctx: ctx, span: span, logger: logger, start: time.Now(), name: name}
	return h, func() {
		utils.AddTimingToSpan(span, h.start)
		span.End()
	}
}

// handlerScope bundles what every handler threads through its steps
type handlerScope struct {
	c      *gin.Context
	ctx    context.Context
	span   trace.Span
	logger *logging.SafeLogger
	start  time.Time
	name   string
}

// fail writes the error response for err. Server-side failures are logged
// and answered with fallback.
func (h *handlerScope) fail(err error, fallback string) {
	status := errorStatus(err)
	utils.RecordErrorInSpan(h.span, err, utils.Attrs{"http.status_code": status})

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		h.c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	h.logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	h.c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bind decodes the body into req, JSON or form by content type, and answers
// 400 with the translated field errors when it does not validate.
func (h *handlerScope) bind(req interface{}) bool {
	var span trace.Span
	h.ctx, span = utils.TraceInputParsing(h.ctx, "request_body")
	defer span.End()

	if err := h.c.ShouldBind(req); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		result := utils.ValidationErrors(err)
		h.c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: msgInvalidBody, Details: result.Errors})
		return false
	}
	return true
}

// page parses page and per_page, answering 400 when they are malformed
func (h *handlerScope) page() (int, int, bool) {
	var span trace.Span
	h.ctx, span = utils.TraceInputParsing(h.ctx, "pagination_parameters")
	defer span.End()

	page, perPage, err := services.ValidatePaginationParams(h.c.Query("page"), h.c.Query("per_page"))
	if err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{
			"page_param":     h.c.Query("page"),
			"per_page_param": h.c.Query("per_page"),
		})
		h.c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return 0, 0, false
	}
	utils.AddSpanAttribute(span, "page", page)
	utils.AddSpanAttribute(span, "per_page", perPage)
	return page, perPage, true
}

// ok serializes a successful response
func (h *handlerScope) ok(status int, body interface{}) {
	_, span := utils.TraceResponseSerialization(h.ctx, "success")
	if body == nil {
		h.c.Status(status)
	} else {
		h.c.JSON(status, body)
	}
	span.End()

	h.logger.Debug(h.name+" completed",
		zap.Int("status", status),
		zap.Duration("total_duration", time.Since(h.start)))
}

// unavailable answers 503 when a service was not initialized
func (h *handlerScope) unavailable(service string) {
	h.logger.Error("service not initialized", zap.String("service", service))
	h.c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: msgUnavailable})
}

// currentUID returns the uid of the signed-in user, or writes a 401
func (h *handlerScope) currentUID() (string, bool) {
	uid, err := middleware.GetUserID(h.c)
	if err != nil || uid == "" {
		h.c.JSON(http.StatusUnauthorized, ErrorResponse{Error: models.ErrInvalidToken.Error()})
		return "", false
	}
	return uid, true
}
