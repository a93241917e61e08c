package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// photoField is the multipart field carrying an attendance photo
const photoField = "foto"

// uploadAttendancePhoto stores the optional multipart photo in folder. The
// photo is nil when none was sent; ok is false when a response was already
// written.
func (h *handlerScope) uploadAttendancePhoto(folder string) (photo *models.Photo, ok bool) {
	header, err := h.c.FormFile(photoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		h.c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return nil, false
	}
	if services.PhotoServiceInstance == nil {
		h.unavailable("photo")
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.fail(err, msgSaveFailed)
		return nil, false
	}
	defer file.Close()

	photo, err = services.PhotoServiceInstance.Upload(h.ctx, folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return nil, false
	}
	h.logger.Debug("attendance photo stored", zap.String("photo_id", photo.ID))
	return photo, true
}

// discardPhoto removes a photo uploaded for an attendance event the service
// rejected, so no blob is kept without a movimento referencing it
func (h *handlerScope) discardPhoto(photo *models.Photo) {
	if photo == nil {
		return
	}
	if err := services.PhotoServiceInstance.Delete(h.ctx, photo.ID); err != nil {
		h.logger.Warn("failed to discard attendance photo", zap.String("photo_id", photo.ID), zap.Error(err))
		return
	}
	h.logger.Debug("attendance photo discarded", zap.String("photo_id", photo.ID))
}

func photoURL(photo *models.Photo) string {
	if photo == nil {
		return ""
	}
	return photo.URL
}

// RequestCheckIn godoc
// @Summary Solicitar check-in
// @Description Registra a entrega da criança no culto por uma pessoa autorizada. Aceita JSON ou multipart com a foto do responsável no campo "foto".
// @Tags attendance
// @Accept json,mpfd
// @Produce json
// @Param data body models.CheckInRequest true "Dados do check-in"
// @Security BearerAuth
// @Success 201 {object} models.CriancaPresente "Check-in pendente de confirmação"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Pessoa não autorizada para esta criança"
// @Failure 404 {object} ErrorResponse "Culto ou criança não encontrado"
// @Failure 409 {object} ErrorResponse "Criança já registrada neste culto"
// @Router /checkin [post]
func RequestCheckIn(c *gin.Context) {
	h, end := startHandler(c, "RequestCheckIn", attribute.String("service", "attendance"))
	defer end()

	var req models.CheckInRequest
	if !h.bind(&req) {
		return
	}
	h.span.SetAttributes(attribute.String("culto_id", req.CultoID), attribute.String("crianca_id", req.CriancaID))
	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}
	middleware.SetResourceID(c, req.CultoID)

	foto, ok := h.uploadAttendancePhoto(models.PhotoFolderCheckIns)
	if !ok {
		return
	}

	presenca, err := services.AttendanceServiceInstance.RequestCheckIn(h.ctx, &req, photoURL(foto))
	if err != nil {
		h.discardPhoto(foto)
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusCreated, presenca)
}

// ConfirmCheckIn godoc
// @Summary Confirmar check-in
// @Description Um servo confirma o recebimento da criança. Aceita JSON ou multipart com a foto do servo no campo "foto".
// @Tags attendance
// @Accept json,mpfd
// @Produce json
// @Param data body models.ConfirmacaoCheckIn true "Confirmação"
// @Security BearerAuth
// @Success 200 {object} models.CriancaPresente "Check-in confirmado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Apenas servos podem confirmar"
// @Failure 409 {object} ErrorResponse "Status de check-in inválido"
// @Router /checkin/confirm [post]
func ConfirmCheckIn(c *gin.Context) {
	h, end := startHandler(c, "ConfirmCheckIn", attribute.String("service", "attendance"))
	defer end()

	var req models.ConfirmacaoCheckIn
	if !h.bind(&req) {
		return
	}
	servo, ok := h.currentUID()
	if !ok {
		return
	}
	req.ServoID = servo
	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}
	middleware.SetResourceID(c, req.CultoID)

	foto, ok := h.uploadAttendancePhoto(models.PhotoFolderCheckIns)
	if !ok {
		return
	}

	presenca, err := services.AttendanceServiceInstance.ConfirmCheckIn(h.ctx, &req, photoURL(foto))
	if err != nil {
		h.discardPhoto(foto)
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, presenca)
}

// CancelCheckIn godoc
// @Summary Cancelar check-in
// @Description Remove um check-in ainda não confirmado.
// @Tags attendance
// @Accept json
// @Param data body models.CancelCheckInRequest true "Check-in a cancelar"
// @Security BearerAuth
// @Success 204 "Check-in cancelado"
// @Failure 404 {object} ErrorResponse "Culto não encontrado"
// @Failure 409 {object} ErrorResponse "Check-in já confirmado ou inexistente"
// @Router /checkin/cancel [post]
func CancelCheckIn(c *gin.Context) {
	h, end := startHandler(c, "CancelCheckIn", attribute.String("service", "attendance"))
	defer end()

	var req models.CancelCheckInRequest
	if !h.bind(&req) {
		return
	}
	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}
	middleware.SetResourceID(c, req.CultoID)

	if err := services.AttendanceServiceInstance.CancelCheckIn(h.ctx, &req); err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusNoContent, nil)
}

// RequestCheckOut godoc
// @Summary Solicitar check-out
// @Description Registra a retirada da criança por uma pessoa autorizada. Aceita JSON ou multipart com a foto no campo "foto".
// @Tags attendance
// @Accept json,mpfd
// @Produce json
// @Param data body models.CheckOutRequest true "Dados do check-out"
// @Security BearerAuth
// @Success 200 {object} models.CriancaPresente "Check-out pendente de confirmação"
// @Failure 403 {object} ErrorResponse "Pessoa não autorizada para esta criança"
// @Failure 409 {object} ErrorResponse "Status de check-in inválido"
// @Router /checkout [post]
func RequestCheckOut(c *gin.Context) {
	h, end := startHandler(c, "RequestCheckOut", attribute.String("service", "attendance"))
	defer end()

	var req models.CheckOutRequest
	if !h.bind(&req) {
		return
	}
	h.span.SetAttributes(attribute.String("culto_id", req.CultoID), attribute.String("crianca_id", req.CriancaID))
	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}
	middleware.SetResourceID(c, req.CultoID)

	foto, ok := h.uploadAttendancePhoto(models.PhotoFolderCheckOuts)
	if !ok {
		return
	}

	presenca, err := services.AttendanceServiceInstance.RequestCheckOut(h.ctx, &req, photoURL(foto))
	if err != nil {
		h.discardPhoto(foto)
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, presenca)
}

// ConfirmCheckOut godoc
// @Summary Confirmar check-out
// @Description Um servo confirma a entrega da criança a quem a buscou.
// @Tags attendance
// @Accept json,mpfd
// @Produce json
// @Param data body models.ConfirmacaoCheckOut true "Confirmação"
// @Security BearerAuth
// @Success 200 {object} models.CriancaPresente "Check-out confirmado"
// @Failure 403 {object} ErrorResponse "Apenas servos podem confirmar"
// @Failure 409 {object} ErrorResponse "Check-out não solicitado"
// @Router /checkout/confirm [post]
func ConfirmCheckOut(c *gin.Context) {
	h, end := startHandler(c, "ConfirmCheckOut", attribute.String("service", "attendance"))
	defer end()

	var req models.ConfirmacaoCheckOut
	if !h.bind(&req) {
		return
	}
	servo, ok := h.currentUID()
	if !ok {
		return
	}
	req.ServoID = servo
	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}
	middleware.SetResourceID(c, req.CultoID)

	foto, ok := h.uploadAttendancePhoto(models.PhotoFolderCheckOuts)
	if !ok {
		return
	}

	presenca, err := services.AttendanceServiceInstance.ConfirmCheckOut(h.ctx, &req, photoURL(foto))
	if err != nil {
		h.discardPhoto(foto)
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, presenca)
}
