package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// UploadPhoto godoc
// @Summary Enviar foto
// @Description Armazena uma imagem (JPEG, PNG ou WebP) na pasta informada e retorna sua URL.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param folder query string true "Pasta (criancas, responsaveis, tios, usuarios, checkins, checkouts)"
// @Param foto formData file true "Imagem"
// @Security BearerAuth
// @Success 201 {object} models.Photo "Foto armazenada"
// @Failure 400 {object} ErrorResponse "Pasta ou tipo de imagem inválido"
// @Failure 413 {object} ErrorResponse "Imagem excede o tamanho máximo"
// @Router /photos [post]
func UploadPhoto(c *gin.Context) {
	folder := c.Query("folder")
	h, end := startHandler(c, "UploadPhoto", attribute.String("folder", folder))
	defer end()

	if !models.ValidPhotoFolder(folder) {
		h.fail(models.ErrInvalidPhotoFolder, msgSaveFailed)
		return
	}
	header, err := c.FormFile(photoField)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "arquivo \"foto\" é obrigatório"})
		return
	}
	if services.PhotoServiceInstance == nil {
		h.unavailable("photo")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	defer file.Close()

	photo, err := services.PhotoServiceInstance.Upload(h.ctx, folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	middleware.SetResourceID(c, photo.ID)
	h.ok(http.StatusCreated, photo)
}

// GetPhoto godoc
// @Summary Obter foto
// @Description Retorna o conteúdo da imagem.
// @Tags photos
// @Produce image/jpeg,image/png,image/webp
// @Param id path string true "ID da foto"
// @Security BearerAuth
// @Success 200 {file} file "Imagem"
// @Failure 404 {object} ErrorResponse "Foto não encontrada"
// @Router /photos/{id} [get]
func GetPhoto(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetPhoto", attribute.String("photo_id", id))
	defer end()

	if services.PhotoServiceInstance == nil {
		h.unavailable("photo")
		return
	}

	rc, photo, err := services.PhotoServiceInstance.Open(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", photo.ContentType)
	c.Header("Content-Length", strconv.FormatInt(photo.Size, 10))
	c.Header("Cache-Control", "private, max-age=86400")
	c.Header("ETag", `"`+photo.SHA256+`"`)
	if match := c.GetHeader("If-None-Match"); match != "" && match == `"`+photo.SHA256+`"` {
		c.Status(http.StatusNotModified)
		return
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warn("photo stream interrupted", zap.String("photo_id", id), zap.Error(err))
	}
}
