package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
)

// ListTios godoc
// @Summary Listar tios
// @Description Lista paginada das pessoas autorizadas a buscar crianças.
// @Tags tios
// @Produce json
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param per_page query int false "Itens por página (padrão: 20, máximo: 100)" minimum(1) maximum(100)
// @Security BearerAuth
// @Success 200 {object} models.TioListResponse "Lista de tios"
// @Failure 400 {object} ErrorResponse "Parâmetros de paginação inválidos"
// @Router /tios [get]
func ListTios(c *gin.Context) {
	h, end := startHandler(c, "ListTios", attribute.String("service", "tio"))
	defer end()

	page, perPage, ok := h.page()
	if !ok {
		return
	}
	if services.TioServiceInstance == nil {
		h.unavailable("tio")
		return
	}

	resp, err := services.TioServiceInstance.List(h.ctx, page, perPage)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, resp)
}

// GetTio godoc
// @Summary Obter tio
// @Tags tios
// @Produce json
// @Param id path string true "ID do tio"
// @Security BearerAuth
// @Success 200 {object} models.Tio "Tio encontrado"
// @Failure 404 {object} ErrorResponse "Tio não encontrado"
// @Router /tios/{id} [get]
func GetTio(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetTio", attribute.String("tio_id", id))
	defer end()

	if services.TioServiceInstance == nil {
		h.unavailable("tio")
		return
	}

	tio, err := services.TioServiceInstance.Get(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, tio)
}

// CreateTio godoc
// @Summary Cadastrar tio
// @Description Cadastra uma pessoa autorizada a buscar as crianças informadas.
// @Tags tios
// @Accept json
// @Produce json
// @Param data body models.TioRequest true "Dados do tio"
// @Security BearerAuth
// @Success 201 {object} models.Tio "Tio cadastrado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 404 {object} ErrorResponse "Criança não encontrada"
// @Failure 409 {object} ErrorResponse "CPF já cadastrado"
// @Router /tios [post]
func CreateTio(c *gin.Context) {
	h, end := startHandler(c, "CreateTio", attribute.String("service", "tio"))
	defer end()

	var req models.TioRequest
	if !h.bind(&req) {
		return
	}
	if services.TioServiceInstance == nil {
		h.unavailable("tio")
		return
	}

	tio, err := services.TioServiceInstance.Create(h.ctx, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	middleware.SetResourceID(c, tio.ID)
	h.ok(http.StatusCreated, tio)
}

// UpdateTio godoc
// @Summary Atualizar tio
// @Tags tios
// @Accept json
// @Produce json
// @Param id path string true "ID do tio"
// @Param data body models.TioUpdateRequest true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.Tio "Tio atualizado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 404 {object} ErrorResponse "Tio não encontrado"
// @Router /tios/{id} [put]
func UpdateTio(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "UpdateTio", attribute.String("tio_id", id))
	defer end()

	var req models.TioUpdateRequest
	if !h.bind(&req) {
		return
	}
	if services.TioServiceInstance == nil {
		h.unavailable("tio")
		return
	}

	tio, err := services.TioServiceInstance.Update(h.ctx, id, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, tio)
}

// DeleteTio godoc
// @Summary Excluir tio
// @Tags tios
// @Param id path string true "ID do tio"
// @Security BearerAuth
// @Success 204 "Tio excluído"
// @Failure 404 {object} ErrorResponse "Tio não encontrado"
// @Router /tios/{id} [delete]
func DeleteTio(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "DeleteTio", attribute.String("tio_id", id))
	defer end()

	if services.TioServiceInstance == nil {
		h.unavailable("tio")
		return
	}

	if err := services.TioServiceInstance.Delete(h.ctx, id); err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusNoContent, nil)
}
