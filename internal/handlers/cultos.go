package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
)

// ListCultos godoc
// @Summary Listar cultos
// @Tags cultos
// @Produce json
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param per_page query int false "Itens por página (padrão: 20, máximo: 100)" minimum(1) maximum(100)
// @Security BearerAuth
// @Success 200 {object} models.CultoListResponse "Lista de cultos"
// @Failure 400 {object} ErrorResponse "Parâmetros de paginação inválidos"
// @Router /cultos [get]
func ListCultos(c *gin.Context) {
	h, end := startHandler(c, "ListCultos", attribute.String("service", "culto"))
	defer end()

	page, perPage, ok := h.page()
	if !ok {
		return
	}
	if services.CultoServiceInstance == nil {
		h.unavailable("culto")
		return
	}

	resp, err := services.CultoServiceInstance.List(h.ctx, page, perPage)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, resp)
}

// GetCulto godoc
// @Summary Obter culto
// @Tags cultos
// @Produce json
// @Param id path string true "ID do culto"
// @Security BearerAuth
// @Success 200 {object} models.Culto "Culto encontrado"
// @Failure 404 {object} ErrorResponse "Culto não encontrado"
// @Router /cultos/{id} [get]
func GetCulto(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetCulto", attribute.String("culto_id", id))
	defer end()

	if services.CultoServiceInstance == nil {
		h.unavailable("culto")
		return
	}

	culto, err := services.CultoServiceInstance.Get(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, culto)
}

// CreateCulto godoc
// @Summary Cadastrar culto
// @Description Abre um culto de uma sala em uma data.
// @Tags cultos
// @Accept json
// @Produce json
// @Param data body models.CultoRequest true "Dados do culto"
// @Security BearerAuth
// @Success 201 {object} models.Culto "Culto cadastrado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Router /cultos [post]
func CreateCulto(c *gin.Context) {
	h, end := startHandler(c, "CreateCulto", attribute.String("service", "culto"))
	defer end()

	var req models.CultoRequest
	if !h.bind(&req) {
		return
	}
	if services.CultoServiceInstance == nil {
		h.unavailable("culto")
		return
	}

	culto, err := services.CultoServiceInstance.Create(h.ctx, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	middleware.SetResourceID(c, culto.ID)
	h.ok(http.StatusCreated, culto)
}

// UpdateCulto godoc
// @Summary Atualizar culto
// @Tags cultos
// @Accept json
// @Produce json
// @Param id path string true "ID do culto"
// @Param data body models.CultoUpdateRequest true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.Culto "Culto atualizado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 404 {object} ErrorResponse "Culto não encontrado"
// @Router /cultos/{id} [put]
func UpdateCulto(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "UpdateCulto", attribute.String("culto_id", id))
	defer end()

	var req models.CultoUpdateRequest
	if !h.bind(&req) {
		return
	}
	if services.CultoServiceInstance == nil {
		h.unavailable("culto")
		return
	}

	culto, err := services.CultoServiceInstance.Update(h.ctx, id, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, culto)
}

// DeleteCulto godoc
// @Summary Excluir culto
// @Tags cultos
// @Param id path string true "ID do culto"
// @Security BearerAuth
// @Success 204 "Culto excluído"
// @Failure 404 {object} ErrorResponse "Culto não encontrado"
// @Router /cultos/{id} [delete]
func DeleteCulto(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "DeleteCulto", attribute.String("culto_id", id))
	defer end()

	if services.CultoServiceInstance == nil {
		h.unavailable("culto")
		return
	}

	if err := services.CultoServiceInstance.Delete(h.ctx, id); err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusNoContent, nil)
}

// GetPresencas godoc
// @Summary Presenças do culto
// @Description Lista as crianças registradas no culto com seus check-ins e check-outs.
// @Tags cultos
// @Produce json
// @Param id path string true "ID do culto"
// @Security BearerAuth
// @Success 200 {object} models.PresencasResponse "Presenças do culto"
// @Failure 404 {object} ErrorResponse "Culto não encontrado"
// @Router /cultos/{id}/presencas [get]
func GetPresencas(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetPresencas", attribute.String("culto_id", id))
	defer end()

	if services.AttendanceServiceInstance == nil {
		h.unavailable("attendance")
		return
	}

	resp, err := services.AttendanceServiceInstance.Presences(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.span.SetAttributes(attribute.Int("presencas", len(resp.Presencas)))
	h.ok(http.StatusOK, resp)
}
