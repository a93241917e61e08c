package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
)

// ListResponsaveis godoc
// @Summary Listar responsáveis
// @Description Lista paginada dos responsáveis cadastrados.
// @Tags responsaveis
// @Produce json
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param per_page query int false "Itens por página (padrão: 20, máximo: 100)" minimum(1) maximum(100)
// @Security BearerAuth
// @Success 200 {object} models.ResponsavelListResponse "Lista de responsáveis"
// @Failure 400 {object} ErrorResponse "Parâmetros de paginação inválidos"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /responsaveis [get]
func ListResponsaveis(c *gin.Context) {
	h, end := startHandler(c, "ListResponsaveis", attribute.String("service", "responsavel"))
	defer end()

	page, perPage, ok := h.page()
	if !ok {
		return
	}
	if services.ResponsavelServiceInstance == nil {
		h.unavailable("responsavel")
		return
	}

	resp, err := services.ResponsavelServiceInstance.List(h.ctx, page, perPage)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, resp)
}

// GetResponsavel godoc
// @Summary Obter responsável
// @Tags responsaveis
// @Produce json
// @Param id path string true "ID do responsável"
// @Security BearerAuth
// @Success 200 {object} models.Responsavel "Responsável encontrado"
// @Failure 404 {object} ErrorResponse "Responsável não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /responsaveis/{id} [get]
func GetResponsavel(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetResponsavel", attribute.String("responsavel_id", id))
	defer end()

	if services.ResponsavelServiceInstance == nil {
		h.unavailable("responsavel")
		return
	}

	responsavel, err := services.ResponsavelServiceInstance.Get(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, responsavel)
}

// CreateResponsavel godoc
// @Summary Cadastrar responsável
// @Description Cadastra um responsável. O CPF é validado e não pode se repetir.
// @Tags responsaveis
// @Accept json
// @Produce json
// @Param data body models.PessoaRequest true "Dados do responsável"
// @Security BearerAuth
// @Success 201 {object} models.Responsavel "Responsável cadastrado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 403 {object} ErrorResponse "Apenas servos podem cadastrar"
// @Failure 409 {object} ErrorResponse "CPF já cadastrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /responsaveis [post]
func CreateResponsavel(c *gin.Context) {
	h, end := startHandler(c, "CreateResponsavel", attribute.String("service", "responsavel"))
	defer end()

	var req models.PessoaRequest
	if !h.bind(&req) {
		return
	}
	if services.ResponsavelServiceInstance == nil {
		h.unavailable("responsavel")
		return
	}

	responsavel, err := services.ResponsavelServiceInstance.Create(h.ctx, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	middleware.SetResourceID(c, responsavel.ID)
	h.ok(http.StatusCreated, responsavel)
}

// UpdateResponsavel godoc
// @Summary Atualizar responsável
// @Tags responsaveis
// @Accept json
// @Produce json
// @Param id path string true "ID do responsável"
// @Param data body models.PessoaUpdateRequest true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.Responsavel "Responsável atualizado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 404 {object} ErrorResponse "Responsável não encontrado"
// @Failure 409 {object} ErrorResponse "CPF já cadastrado"
// @Router /responsaveis/{id} [put]
func UpdateResponsavel(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "UpdateResponsavel", attribute.String("responsavel_id", id))
	defer end()

	var req models.PessoaUpdateRequest
	if !h.bind(&req) {
		return
	}
	if services.ResponsavelServiceInstance == nil {
		h.unavailable("responsavel")
		return
	}

	responsavel, err := services.ResponsavelServiceInstance.Update(h.ctx, id, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, responsavel)
}

// DeleteResponsavel godoc
// @Summary Excluir responsável
// @Description Exclui o responsável. A resposta lista as crianças que o tinham como responsável principal.
// @Tags responsaveis
// @Produce json
// @Param id path string true "ID do responsável"
// @Security BearerAuth
// @Success 200 {object} models.ResponsavelDeleteResponse "Responsável excluído"
// @Failure 404 {object} ErrorResponse "Responsável não encontrado"
// @Router /responsaveis/{id} [delete]
func DeleteResponsavel(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "DeleteResponsavel", attribute.String("responsavel_id", id))
	defer end()

	if services.ResponsavelServiceInstance == nil {
		h.unavailable("responsavel")
		return
	}

	resp, err := services.ResponsavelServiceInstance.Delete(h.ctx, id)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.span.SetAttributes(attribute.Int("orphaned_criancas", len(resp.CriancasSemResponsavelIDs)))
	h.ok(http.StatusOK, resp)
}
