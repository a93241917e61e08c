package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/services"
	"go.opentelemetry.io/otel/attribute"
)

// ListCriancas godoc
// @Summary Listar crianças
// @Description Lista paginada das crianças cadastradas, das mais recentes para as mais antigas.
// @Tags criancas
// @Produce json
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param per_page query int false "Itens por página (padrão: 20, máximo: 100)" minimum(1) maximum(100)
// @Security BearerAuth
// @Success 200 {object} models.CriancaListResponse "Lista de crianças"
// @Failure 400 {object} ErrorResponse "Parâmetros de paginação inválidos"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas [get]
func ListCriancas(c *gin.Context) {
	h, end := startHandler(c, "ListCriancas", attribute.String("service", "crianca"))
	defer end()

	page, perPage, ok := h.page()
	if !ok {
		return
	}
	if services.CriancaServiceInstance == nil {
		h.unavailable("crianca")
		return
	}

	resp, err := services.CriancaServiceInstance.List(h.ctx, page, perPage)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, resp)
}

// GetCrianca godoc
// @Summary Obter criança
// @Description Retorna a criança com idade, sala sugerida, responsáveis vinculados e tios autorizados.
// @Tags criancas
// @Produce json
// @Param id path string true "ID da criança"
// @Security BearerAuth
// @Success 200 {object} models.CriancaDetail "Criança encontrada"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 404 {object} ErrorResponse "Criança não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas/{id} [get]
func GetCrianca(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "GetCrianca", attribute.String("crianca_id", id))
	defer end()

	if services.AssociationServiceInstance == nil {
		h.unavailable("association")
		return
	}

	detail, err := services.AssociationServiceInstance.ChildDetail(h.ctx, id)
	if err != nil {
		h.fail(err, msgLoadFailed)
		return
	}
	h.ok(http.StatusOK, detail)
}

// CreateCrianca godoc
// @Summary Cadastrar criança
// @Description Cadastra uma criança vinculada ao seu responsável principal.
// @Tags criancas
// @Accept json
// @Produce json
// @Param data body models.CriancaRequest true "Dados da criança"
// @Security BearerAuth
// @Success 201 {object} models.Crianca "Criança cadastrada"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Apenas servos podem cadastrar"
// @Failure 404 {object} ErrorResponse "Responsável não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas [post]
func CreateCrianca(c *gin.Context) {
	h, end := startHandler(c, "CreateCrianca", attribute.String("service", "crianca"))
	defer end()

	var req models.CriancaRequest
	if !h.bind(&req) {
		return
	}
	if services.CriancaServiceInstance == nil {
		h.unavailable("crianca")
		return
	}

	crianca, err := services.CriancaServiceInstance.Create(h.ctx, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.span.SetAttributes(attribute.String("crianca_id", crianca.ID))
	middleware.SetResourceID(c, crianca.ID)
	h.ok(http.StatusCreated, crianca)
}

// UpdateCrianca godoc
// @Summary Atualizar criança
// @Description Atualiza os campos informados da criança.
// @Tags criancas
// @Accept json
// @Produce json
// @Param id path string true "ID da criança"
// @Param data body models.CriancaUpdateRequest true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.Crianca "Criança atualizada"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Apenas servos podem alterar"
// @Failure 404 {object} ErrorResponse "Criança não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas/{id} [put]
func UpdateCrianca(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "UpdateCrianca", attribute.String("crianca_id", id))
	defer end()

	var req models.CriancaUpdateRequest
	if !h.bind(&req) {
		return
	}
	if services.CriancaServiceInstance == nil {
		h.unavailable("crianca")
		return
	}

	crianca, err := services.CriancaServiceInstance.Update(h.ctx, id, &req)
	if err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusOK, crianca)
}

// DeleteCrianca godoc
// @Summary Excluir criança
// @Description Exclui a criança e remove seus vínculos com responsáveis e tios.
// @Tags criancas
// @Param id path string true "ID da criança"
// @Security BearerAuth
// @Success 204 "Criança excluída"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Apenas servos podem excluir"
// @Failure 404 {object} ErrorResponse "Criança não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas/{id} [delete]
func DeleteCrianca(c *gin.Context) {
	id := c.Param("id")
	h, end := startHandler(c, "DeleteCrianca", attribute.String("crianca_id", id))
	defer end()

	if services.CriancaServiceInstance == nil {
		h.unavailable("crianca")
		return
	}

	if err := services.CriancaServiceInstance.Delete(h.ctx, id); err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusNoContent, nil)
}

// link runs op over the :id child and the person named by otherParam
func link(c *gin.Context, name, otherParam string, op func(svc *services.AssociationService, ctx context.Context, criancaID, otherID string) error) {
	criancaID, otherID := c.Param("id"), c.Param(otherParam)
	h, end := startHandler(c, name,
		attribute.String("crianca_id", criancaID),
		attribute.String(otherParam, otherID))
	defer end()

	if services.AssociationServiceInstance == nil {
		h.unavailable("association")
		return
	}

	if err := op(services.AssociationServiceInstance, h.ctx, criancaID, otherID); err != nil {
		h.fail(err, msgSaveFailed)
		return
	}
	h.ok(http.StatusNoContent, nil)
}

// AttachResponsavel godoc
// @Summary Vincular responsável
// @Description Vincula um responsável adicional à criança. A operação é idempotente.
// @Tags criancas
// @Param id path string true "ID da criança"
// @Param responsavelId path string true "ID do responsável"
// @Security BearerAuth
// @Success 204 "Responsável vinculado"
// @Failure 403 {object} ErrorResponse "Apenas servos podem vincular"
// @Failure 404 {object} ErrorResponse "Criança ou responsável não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /criancas/{id}/responsaveis/{responsavelId} [post]
func AttachResponsavel(c *gin.Context) {
	link(c, "AttachResponsavel", "responsavelId", (*services.AssociationService).AttachGuardian)
}

// DetachResponsavel godoc
// @Summary Desvincular responsável
// @Description Remove o vínculo entre responsável e criança. O responsável principal não pode ser desvinculado.
// @Tags criancas
// @Param id path string true "ID da criança"
// @Param responsavelId path string true "ID do responsável"
// @Security BearerAuth
// @Success 204 "Responsável desvinculado"
// @Failure 403 {object} ErrorResponse "Apenas servos podem desvincular"
// @Failure 404 {object} ErrorResponse "Criança ou responsável não encontrado"
// @Failure 409 {object} ErrorResponse "Responsável principal"
// @Router /criancas/{id}/responsaveis/{responsavelId} [delete]
func DetachResponsavel(c *gin.Context) {
	link(c, "DetachResponsavel", "responsavelId", (*services.AssociationService).DetachGuardian)
}

// AttachTio godoc
// @Summary Autorizar tio
// @Description Autoriza um tio a buscar a criança.
// @Tags criancas
// @Param id path string true "ID da criança"
// @Param tioId path string true "ID do tio"
// @Security BearerAuth
// @Success 204 "Tio autorizado"
// @Failure 403 {object} ErrorResponse "Apenas servos podem autorizar"
// @Failure 404 {object} ErrorResponse "Criança ou tio não encontrado"
// @Router /criancas/{id}/tios/{tioId} [post]
func AttachTio(c *gin.Context) {
	link(c, "AttachTio", "tioId", (*services.AssociationService).AttachPickup)
}

// DetachTio godoc
// @Summary Revogar tio
// @Description Revoga a autorização de um tio para buscar a criança.
// @Tags criancas
// @Param id path string true "ID da criança"
// @Param tioId path string true "ID do tio"
// @Security BearerAuth
// @Success 204 "Autorização revogada"
// @Failure 403 {object} ErrorResponse "Apenas servos podem revogar"
// @Failure 404 {object} ErrorResponse "Criança ou tio não encontrado"
// @Router /criancas/{id}/tios/{tioId} [delete]
func DetachTio(c *gin.Context) {
	link(c, "DetachTio", "tioId", (*services.AssociationService).DetachPickup)
}
