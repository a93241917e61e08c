package handlers

import (
	"net/http"
	"testing"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriancas_CRUD(t *testing.T) {
	a := newAPITest(t)
	responsavel, crianca, _, _ := a.seed()

	assert.Equal(t, responsavel.ID, crianca.ResponsavelID)

	w := a.do(http.MethodGet, "/v1/criancas/"+crianca.ID, a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[models.CriancaDetail](t, w)
	assert.Equal(t, "Ana", detail.Nome)
	assert.Positive(t, detail.Idade)
	require.Len(t, detail.Responsaveis, 1)
	assert.Equal(t, responsavel.ID, detail.Responsaveis[0].ID)

	nome := "Ana Clara"
	w = a.do(http.MethodPut, "/v1/criancas/"+crianca.ID, a.servant, models.CriancaUpdateRequest{Nome: &nome})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Ana Clara", decode[models.Crianca](t, w).Nome)

	w = a.do(http.MethodGet, "/v1/criancas?page=1&per_page=10", a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.CriancaListResponse](t, w)
	assert.Equal(t, int64(1), list.Pagination.Total)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/criancas/"+crianca.ID, a.servant, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/criancas/"+crianca.ID, a.parent, nil).Code)
}

func TestCriancas_Validation(t *testing.T) {
	a := newAPITest(t)

	w := a.do(http.MethodPost, "/v1/criancas", a.servant, map[string]string{
		"nome":           "A",
		"dataNascimento": "15/06/2018",
		"sexo":           "X",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ValidationErrorResponse](t, w)
	fields := map[string]string{}
	for _, d := range resp.Details {
		fields[d.Field] = d.Message
	}
	assert.Contains(t, fields, "nome")
	assert.Contains(t, fields, "dataNascimento")
	assert.Contains(t, fields, "sexo")
	assert.Contains(t, fields, "responsavelId")

	w = a.do(http.MethodPost, "/v1/criancas", a.servant, map[string]string{
		"nome":           "Ana",
		"dataNascimento": "2018-06-15",
		"sexo":           "F",
		"responsavelId":  "inexistente",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/v1/criancas?per_page=1000", a.parent, nil).Code)
}

func TestResponsaveis(t *testing.T) {
	a := newAPITest(t)
	responsavel, crianca, _, _ := a.seed()

	assert.Equal(t, "52998224725", responsavel.CPF)

	w := a.do(http.MethodPost, "/v1/responsaveis", a.servant, pessoaBody("52998224725", "outra"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodPost, "/v1/responsaveis", a.servant, pessoaBody("12345678900", "outra"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cpf", decode[ValidationErrorResponse](t, w).Details[0].Field)

	telefone := "21987654321"
	w = a.do(http.MethodPut, "/v1/responsaveis/"+responsavel.ID, a.servant, models.PessoaUpdateRequest{Telefone: &telefone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodDelete, "/v1/responsaveis/"+responsavel.ID, a.servant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{crianca.ID}, decode[models.ResponsavelDeleteResponse](t, w).CriancasSemResponsavelIDs)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/responsaveis/"+responsavel.ID, a.parent, nil).Code)
}

func TestTios_AndAssociations(t *testing.T) {
	a := newAPITest(t)
	responsavel, crianca, tio, _ := a.seed()

	path := "/v1/criancas/" + crianca.ID + "/tios/" + tio.ID
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodPost, path, a.servant, nil).Code)

	w := a.do(http.MethodGet, "/v1/tios/"+tio.ID, a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[models.Tio](t, w).CriancasAutorizadasIDs, crianca.ID)

	w = a.do(http.MethodGet, "/v1/criancas/"+crianca.ID, a.parent, nil)
	require.Len(t, decode[models.CriancaDetail](t, w).Tios, 1)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, path, a.servant, nil).Code)

	primary := "/v1/criancas/" + crianca.ID + "/responsaveis/" + responsavel.ID
	assert.Equal(t, http.StatusConflict, a.do(http.MethodDelete, primary, a.servant, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPost, "/v1/criancas/"+crianca.ID+"/responsaveis/nope", a.servant, nil).Code)

	w = a.do(http.MethodGet, "/v1/tios", a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.TioListResponse](t, w).Tios, 1)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/tios/"+tio.ID, a.servant, nil).Code)
}

func TestCultos(t *testing.T) {
	a := newAPITest(t)

	w := a.do(http.MethodPost, "/v1/cultos", a.servant, map[string]string{"data": "2024-05-12", "sala": "SALA"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "sala", decode[ValidationErrorResponse](t, w).Details[0].Field)

	w = a.do(http.MethodPost, "/v1/cultos", a.servant, map[string]string{"data": "2024-05-12", "sala": "TEENS"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	culto := decode[models.Culto](t, w)
	assert.Equal(t, "2024-05-12", culto.Data)

	sala := models.SalaJardim
	w = a.do(http.MethodPut, "/v1/cultos/"+culto.ID, a.servant, models.CultoUpdateRequest{Sala: &sala})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.SalaJardim, decode[models.Culto](t, w).Sala)

	w = a.do(http.MethodGet, "/v1/cultos", a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.CultoListResponse](t, w).Cultos, 1)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/cultos/"+culto.ID, a.servant, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/cultos/"+culto.ID, a.parent, nil).Code)
}
