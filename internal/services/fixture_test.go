package services

import (
	"context"
	"testing"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var brt = time.FixedZone("BRT", -3*60*60)

// fixture wires every service over in-memory stores with caching disabled
type fixture struct {
	stores       Stores
	now          time.Time
	criancas     *CriancaService
	responsaveis *ResponsavelService
	tios         *TioService
	cultos       *CultoService
	association  *AssociationService
	dashboard    *DashboardService
	attendance   *AttendanceService
	auth         *AuthService
	photos       *PhotoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		stores: MemoryStores(1 << 20),
		now:    time.Date(2024, time.May, 12, 10, 0, 0, 0, brt),
	}
	now := func() time.Time { return f.now }

	f.criancas = NewCriancaService(f.stores.Criancas, f.stores.Responsaveis, f.stores.Tios, nil)
	f.responsaveis = NewResponsavelService(f.stores.Responsaveis, f.stores.Criancas, nil)
	f.tios = NewTioService(f.stores.Tios, f.stores.Criancas, nil)
	f.association = NewAssociationService(f.stores.Criancas, f.stores.Responsaveis, f.stores.Tios, nil, now)
	f.dashboard = NewDashboardService(f.stores.Criancas, f.stores.Responsaveis, f.stores.Tios, f.stores.Cultos, nil, time.Minute, brt, now)
	f.cultos = NewCultoService(f.stores.Cultos, f.dashboard, nil)
	f.attendance = NewAttendanceService(f.stores.Cultos, f.stores.Criancas, f.association, f.dashboard, nil, now)
	f.auth = NewAuthService(f.stores.Usuarios, AuthOptions{
		Secret:     "test-secret-test-secret-test-secret",
		Issuer:     "app-safekids-test",
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
		Now:        now,
	})
	f.photos = NewPhotoService(f.stores.Photos)
	return f
}

func pessoaRequest(cpf, nome string) models.PessoaRequest {
	return models.PessoaRequest{
		CPF:            cpf,
		Nome:           nome,
		GrauParentesco: "Mãe",
		Telefone:       "(21) 98765-4321",
		Endereco:       "Rua das Flores, 10",
		Email:          nome + "@Example.com",
	}
}

func (f *fixture) responsavel(t *testing.T, cpf, nome string) *models.Responsavel {
	t.Helper()
	req := pessoaRequest(cpf, nome)
	r, err := f.responsaveis.Create(context.Background(), &req)
	require.NoError(t, err)
	return r
}

func (f *fixture) tio(t *testing.T, cpf, nome string, autorizadas ...string) *models.Tio {
	t.Helper()
	req := models.TioRequest{PessoaRequest: pessoaRequest(cpf, nome), CriancasAutorizadasIDs: autorizadas}
	tio, err := f.tios.Create(context.Background(), &req)
	require.NoError(t, err)
	return tio
}

func (f *fixture) crianca(t *testing.T, nome, nascimento, responsavelID string) *models.Crianca {
	t.Helper()
	c, err := f.criancas.Create(context.Background(), &models.CriancaRequest{
		Nome:           nome,
		DataNascimento: nascimento,
		Sexo:           models.SexoFeminino,
		ResponsavelID:  responsavelID,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) culto(t *testing.T, data string, sala models.Sala) *models.Culto {
	t.Helper()
	c, err := f.cultos.Create(context.Background(), &models.CultoRequest{Data: data, Sala: sala})
	require.NoError(t, err)
	return c
}
