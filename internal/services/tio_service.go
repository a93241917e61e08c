package services

import (
	"context"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// TioService handles registration of adults authorized to pick children up
type TioService struct {
	cadastro *pessoaCadastro[models.Tio, *models.Tio]
	criancas repository.Store[models.Crianca]
}

// NewTioService creates a new tio service
func NewTioService(tios repository.Store[models.Tio], criancas repository.Store[models.Crianca], c *cache) *TioService {
	return &TioService{
		cadastro: newPessoaCadastro[models.Tio, *models.Tio](tios, entityTio, "tio", c),
		criancas: criancas,
	}
}

// TioServiceInstance is the global tio service
var TioServiceInstance *TioService

// List returns a page of tios, newest first
func (s *TioService) List(ctx context.Context, page, perPage int) (*models.TioListResponse, error) {
	docs, total, err := s.cadastro.list(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	return &models.TioListResponse{
		Tios:       docs,
		Pagination: models.NewPaginationInfo(page, perPage, total),
	}, nil
}

// Get returns one tio
func (s *TioService) Get(ctx context.Context, id string) (*models.Tio, error) {
	return s.cadastro.get(ctx, id)
}

// checkCriancas ensures every id names a registered child and drops repeats
func (s *TioService) checkCriancas(ctx context.Context, ids []string) ([]string, error) {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if _, err := s.criancas.Get(ctx, id); err != nil {
			return nil, notFound("criança", id, err)
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

// Create registers a tio
func (s *TioService) Create(ctx context.Context, req *models.TioRequest) (*models.Tio, error) {
	autorizadas, err := s.checkCriancas(ctx, req.CriancasAutorizadasIDs)
	if err != nil {
		return nil, err
	}

	tio := &models.Tio{
		Contato:                req.ToContato(),
		CriancasAutorizadasIDs: autorizadas,
	}
	if err := s.cadastro.create(ctx, tio); err != nil {
		return nil, err
	}
	return tio, nil
}

// Update applies a partial update to a tio
func (s *TioService) Update(ctx context.Context, id string, req *models.TioUpdateRequest) (*models.Tio, error) {
	var extra bson.M
	if req.CriancasAutorizadasIDs != nil {
		checked, err := s.checkCriancas(ctx, *req.CriancasAutorizadasIDs)
		if err != nil {
			return nil, err
		}
		extra = bson.M{"criancasAutorizadasIds": checked}
	}
	return s.cadastro.update(ctx, id, &req.PessoaUpdateRequest, extra)
}

// Delete removes a tio
func (s *TioService) Delete(ctx context.Context, id string) error {
	return s.cadastro.delete(ctx, id)
}
