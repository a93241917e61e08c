package services

import (
	"context"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"go.uber.org/zap"
)

// ResponsavelService handles guardian registration
type ResponsavelService struct {
	cadastro *pessoaCadastro[models.Responsavel, *models.Responsavel]
	criancas repository.Store[models.Crianca]
}

// NewResponsavelService creates a new guardian service
func NewResponsavelService(responsaveis repository.Store[models.Responsavel], criancas repository.Store[models.Crianca], c *cache) *ResponsavelService {
	return &ResponsavelService{
		cadastro: newPessoaCadastro[models.Responsavel, *models.Responsavel](responsaveis, entityResponsavel, "responsável", c),
		criancas: criancas,
	}
}

// ResponsavelServiceInstance is the global guardian service
var ResponsavelServiceInstance *ResponsavelService

// List returns a page of guardians, newest first
func (s *ResponsavelService) List(ctx context.Context, page, perPage int) (*models.ResponsavelListResponse, error) {
	docs, total, err := s.cadastro.list(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	return &models.ResponsavelListResponse{
		Responsaveis: docs,
		Pagination:   models.NewPaginationInfo(page, perPage, total),
	}, nil
}

// Get returns one guardian
func (s *ResponsavelService) Get(ctx context.Context, id string) (*models.Responsavel, error) {
	return s.cadastro.get(ctx, id)
}

// Create registers a guardian
func (s *ResponsavelService) Create(ctx context.Context, req *models.PessoaRequest) (*models.Responsavel, error) {
	responsavel := &models.Responsavel{
		Contato:     req.ToContato(),
		CriancasIDs: []string{},
	}
	if err := s.cadastro.create(ctx, responsavel); err != nil {
		return nil, err
	}
	return responsavel, nil
}

// Update applies a partial update to a guardian
func (s *ResponsavelService) Update(ctx context.Context, id string, req *models.PessoaUpdateRequest) (*models.Responsavel, error) {
	return s.cadastro.update(ctx, id, req, nil)
}

// Delete removes a guardian. Children whose primary guardian it was keep
// the id and are reported back.
func (s *ResponsavelService) Delete(ctx context.Context, id string) (*models.ResponsavelDeleteResponse, error) {
	if err := s.cadastro.delete(ctx, id); err != nil {
		return nil, err
	}

	orphans, err := s.criancas.Find(ctx, repository.Filter{"responsavelId": id})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orphans))
	for _, c := range orphans {
		ids = append(ids, c.ID)
	}
	if len(ids) > 0 {
		s.cadastro.logger.Warn("responsavel deleted while primary guardian of children",
			zap.String("id", id),
			zap.Strings("crianca_ids", ids))
	}

	return &models.ResponsavelDeleteResponse{ID: id, CriancasSemResponsavelIDs: ids}, nil
}
