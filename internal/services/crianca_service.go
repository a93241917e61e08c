package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	entityCrianca     = "crianca"
	entityResponsavel = "responsavel"
	entityTio         = "tio"
	entityCulto       = "culto"
)

// CriancaService handles children registration
type CriancaService struct {
	criancas     repository.Store[models.Crianca]
	responsaveis repository.Store[models.Responsavel]
	tios         repository.Store[models.Tio]
	cache        *cache
	logger       *logging.SafeLogger
}

// NewCriancaService creates a new children service
func NewCriancaService(criancas repository.Store[models.Crianca], responsaveis repository.Store[models.Responsavel], tios repository.Store[models.Tio], c *cache) *CriancaService {
	return &CriancaService{
		criancas:     criancas,
		responsaveis: responsaveis,
		tios:         tios,
		cache:        c,
		logger:       logging.Logger.Named("crianca_service"),
	}
}

// CriancaServiceInstance is the global children service
var CriancaServiceInstance *CriancaService

// List returns a page of children, newest first
func (s *CriancaService) List(ctx context.Context, page, perPage int) (*models.CriancaListResponse, error) {
	criancas, err := s.criancas.List(ctx, pageOptions(page, perPage))
	if err != nil {
		return nil, err
	}
	total, err := s.criancas.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &models.CriancaListResponse{
		Criancas:   criancas,
		Pagination: models.NewPaginationInfo(page, perPage, total),
	}, nil
}

// Get returns one child
func (s *CriancaService) Get(ctx context.Context, id string) (*models.Crianca, error) {
	key := cacheKey(entityCrianca, id)

	var cached models.Crianca
	if s.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	crianca, err := s.criancas.Get(ctx, id)
	if err != nil {
		return nil, notFound("criança", id, err)
	}

	s.cache.set(ctx, key, crianca)
	return crianca, nil
}

// Create registers a child and links it to its primary guardian
func (s *CriancaService) Create(ctx context.Context, req *models.CriancaRequest) (*models.Crianca, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "create_crianca")
	defer span.End()

	nascimento, err := utils.ParseDate(req.DataNascimento)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidDate, req.DataNascimento)
	}
	if req.Sexo != models.SexoMasculino && req.Sexo != models.SexoFeminino {
		return nil, models.ErrInvalidSexo
	}
	if _, err := s.responsaveis.Get(ctx, req.ResponsavelID); err != nil {
		return nil, notFound("responsável", req.ResponsavelID, err)
	}

	crianca := &models.Crianca{
		Foto:           req.Foto,
		Nome:           strings.TrimSpace(req.Nome),
		DataNascimento: nascimento,
		Sexo:           req.Sexo,
		Observacoes:    req.Observacoes,
		ResponsavelID:  req.ResponsavelID,
	}
	if err := s.criancas.Create(ctx, crianca); err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{"operation": "create_crianca"})
		return nil, fmt.Errorf("failed to create crianca: %w", err)
	}

	if err := s.responsaveis.AddToSet(ctx, req.ResponsavelID, "criancasIds", crianca.ID); err != nil {
		s.logger.Error("failed to link crianca to responsavel",
			zap.String("crianca_id", crianca.ID),
			zap.String("responsavel_id", req.ResponsavelID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to link crianca to responsavel: %w", err)
	}
	s.cache.del(ctx, cacheKey(entityResponsavel, req.ResponsavelID))

	s.logger.Info("crianca created", zap.String("id", crianca.ID))
	return crianca, nil
}

// Update applies a partial update to a child
func (s *CriancaService) Update(ctx context.Context, id string, req *models.CriancaUpdateRequest) (*models.Crianca, error) {
	fields := bson.M{}
	if req.Foto != nil {
		fields["foto"] = *req.Foto
	}
	if req.Nome != nil {
		fields["nome"] = strings.TrimSpace(*req.Nome)
	}
	if req.DataNascimento != nil {
		nascimento, err := utils.ParseDate(*req.DataNascimento)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidDate, *req.DataNascimento)
		}
		fields["dataNascimento"] = nascimento
	}
	if req.Sexo != nil {
		if *req.Sexo != models.SexoMasculino && *req.Sexo != models.SexoFeminino {
			return nil, models.ErrInvalidSexo
		}
		fields["sexo"] = *req.Sexo
	}
	if req.Observacoes != nil {
		fields["observacoes"] = *req.Observacoes
	}
	if req.ResponsavelID != nil {
		if _, err := s.responsaveis.Get(ctx, *req.ResponsavelID); err != nil {
			return nil, notFound("responsável", *req.ResponsavelID, err)
		}
		fields["responsavelId"] = *req.ResponsavelID
	}

	crianca, err := s.criancas.Update(ctx, id, fields)
	if err != nil {
		return nil, notFound("criança", id, err)
	}
	s.cache.del(ctx, cacheKey(entityCrianca, id))

	// the new primary guardian is also a linked guardian
	if req.ResponsavelID != nil {
		if err := s.responsaveis.AddToSet(ctx, *req.ResponsavelID, "criancasIds", id); err != nil {
			return nil, fmt.Errorf("failed to link crianca to responsavel: %w", err)
		}
		s.cache.del(ctx, cacheKey(entityResponsavel, *req.ResponsavelID))
	}

	return crianca, nil
}

// Delete removes a child and every link pointing at it
func (s *CriancaService) Delete(ctx context.Context, id string) error {
	if err := s.criancas.Delete(ctx, id); err != nil {
		return notFound("criança", id, err)
	}

	keys := []string{cacheKey(entityCrianca, id)}

	responsaveis, err := s.responsaveis.ListContaining(ctx, "criancasIds", id)
	if err != nil {
		return err
	}
	for _, r := range responsaveis {
		keys = append(keys, cacheKey(entityResponsavel, r.ID))
	}
	if _, err := s.responsaveis.PullFromAll(ctx, "criancasIds", id); err != nil {
		return fmt.Errorf("failed to unlink crianca from responsaveis: %w", err)
	}

	tios, err := s.tios.ListContaining(ctx, "criancasAutorizadasIds", id)
	if err != nil {
		return err
	}
	for _, t := range tios {
		keys = append(keys, cacheKey(entityTio, t.ID))
	}
	if _, err := s.tios.PullFromAll(ctx, "criancasAutorizadasIds", id); err != nil {
		return fmt.Errorf("failed to unlink crianca from tios: %w", err)
	}

	s.cache.del(ctx, keys...)
	s.logger.Info("crianca deleted",
		zap.String("id", id),
		zap.Int("responsaveis_unlinked", len(responsaveis)),
		zap.Int("tios_unlinked", len(tios)))
	return nil
}

// notFound labels a store miss with the entity that was looked up
func notFound(entity, id string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, models.ErrNotFound)
	}
	return err
}

// pageOptions converts a 1-based page into store options
func pageOptions(page, perPage int) repository.ListOptions {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return repository.ListOptions{}
	}
	return repository.ListOptions{
		Skip:  int64((page - 1) * perPage),
		Limit: int64(perPage),
	}
}
