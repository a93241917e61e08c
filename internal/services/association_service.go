package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.uber.org/zap"
)

// AssociationService links guardians and tios to children
type AssociationService struct {
	criancas     repository.Store[models.Crianca]
	responsaveis repository.Store[models.Responsavel]
	tios         repository.Store[models.Tio]
	cache        *cache
	logger       *logging.SafeLogger
	now          func() time.Time
}

// NewAssociationService creates a new association service
func NewAssociationService(criancas repository.Store[models.Crianca], responsaveis repository.Store[models.Responsavel], tios repository.Store[models.Tio], c *cache, now func() time.Time) *AssociationService {
	return &AssociationService{
		criancas:     criancas,
		responsaveis: responsaveis,
		tios:         tios,
		cache:        c,
		logger:       logging.Logger.Named("association_service"),
		now:          now,
	}
}

// AssociationServiceInstance is the global association service
var AssociationServiceInstance *AssociationService

func (s *AssociationService) getCrianca(ctx context.Context, id string) (*models.Crianca, error) {
	crianca, err := s.criancas.Get(ctx, id)
	if err != nil {
		return nil, notFound("criança", id, err)
	}
	return crianca, nil
}

// AttachGuardian links a guardian to a child; linking twice is a no-op
func (s *AssociationService) AttachGuardian(ctx context.Context, criancaID, responsavelID string) error {
	if _, err := s.getCrianca(ctx, criancaID); err != nil {
		return err
	}
	if err := s.responsaveis.AddToSet(ctx, responsavelID, "criancasIds", criancaID); err != nil {
		return notFound("responsável", responsavelID, err)
	}
	s.cache.del(ctx, cacheKey(entityResponsavel, responsavelID))
	s.logger.Info("responsavel attached",
		zap.String("crianca_id", criancaID),
		zap.String("responsavel_id", responsavelID))
	return nil
}

// DetachGuardian unlinks a guardian; the primary guardian cannot be detached
func (s *AssociationService) DetachGuardian(ctx context.Context, criancaID, responsavelID string) error {
	crianca, err := s.getCrianca(ctx, criancaID)
	if err != nil {
		return err
	}
	if crianca.ResponsavelID == responsavelID {
		return models.ErrPrimaryGuardian
	}
	if err := s.responsaveis.Pull(ctx, responsavelID, "criancasIds", criancaID); err != nil {
		return notFound("responsável", responsavelID, err)
	}
	s.cache.del(ctx, cacheKey(entityResponsavel, responsavelID))
	s.logger.Info("responsavel detached",
		zap.String("crianca_id", criancaID),
		zap.String("responsavel_id", responsavelID))
	return nil
}

// AttachPickup authorizes a tio to pick a child up
func (s *AssociationService) AttachPickup(ctx context.Context, criancaID, tioID string) error {
	if _, err := s.getCrianca(ctx, criancaID); err != nil {
		return err
	}
	if err := s.tios.AddToSet(ctx, tioID, "criancasAutorizadasIds", criancaID); err != nil {
		return notFound("tio", tioID, err)
	}
	s.cache.del(ctx, cacheKey(entityTio, tioID))
	s.logger.Info("tio authorized",
		zap.String("crianca_id", criancaID),
		zap.String("tio_id", tioID))
	return nil
}

// DetachPickup withdraws a tio's authorization
func (s *AssociationService) DetachPickup(ctx context.Context, criancaID, tioID string) error {
	if _, err := s.getCrianca(ctx, criancaID); err != nil {
		return err
	}
	if err := s.tios.Pull(ctx, tioID, "criancasAutorizadasIds", criancaID); err != nil {
		return notFound("tio", tioID, err)
	}
	s.cache.del(ctx, cacheKey(entityTio, tioID))
	s.logger.Info("tio authorization withdrawn",
		zap.String("crianca_id", criancaID),
		zap.String("tio_id", tioID))
	return nil
}

// ChildDetail returns a child with its age, suggested sala and linked people
func (s *AssociationService) ChildDetail(ctx context.Context, criancaID string) (*models.CriancaDetail, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "crianca_detail")
	defer span.End()

	crianca, err := s.getCrianca(ctx, criancaID)
	if err != nil {
		return nil, err
	}

	responsaveis, err := s.responsaveis.ListContaining(ctx, "criancasIds", criancaID)
	if err != nil {
		return nil, err
	}
	tios, err := s.tios.ListContaining(ctx, "criancasAutorizadasIds", criancaID)
	if err != nil {
		return nil, err
	}

	idade := utils.CalculateAge(crianca.DataNascimento, s.now())
	sala, _ := models.SalaForAge(idade)

	return &models.CriancaDetail{
		Crianca:      *crianca,
		Idade:        idade,
		SalaSugerida: sala,
		Responsaveis: responsaveis,
		Tios:         tios,
	}, nil
}

// IsAuthorizedPickup reports whether personID may drop off or pick up the
// child: its primary guardian, a linked guardian or an authorized tio. A
// deleted guardian is never authorized, even while still recorded as primary.
func (s *AssociationService) IsAuthorizedPickup(ctx context.Context, criancaID, personID string) (bool, error) {
	crianca, err := s.getCrianca(ctx, criancaID)
	if err != nil {
		return false, err
	}

	responsavel, err := s.responsaveis.Get(ctx, personID)
	switch {
	case err == nil:
		return crianca.ResponsavelID == personID || slices.Contains(responsavel.CriancasIDs, criancaID), nil
	case !errors.Is(err, models.ErrNotFound):
		return false, err
	}

	tio, err := s.tios.Get(ctx, personID)
	switch {
	case err == nil:
		return slices.Contains(tio.CriancasAutorizadasIDs, criancaID), nil
	case errors.Is(err, models.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
