package services

import (
	"context"
	"fmt"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CultoService handles services (cultos) and their rooms
type CultoService struct {
	cultos    repository.Store[models.Culto]
	dashboard *DashboardService
	cache     *cache
	logger    *logging.SafeLogger
}

// NewCultoService creates a new culto service. Every schedule change drops
// the cached dashboard counters.
func NewCultoService(cultos repository.Store[models.Culto], dashboard *DashboardService, c *cache) *CultoService {
	return &CultoService{
		cultos:    cultos,
		dashboard: dashboard,
		cache:     c,
		logger:    logging.Logger.Named("culto_service"),
	}
}

// CultoServiceInstance is the global culto service
var CultoServiceInstance *CultoService

func normalizeData(data string) (string, error) {
	t, err := utils.ParseDate(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s", models.ErrInvalidDate, data)
	}
	return t.Format(utils.DateLayout), nil
}

// List returns a page of cultos, newest first
func (s *CultoService) List(ctx context.Context, page, perPage int) (*models.CultoListResponse, error) {
	cultos, err := s.cultos.List(ctx, pageOptions(page, perPage))
	if err != nil {
		return nil, err
	}
	total, err := s.cultos.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &models.CultoListResponse{
		Cultos:     cultos,
		Pagination: models.NewPaginationInfo(page, perPage, total),
	}, nil
}

// Get returns one culto
func (s *CultoService) Get(ctx context.Context, id string) (*models.Culto, error) {
	key := cacheKey(entityCulto, id)

	var cached models.Culto
	if s.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	culto, err := s.cultos.Get(ctx, id)
	if err != nil {
		return nil, notFound("culto", id, err)
	}
	s.cache.set(ctx, key, culto)
	return culto, nil
}

// Create schedules a culto
func (s *CultoService) Create(ctx context.Context, req *models.CultoRequest) (*models.Culto, error) {
	if !req.Sala.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidSala, req.Sala)
	}
	data, err := normalizeData(req.Data)
	if err != nil {
		return nil, err
	}

	culto := &models.Culto{
		Data:              data,
		Sala:              req.Sala,
		CriancasPresentes: []models.CriancaPresente{},
	}
	if err := s.cultos.Create(ctx, culto); err != nil {
		return nil, fmt.Errorf("failed to create culto: %w", err)
	}
	s.dashboard.Invalidate(ctx)

	s.logger.Info("culto created",
		zap.String("id", culto.ID),
		zap.String("data", culto.Data),
		zap.String("sala", string(culto.Sala)))
	return culto, nil
}

// Update changes the date or sala of a culto
func (s *CultoService) Update(ctx context.Context, id string, req *models.CultoUpdateRequest) (*models.Culto, error) {
	fields := bson.M{}
	if req.Data != nil {
		data, err := normalizeData(*req.Data)
		if err != nil {
			return nil, err
		}
		fields["data"] = data
	}
	if req.Sala != nil {
		if !req.Sala.Valid() {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidSala, *req.Sala)
		}
		fields["sala"] = *req.Sala
	}

	culto, err := s.cultos.Update(ctx, id, fields)
	if err != nil {
		return nil, notFound("culto", id, err)
	}
	s.cache.del(ctx, cacheKey(entityCulto, id))
	s.dashboard.Invalidate(ctx)
	return culto, nil
}

// Delete removes a culto with its attendance
func (s *CultoService) Delete(ctx context.Context, id string) error {
	if err := s.cultos.Delete(ctx, id); err != nil {
		return notFound("culto", id, err)
	}
	s.cache.del(ctx, cacheKey(entityCulto, id))
	s.dashboard.Invalidate(ctx)
	s.logger.Info("culto deleted", zap.String("id", id))
	return nil
}
