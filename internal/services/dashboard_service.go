package services

import (
	"context"
	"time"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardService computes the console home page counters
type DashboardService struct {
	criancas     repository.Store[models.Crianca]
	responsaveis repository.Store[models.Responsavel]
	tios         repository.Store[models.Tio]
	cultos       repository.Store[models.Culto]
	cache        *cache
	ttl          time.Duration
	location     *time.Location
	now          func() time.Time
	logger       *logging.SafeLogger
}

// NewDashboardService creates a new dashboard service. Today's cultos are
// those whose date matches now in location.
func NewDashboardService(criancas repository.Store[models.Crianca], responsaveis repository.Store[models.Responsavel], tios repository.Store[models.Tio], cultos repository.Store[models.Culto], c *cache, ttl time.Duration, location *time.Location, now func() time.Time) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		criancas:     criancas,
		responsaveis: responsaveis,
		tios:         tios,
		cultos:       cultos,
		cache:        c,
		ttl:          ttl,
		location:     location,
		now:          now,
		logger:       logging.Logger.Named("dashboard_service"),
	}
}

// DashboardServiceInstance is the global dashboard service
var DashboardServiceInstance *DashboardService

// Stats returns the counters, from cache when fresh
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var cached models.DashboardStats
	if s.cache.get(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	ctx, span := utils.TraceBusinessLogic(ctx, "dashboard_stats")
	defer span.End()

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalCriancas, err = s.criancas.Count(ctx, nil); err != nil {
		return nil, err
	}
	if stats.TotalResponsaveis, err = s.responsaveis.Count(ctx, nil); err != nil {
		return nil, err
	}
	if stats.TotalTios, err = s.tios.Count(ctx, nil); err != nil {
		return nil, err
	}

	today := s.now().In(s.location).Format(utils.DateLayout)
	cultos, err := s.cultos.Find(ctx, repository.Filter{"data": today})
	if err != nil {
		return nil, err
	}

	stats.CultosHoje = int64(len(cultos))
	for i := range cultos {
		stats.CheckInsPendentes += int64(cultos[i].CountStatus(models.StatusPendente))
		for j := range cultos[i].CriancasPresentes {
			if cultos[i].CriancasPresentes[j].AwaitingCheckOut() {
				stats.CheckOutsPendentes++
			}
		}
	}

	s.cache.setTTL(ctx, dashboardCacheKey, stats, s.ttl)
	s.logger.Debug("dashboard stats computed",
		zap.String("today", today),
		zap.Int64("cultos_hoje", stats.CultosHoje))
	return stats, nil
}

// Invalidate drops the cached counters
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s == nil {
		return
	}
	s.cache.del(ctx, dashboardCacheKey)
}
