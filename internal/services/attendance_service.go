package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.uber.org/zap"
)

const attendanceMaxRetries = 3

// errServoRequired is returned when a confirmation carries no servant
var errServoRequired = errors.New("servoId is required")

// AttendanceService runs the check-in / check-out workflow of a culto
type AttendanceService struct {
	cultos      repository.Store[models.Culto]
	criancas    repository.Store[models.Crianca]
	association *AssociationService
	dashboard   *DashboardService
	cache       *cache
	logger      *logging.SafeLogger
	now         func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(cultos repository.Store[models.Culto], criancas repository.Store[models.Crianca], association *AssociationService, dashboard *DashboardService, c *cache, now func() time.Time) *AttendanceService {
	return &AttendanceService{
		cultos:      cultos,
		criancas:    criancas,
		association: association,
		dashboard:   dashboard,
		cache:       c,
		logger:      logging.Logger.Named("attendance_service"),
		now:         now,
	}
}

// AttendanceServiceInstance is the global attendance service
var AttendanceServiceInstance *AttendanceService

// mutate applies fn to the current culto and stores it, retrying when a
// concurrent write wins the version race.
func (s *AttendanceService) mutate(ctx context.Context, event, cultoID, criancaID string, fn func(c *models.Culto) error) (*models.Culto, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, event)
	defer span.End()
	utils.AddSpanAttribute(span, "culto.id", cultoID)
	utils.AddSpanAttribute(span, "crianca.id", criancaID)

	var result *models.Culto
	err := utils.RetryWithOptimisticLock(ctx, attendanceMaxRetries, func() error {
		culto, err := s.cultos.Get(ctx, cultoID)
		if err != nil {
			return notFound("culto", cultoID, err)
		}
		if err := fn(culto); err != nil {
			return err
		}
		if err := s.cultos.Replace(ctx, culto); err != nil {
			return err
		}
		result = culto
		return nil
	})

	status := "success"
	if err != nil {
		status = "rejected"
		utils.RecordErrorInSpan(span, err, utils.Attrs{"event": event})
		s.logger.Warn("attendance event rejected",
			zap.String("event", event),
			zap.String("culto_id", cultoID),
			zap.String("crianca_id", criancaID),
			zap.Error(err))
	}
	observability.AttendanceEvents.WithLabelValues(event, status).Inc()
	if err != nil {
		return nil, err
	}

	s.cache.del(ctx, cacheKey(entityCulto, cultoID))
	s.dashboard.Invalidate(ctx)
	s.logger.Info("attendance event recorded",
		zap.String("event", event),
		zap.String("culto_id", cultoID),
		zap.String("crianca_id", criancaID))
	return result, nil
}

func (s *AttendanceService) checkAuthorized(ctx context.Context, criancaID, personID string) error {
	ok, err := s.association.IsAuthorizedPickup(ctx, criancaID, personID)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotAuthorizedPickup
	}
	return nil
}

func presenca(culto *models.Culto, criancaID string) (models.CriancaPresente, error) {
	p := culto.Presenca(criancaID)
	if p == nil {
		return models.CriancaPresente{}, models.ErrNotPresent
	}
	return *p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// RequestCheckIn records a drop-off awaiting a servant's confirmation
func (s *AttendanceService) RequestCheckIn(ctx context.Context, req *models.CheckInRequest, fotoResponsavel string) (*models.CriancaPresente, error) {
	if err := s.checkAuthorized(ctx, req.CriancaID, req.ResponsavelID); err != nil {
		return nil, err
	}

	culto, err := s.mutate(ctx, "check_in", req.CultoID, req.CriancaID, func(c *models.Culto) error {
		if c.Presenca(req.CriancaID) != nil {
			return models.ErrAlreadyPresent
		}
		c.CriancasPresentes = append(c.CriancasPresentes, models.CriancaPresente{
			CriancaID: req.CriancaID,
			Status:    models.StatusPendente,
			CheckIn: models.Movimento{
				Horario:         s.now().UTC().Truncate(time.Millisecond),
				ResponsavelID:   req.ResponsavelID,
				FotoResponsavel: firstNonEmpty(fotoResponsavel, req.FotoResponsavel),
			},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	p, err := presenca(culto, req.CriancaID)
	return &p, err
}

// ConfirmCheckIn is a servant accepting a pending drop-off
func (s *AttendanceService) ConfirmCheckIn(ctx context.Context, req *models.ConfirmacaoCheckIn, fotoServo string) (*models.CriancaPresente, error) {
	if req.ServoID == "" {
		return nil, errServoRequired
	}

	culto, err := s.mutate(ctx, "confirm_check_in", req.CultoID, req.CriancaID, func(c *models.Culto) error {
		p := c.Presenca(req.CriancaID)
		if p == nil {
			return models.ErrNotPresent
		}
		if p.Status != models.StatusPendente {
			return fmt.Errorf("%w: %s", models.ErrInvalidStatus, p.Status)
		}
		p.CheckIn.ConfirmadoPor = req.ServoID
		p.CheckIn.FotoServo = firstNonEmpty(fotoServo, req.FotoServo)
		p.Status = models.StatusConfirmado
		return nil
	})
	if err != nil {
		return nil, err
	}

	p, err := presenca(culto, req.CriancaID)
	return &p, err
}

// CancelCheckIn withdraws a drop-off that was never confirmed
func (s *AttendanceService) CancelCheckIn(ctx context.Context, req *models.CancelCheckInRequest) error {
	_, err := s.mutate(ctx, "cancel_check_in", req.CultoID, req.CriancaID, func(c *models.Culto) error {
		p := c.Presenca(req.CriancaID)
		if p == nil {
			return models.ErrNotPresent
		}
		if p.Status != models.StatusPendente {
			return fmt.Errorf("%w: %s", models.ErrInvalidStatus, p.Status)
		}
		c.RemovePresenca(req.CriancaID)
		return nil
	})
	return err
}

// RequestCheckOut records a pick-up by an authorized person
func (s *AttendanceService) RequestCheckOut(ctx context.Context, req *models.CheckOutRequest, fotoResponsavel string) (*models.CriancaPresente, error) {
	if err := s.checkAuthorized(ctx, req.CriancaID, req.ResponsavelID); err != nil {
		return nil, err
	}

	culto, err := s.mutate(ctx, "check_out", req.CultoID, req.CriancaID, func(c *models.Culto) error {
		p := c.Presenca(req.CriancaID)
		if p == nil {
			return models.ErrNotPresent
		}
		if p.Status != models.StatusConfirmado || p.CheckOut != nil {
			return fmt.Errorf("%w: %s", models.ErrInvalidStatus, p.Status)
		}
		p.CheckOut = &models.Movimento{
			Horario:         s.now().UTC().Truncate(time.Millisecond),
			ResponsavelID:   req.ResponsavelID,
			FotoResponsavel: firstNonEmpty(fotoResponsavel, req.FotoResponsavel),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p, err := presenca(culto, req.CriancaID)
	return &p, err
}

// ConfirmCheckOut is a servant handing the child over
func (s *AttendanceService) ConfirmCheckOut(ctx context.Context, req *models.ConfirmacaoCheckOut, fotoServo string) (*models.CriancaPresente, error) {
	if req.ServoID == "" {
		return nil, errServoRequired
	}

	culto, err := s.mutate(ctx, "confirm_check_out", req.CultoID, req.CriancaID, func(c *models.Culto) error {
		p := c.Presenca(req.CriancaID)
		if p == nil {
			return models.ErrNotPresent
		}
		if !p.AwaitingCheckOut() {
			return fmt.Errorf("%w: %s", models.ErrInvalidStatus, p.Status)
		}
		p.CheckOut.ConfirmadoPor = req.ServoID
		p.CheckOut.FotoServo = firstNonEmpty(fotoServo, req.FotoServo)
		p.Status = models.StatusCheckout
		return nil
	})
	if err != nil {
		return nil, err
	}

	p, err := presenca(culto, req.CriancaID)
	return &p, err
}

// Presences lists the attendance of a culto with the children's names
func (s *AttendanceService) Presences(ctx context.Context, cultoID string) (*models.PresencasResponse, error) {
	culto, err := s.cultos.Get(ctx, cultoID)
	if err != nil {
		return nil, notFound("culto", cultoID, err)
	}

	views := make([]models.PresencaView, 0, len(culto.CriancasPresentes))
	for _, p := range culto.CriancasPresentes {
		view := models.PresencaView{CriancaPresente: p}
		crianca, err := s.criancas.Get(ctx, p.CriancaID)
		switch {
		case err == nil:
			view.CriancaNome = crianca.Nome
		case !errors.Is(err, models.ErrNotFound):
			return nil, err
		}
		views = append(views, view)
	}

	return &models.PresencasResponse{
		CultoID:   culto.ID,
		Data:      culto.Data,
		Sala:      culto.Sala,
		Presencas: views,
	}, nil
}
