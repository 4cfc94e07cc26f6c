package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/incident_dashboard/internal/engine"
	"github.com/shenikar/incident_dashboard/internal/guidance"
	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/shenikar/incident_dashboard/internal/upstream"
	"github.com/sirupsen/logrus"
)

// ErrNoReport - за пользователем не записано ни одной заявки
var ErrNoReport = errors.New("service: no report recorded for user")

// Upstream определяет контракт удаленного API, нужный сервису панели.
// Операции синхронизации и мутаций живут в движке и сюда не входят.
type Upstream interface {
	IncidentDetails(ctx context.Context, id string) (*upstream.IncidentDetails, error)
	SubmitReport(ctx context.Context, report models.ReportSubmission) (string, error)
	UserStatus(ctx context.Context, id string) (*models.UserReportStatus, error)
	CitizenStatusUpdate(ctx context.Context, id string, status models.Status, notes string) error
	RegisterResponder(ctx context.Context, reg models.ResponderRegistration) error
}

// LocalStateRepository определяет контракт клиентского durable-состояния
type LocalStateRepository interface {
	SaveMyIncidentID(ctx context.Context, userID, incidentID string) error
	MyIncidentID(ctx context.Context, userID string) (string, error)
}

// IncidentDetailsView - агрегированное представление одного инцидента
type IncidentDetailsView struct {
	Incident       models.Incident            `json:"incident"`
	Verification   engine.VerificationSummary `json:"verification"`
	RelatedReports []models.RelatedReport     `json:"related_reports"`
	Guidance       []models.GuidanceItem      `json:"guidance,omitempty"`
}

// DashboardService определяет бизнес-логику панели вне цикла синхронизации
type DashboardService interface {
	SubmitReport(ctx context.Context, report models.ReportSubmission) (string, error)
	MyReportStatus(ctx context.Context, userID string) (*models.UserReportStatus, error)
	IncidentDetails(ctx context.Context, id string) (*IncidentDetailsView, error)
	UpdateCitizenStatus(ctx context.Context, id string, status models.Status, notes string) error
	RegisterResponder(ctx context.Context, reg models.ResponderRegistration) error
	GuidanceForType(t models.IncidentType) []models.GuidanceItem
}

type dashboardService struct {
	upstream Upstream
	local    LocalStateRepository
	logger   *logrus.Logger
}

// NewDashboardService создает сервис панели
func NewDashboardService(up Upstream, local LocalStateRepository, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		upstream: up,
		local:    local,
		logger:   logger,
	}
}

// SubmitReport отправляет заявку гражданина и запоминает id инцидента,
// чтобы статус собственной заявки переживал перезаходы
func (s *dashboardService) SubmitReport(ctx context.Context, report models.ReportSubmission) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SubmitReport",
		"type":    report.Type,
		"user_id": report.UserID,
	})
	log.Info("Submitting citizen report")

	incidentID, err := s.upstream.SubmitReport(ctx, report)
	if err != nil {
		log.WithError(err).Error("Failed to submit report to upstream")
		return "", fmt.Errorf("service: could not submit report: %w", err)
	}

	if err := s.local.SaveMyIncidentID(ctx, report.UserID, incidentID); err != nil {
		// Заявка уже принята сервером, терять её из-за локального стейта нельзя
		log.WithError(err).Warn("Report accepted but incident id was not persisted locally")
	}

	log.WithField("incident_id", incidentID).Info("Report submitted")
	return incidentID, nil
}

// MyReportStatus возвращает состояние собственной заявки пользователя
func (s *dashboardService) MyReportStatus(ctx context.Context, userID string) (*models.UserReportStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "MyReportStatus",
		"user_id": userID,
	})

	incidentID, err := s.local.MyIncidentID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoReport) {
			return nil, ErrNoReport
		}
		log.WithError(err).Error("Failed to load incident id from local state")
		return nil, fmt.Errorf("service: could not load report id: %w", err)
	}

	status, err := s.upstream.UserStatus(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to get report status from upstream")
		return nil, fmt.Errorf("service: could not get report status: %w", err)
	}
	return status, nil
}

// IncidentDetails собирает страницу инцидента: запись, агрегат откликов,
// связанные заявки и рекомендации. Завершенный инцидент рекомендаций
// не получает.
func (s *dashboardService) IncidentDetails(ctx context.Context, id string) (*IncidentDetailsView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "IncidentDetails",
		"incident_id": id,
	})

	details, err := s.upstream.IncidentDetails(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident details from upstream")
		return nil, fmt.Errorf("service: could not get incident details: %w", err)
	}

	view := &IncidentDetailsView{
		Incident:       details.Incident,
		Verification:   engine.AggregateVerification(details.VerificationCounts),
		RelatedReports: details.RelatedReports,
	}
	if !details.Incident.Status.Terminal() {
		view.Guidance = details.Guidance
		if len(view.Guidance) == 0 {
			view.Guidance = guidance.ForType(details.Incident.Type)
		}
	}
	return view, nil
}

// UpdateCitizenStatus - пользовательское обновление статуса с примечанием
func (s *dashboardService) UpdateCitizenStatus(ctx context.Context, id string, status models.Status, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "UpdateCitizenStatus",
		"incident_id": id,
		"status":      status,
	})

	if err := s.upstream.CitizenStatusUpdate(ctx, id, status, notes); err != nil {
		log.WithError(err).Warn("Citizen status update rejected")
		return fmt.Errorf("service: could not update status: %w", err)
	}
	log.Info("Citizen status update accepted")
	return nil
}

// RegisterResponder проксирует регистрацию ответственного
func (s *dashboardService) RegisterResponder(ctx context.Context, reg models.ResponderRegistration) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RegisterResponder",
		"role":    reg.Role,
	})

	if err := s.upstream.RegisterResponder(ctx, reg); err != nil {
		log.WithError(err).Warn("Responder registration rejected")
		return fmt.Errorf("service: could not register responder: %w", err)
	}
	log.Info("Responder registered")
	return nil
}

// GuidanceForType возвращает предодобренные рекомендации по типу инцидента
func (s *dashboardService) GuidanceForType(t models.IncidentType) []models.GuidanceItem {
	return guidance.ForType(t)
}
