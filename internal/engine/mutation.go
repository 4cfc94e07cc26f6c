package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrAlreadyResolved - попытка смены статуса у завершенного инцидента
	ErrAlreadyResolved = errors.New("engine: incident is already resolved")
	// ErrInvalidStatus - целевой статус вне набора {in_progress, resolved}
	ErrInvalidStatus = errors.New("engine: invalid target status")
	// ErrInvalidPriority - недопустимое значение приоритета
	ErrInvalidPriority = errors.New("engine: invalid priority")
	// ErrEmptyNote - пустой текст сообщения ответственного
	ErrEmptyNote = errors.New("engine: note text is required")
	// ErrUnknownMutation - сообщение мутации с неизвестным полем
	ErrUnknownMutation = errors.New("engine: unknown mutation field")
)

// MutationTransport определяет контракт точечных записей в удаленный источник.
// Каждая операция адресует ровно один инцидент и одно поле (или группу полей).
type MutationTransport interface {
	ClaimIncident(ctx context.Context, id string) (int64, error)
	UpdateIncidentStatus(ctx context.Context, id string, status models.Status) error
	SetIncidentPriority(ctx context.Context, id string, priority models.Priority) error
	SendResponderUpdate(ctx context.Context, id, note, eta string) error
}

// MutationField - поле, которое меняет сообщение мутации
type MutationField string

const (
	FieldClaim    MutationField = "claim"
	FieldStatus   MutationField = "status"
	FieldPriority MutationField = "priority"
	FieldNote     MutationField = "note"
)

// Mutation - единообразное сообщение действия ответственного:
// id инцидента, поле и новое значение
type Mutation struct {
	IncidentID string
	Field      MutationField
	Status     models.Status
	Priority   models.Priority
	Note       string
	ETA        string
}

// MutationResult - подтвержденный сервером результат мутации
type MutationResult struct {
	ClaimedBy *int64
}

// MutationCoordinator выполняет действия ответственного по схеме
// "сначала подтверждение, потом применение": запись уходит на сервер,
// и только при успехе измененные поля вливаются в снапшот. При ошибке
// хранилище не трогается - откатывать нечего.
type MutationCoordinator struct {
	store     *Store
	transport MutationTransport
	clock     Clock
	logger    *logrus.Logger
}

// NewMutationCoordinator создает координатор мутаций
func NewMutationCoordinator(store *Store, transport MutationTransport, clock Clock, logger *logrus.Logger) *MutationCoordinator {
	return &MutationCoordinator{
		store:     store,
		transport: transport,
		clock:     clock,
		logger:    logger,
	}
}

// Apply обрабатывает сообщение мутации и возвращает подтвержденный результат
func (m *MutationCoordinator) Apply(ctx context.Context, mut Mutation) (*MutationResult, error) {
	switch mut.Field {
	case FieldClaim:
		responderID, err := m.Claim(ctx, mut.IncidentID)
		if err != nil {
			return nil, err
		}
		return &MutationResult{ClaimedBy: &responderID}, nil
	case FieldStatus:
		return &MutationResult{}, m.UpdateStatus(ctx, mut.IncidentID, mut.Status)
	case FieldPriority:
		return &MutationResult{}, m.SetPriority(ctx, mut.IncidentID, mut.Priority)
	case FieldNote:
		return &MutationResult{}, m.SendNote(ctx, mut.IncidentID, mut.Note, mut.ETA)
	}
	return nil, ErrUnknownMutation
}

// Claim закрепляет инцидент за текущим ответственным. Идемпотентность
// обеспечивает сервер; клиент не посылает guard и доверяет возвращенному
// значению claimed_by как новой истине.
func (m *MutationCoordinator) Claim(ctx context.Context, id string) (int64, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "mutation",
		"method":      "Claim",
		"incident_id": id,
	})

	responderID, err := m.transport.ClaimIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Claim rejected by upstream")
		return 0, fmt.Errorf("engine: could not claim incident %s: %w", id, err)
	}

	m.store.MergeClaim(id, responderID)
	log.WithField("claimed_by", responderID).Info("Incident claimed")
	return responderID, nil
}

// UpdateStatus переводит инцидент в in_progress или resolved.
// Запрет регрессии статусов - ответственность сервера; здесь стоит только
// предусловие уровня интерфейса: для завершенного инцидента переход
// недоступен.
func (m *MutationCoordinator) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "mutation",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})

	if status != models.StatusInProgress && status != models.StatusResolved {
		return ErrInvalidStatus
	}
	if current, ok := m.store.Find(id); ok && current.Status.Terminal() {
		return ErrAlreadyResolved
	}

	if err := m.transport.UpdateIncidentStatus(ctx, id, status); err != nil {
		log.WithError(err).Warn("Status update rejected by upstream")
		return fmt.Errorf("engine: could not update status of incident %s: %w", id, err)
	}

	m.store.MergeStatus(id, status, m.clock.Now())
	log.Info("Incident status updated")
	return nil
}

// SetPriority выставляет responder_priority. Поле независимо от severity
// и никогда её не перезаписывает.
func (m *MutationCoordinator) SetPriority(ctx context.Context, id string, priority models.Priority) error {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "mutation",
		"method":      "SetPriority",
		"incident_id": id,
		"priority":    priority,
	})

	if !priority.Valid() {
		return ErrInvalidPriority
	}

	if err := m.transport.SetIncidentPriority(ctx, id, priority); err != nil {
		log.WithError(err).Warn("Priority update rejected by upstream")
		return fmt.Errorf("engine: could not set priority of incident %s: %w", id, err)
	}

	m.store.MergePriority(id, priority)
	log.Info("Incident priority set")
	return nil
}

// SendNote отправляет заявителю сообщение и необязательный ETA.
// Это боковой канал: запись инцидента в снапшоте не меняется, и неудача
// отправки на состояние инцидента не влияет.
func (m *MutationCoordinator) SendNote(ctx context.Context, id, note, eta string) error {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "mutation",
		"method":      "SendNote",
		"incident_id": id,
	})

	if note == "" {
		return ErrEmptyNote
	}

	if err := m.transport.SendResponderUpdate(ctx, id, note, eta); err != nil {
		log.WithError(err).Warn("Responder note rejected by upstream")
		return fmt.Errorf("engine: could not send note for incident %s: %w", id, err)
	}

	log.Info("Responder note dispatched")
	return nil
}
