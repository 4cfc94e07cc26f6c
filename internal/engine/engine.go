package engine

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrSyncUnavailable - представление скрыто из-за неудачного цикла опроса
var ErrSyncUnavailable = errors.New("engine: snapshot unavailable until next successful refresh")

// Config - параметры одного экземпляра движка
type Config struct {
	Name         string
	Interval     time.Duration
	AlwaysNotify bool
	// EvaluateAlerts включает вычислитель экстренных оповещений
	// (контекст гражданина)
	EvaluateAlerts bool
}

// Engine - явный экземпляр движка синхронизации: владеет хранилищем
// снапшота, поллером, координатором мутаций и вычислителем оповещений.
// Часы и транспорт инжектируются для детерминизма в тестах.
type Engine struct {
	cfg       Config
	store     *Store
	poller    *Poller
	mutations *MutationCoordinator
	alerts    *AlertEvaluator
	logger    *logrus.Logger
}

// New собирает движок. transport может быть nil для контекстов без мутаций.
func New(cfg Config, fetch FetchFunc, transport MutationTransport, clock Clock, logger *logrus.Logger) *Engine {
	e := &Engine{
		cfg:    cfg,
		store:  NewStore(),
		logger: logger,
	}

	if cfg.EvaluateAlerts {
		e.alerts = NewAlertEvaluator(AlertThresholdKm, clock)
	}

	e.poller = NewPoller(PollerConfig{
		Name:         cfg.Name,
		Interval:     cfg.Interval,
		AlwaysNotify: cfg.AlwaysNotify,
	}, e.store, fetch, clock, logger, e.afterRefresh)

	if transport != nil {
		e.mutations = NewMutationCoordinator(e.store, transport, clock, logger)
	}
	return e
}

// Start запускает фоновый опрос; остановка - отменой контекста
func (e *Engine) Start(ctx context.Context) {
	e.poller.Start(ctx)
}

// Refresh выполняет внеочередной цикл опроса
func (e *Engine) Refresh(ctx context.Context) error {
	return e.poller.RefreshNow(ctx)
}

// View - представление снапшота для отображения
type View struct {
	Incidents []models.Incident `json:"incidents"`
	Stats     Stats             `json:"stats"`
	LastSync  time.Time         `json:"last_sync"`
}

// View строит отфильтрованное представление текущего снапшота.
// Пока держится состояние ошибки опроса, представление недоступно целиком:
// его вернет только следующий успешный цикл.
func (e *Engine) View(severityFilter, statusFilter string) (*View, error) {
	if err := e.poller.LastError(); err != nil {
		return nil, errors.Join(ErrSyncUnavailable, err)
	}

	all := e.store.List()
	return &View{
		Incidents: Project(all, severityFilter, statusFilter),
		Stats:     ComputeStats(all),
		LastSync:  e.poller.LastSync(),
	}, nil
}

// Mutations возвращает координатор мутаций (nil для контекста без транспорта)
func (e *Engine) Mutations() *MutationCoordinator {
	return e.mutations
}

// Alerts возвращает вычислитель оповещений (nil, если выключен)
func (e *Engine) Alerts() *AlertEvaluator {
	return e.alerts
}

// Snapshot возвращает хранилище снапшота
func (e *Engine) Snapshot() *Store {
	return e.store
}

// Healthy сообщает, не находится ли движок в состоянии ошибки опроса
func (e *Engine) Healthy() bool {
	return e.poller.LastError() == nil
}

// LastSync возвращает время последнего успешного цикла
func (e *Engine) LastSync() time.Time {
	return e.poller.LastSync()
}

func (e *Engine) afterRefresh(changed bool, changedIDs []string) {
	if changed {
		e.logger.WithFields(logrus.Fields{
			"poller":      e.cfg.Name,
			"changed_ids": changedIDs,
		}).Debug("Snapshot changed")
	}
	if e.alerts != nil {
		alert := e.alerts.Evaluate(e.store.List())
		if alert.Raised {
			e.logger.WithFields(logrus.Fields{
				"poller":    e.cfg.Name,
				"incidents": len(alert.Incidents),
			}).Warn("Emergency alert condition is active")
		}
	}
}
