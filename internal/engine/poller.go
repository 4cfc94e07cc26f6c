package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrRefreshInFlight - цикл обновления уже выполняется, тик пропущен
var ErrRefreshInFlight = errors.New("engine: refresh already in flight")

// FetchFunc забирает свежую коллекцию инцидентов из удаленного источника
type FetchFunc func(ctx context.Context) ([]models.Incident, error)

// UpdateFunc вызывается после успешного цикла, который требует перерисовки
type UpdateFunc func(changed bool, changedIDs []string)

// PollerConfig - параметры одного контекста опроса
type PollerConfig struct {
	// Name попадает в логи ("responder", "citizen")
	Name string
	// Interval - период опроса
	Interval time.Duration
	// AlwaysNotify - уведомлять подписчика на каждом успешном цикле,
	// а не только при изменениях (режим страницы гражданина)
	AlwaysNotify bool
}

// Poller периодически забирает коллекцию инцидентов, прогоняет её через
// диф и заменяет снапшот. Перекрывающиеся циклы не запускаются: пока один
// в полете, очередной тик пропускается без очереди и без слияния в пачку.
// Каждый контекст опроса держит собственный флаг "в полете".
type Poller struct {
	cfg      PollerConfig
	store    *Store
	fetch    FetchFunc
	clock    Clock
	logger   *logrus.Logger
	onUpdate UpdateFunc

	inFlight atomic.Bool

	mu       sync.RWMutex
	lastErr  error
	lastSync time.Time
}

// NewPoller создает поллер для одного контекста опроса
func NewPoller(cfg PollerConfig, store *Store, fetch FetchFunc, clock Clock, logger *logrus.Logger, onUpdate UpdateFunc) *Poller {
	return &Poller{
		cfg:      cfg,
		store:    store,
		fetch:    fetch,
		clock:    clock,
		logger:   logger,
		onUpdate: onUpdate,
	}
}

// Start запускает горутину периодического опроса. Останавливается отменой
// контекста; осиротевших таймеров после остановки не остаётся.
func (p *Poller) Start(ctx context.Context) {
	p.logger.WithField("poller", p.cfg.Name).Infof("Starting poller with interval %s", p.cfg.Interval)
	go func() {
		ticker := p.clock.NewTicker(p.cfg.Interval)
		defer ticker.Stop()

		// Первый цикл сразу, не дожидаясь первого тика
		go p.runCycle(ctx)

		for {
			select {
			case <-ctx.Done():
				p.logger.WithField("poller", p.cfg.Name).Info("Stopping poller")
				return
			case <-ticker.C():
				// Цикл уходит в свою горутину: затянувшаяся выборка не
				// задерживает тики, она просто заставит их пропуститься
				go p.runCycle(ctx)
			}
		}
	}()
}

// RefreshNow выполняет внеочередной цикл (кнопка "обновить").
// Если цикл уже в полете, возвращает ErrRefreshInFlight.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.runCycle(ctx)
}

// LastError возвращает ошибку последнего цикла; nil - состояние ошибки снято
func (p *Poller) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// LastSync возвращает время последнего успешного цикла
func (p *Poller) LastSync() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSync
}

func (p *Poller) runCycle(ctx context.Context) error {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.WithField("poller", p.cfg.Name).Debug("Refresh cycle still in flight, skipping tick")
		return ErrRefreshInFlight
	}
	defer p.inFlight.Store(false)

	log := p.logger.WithFields(logrus.Fields{
		"poller":   p.cfg.Name,
		"cycle_id": uuid.NewString(),
	})

	incoming, err := p.fetch(ctx)
	if err != nil {
		// Видимое состояние ошибки: представление скрывается до следующего
		// успешного цикла. Повтор - только по следующему тику или по кнопке.
		wrapped := fmt.Errorf("engine: refresh cycle failed: %w", err)
		p.mu.Lock()
		p.lastErr = wrapped
		p.mu.Unlock()
		log.WithError(err).Error("Refresh cycle failed")
		return wrapped
	}

	prev := p.store.All()
	changed, changedIDs := Diff(prev, incoming)
	if removed := len(prev) - len(incoming); removed > 0 {
		// Пропавшие записи исчезают молча, фиксируем только в логе
		log.WithField("removed", removed).Debug("Incidents dropped from upstream collection")
	}
	p.store.Replace(incoming)

	p.mu.Lock()
	p.lastErr = nil
	p.lastSync = p.clock.Now()
	p.mu.Unlock()

	log.WithFields(logrus.Fields{
		"count":   len(incoming),
		"changed": changed,
	}).Debug("Refresh cycle completed")

	if p.onUpdate != nil && (changed || p.cfg.AlwaysNotify) {
		p.onUpdate(changed, changedIDs)
	}
	return nil
}
