package engine

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
)

// AlertThresholdKm - порог близости для экстренного оповещения
const AlertThresholdKm = 1.0

// Alert - постоянное состояние экстренного оповещения. Остаётся поднятым
// до явного сброса пользователем, независимо от исходов последующих опросов.
type Alert struct {
	Raised    bool              `json:"raised"`
	Incidents []models.Incident `json:"incidents,omitempty"`
	RaisedAt  time.Time         `json:"raised_at,omitempty"`
}

// AlertEvaluator находит в снапшоте инциденты уровня critical/serious ближе
// порогового расстояния и держит состояние оповещения. Сброс локальный:
// новый квалифицирующийся инцидент поднимет оповещение снова.
type AlertEvaluator struct {
	mu          sync.Mutex
	clock       Clock
	thresholdKm float64
	active      bool
	raisedAt    time.Time
	current     []models.Incident
	dismissed   map[string]struct{} // id, которые пользователь уже видел на момент сброса
}

// NewAlertEvaluator создает вычислитель оповещений с заданным порогом в км
func NewAlertEvaluator(thresholdKm float64, clock Clock) *AlertEvaluator {
	return &AlertEvaluator{
		clock:       clock,
		thresholdKm: thresholdKm,
		dismissed:   make(map[string]struct{}),
	}
}

// Evaluate пересчитывает состояние оповещения по свежему снапшоту
func (e *AlertEvaluator) Evaluate(incidents []models.Incident) Alert {
	qualifying := make([]models.Incident, 0)
	for _, inc := range incidents {
		if e.qualifies(inc) {
			qualifying = append(qualifying, inc)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = qualifying
	if len(qualifying) == 0 {
		return e.snapshotLocked()
	}

	if !e.active {
		// Поднимаем только если появился id, которого не было при сбросе
		for _, inc := range qualifying {
			if _, seen := e.dismissed[inc.ID]; !seen {
				e.active = true
				e.raisedAt = e.clock.Now()
				e.dismissed = make(map[string]struct{})
				break
			}
		}
	}
	return e.snapshotLocked()
}

// Current возвращает текущее состояние оповещения
func (e *AlertEvaluator) Current() Alert {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Dismiss сбрасывает оповещение локально. Будущие оповещения по новым
// инцидентам это не подавляет.
func (e *AlertEvaluator) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.active = false
	e.dismissed = make(map[string]struct{}, len(e.current))
	for _, inc := range e.current {
		e.dismissed[inc.ID] = struct{}{}
	}
}

func (e *AlertEvaluator) snapshotLocked() Alert {
	alert := Alert{Raised: e.active}
	if e.active {
		alert.Incidents = append([]models.Incident(nil), e.current...)
		alert.RaisedAt = e.raisedAt
	}
	return alert
}

func (e *AlertEvaluator) qualifies(inc models.Incident) bool {
	if inc.Severity != models.SeverityCritical && inc.Severity != models.SeveritySerious {
		return false
	}
	km, ok := ParseDistanceKm(inc.Distance)
	if !ok {
		// Непарсимое расстояние никогда не считается близким
		return false
	}
	return km < e.thresholdKm
}

// ParseDistanceKm разбирает строку расстояния с единицей измерения
// ("0.4km", "500m") и нормализует значение в километры
func ParseDistanceKm(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))

	var value string
	var factor float64
	switch {
	case strings.HasSuffix(s, "km"):
		value = strings.TrimSuffix(s, "km")
		factor = 1
	case strings.HasSuffix(s, "m"):
		value = strings.TrimSuffix(s, "m")
		factor = 0.001
	default:
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * factor, true
}
