package engine

import (
	"sync"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
)

// Store хранит последний синхронизированный набор инцидентов по id.
// Снапшот заменяется целиком поллером; точечные слияния полей разрешены
// только координатору мутаций. Частичных записей извне не бывает:
// хранилище всегда содержит полный самосогласованный набор.
type Store struct {
	mu        sync.RWMutex
	incidents map[string]models.Incident
	order     []string // порядок прихода из последней выборки, нужен для стабильной сортировки
}

// NewStore создает пустое хранилище снапшота
func NewStore() *Store {
	return &Store{
		incidents: make(map[string]models.Incident),
	}
}

// Replace атомарно заменяет весь снапшот новой коллекцией.
// Инциденты, отсутствующие в новой коллекции, исчезают без отдельного сигнала.
func (s *Store) Replace(incoming []models.Incident) {
	next := make(map[string]models.Incident, len(incoming))
	order := make([]string, 0, len(incoming))
	for _, inc := range incoming {
		if _, seen := next[inc.ID]; !seen {
			order = append(order, inc.ID)
		}
		next[inc.ID] = inc
	}

	s.mu.Lock()
	s.incidents = next
	s.order = order
	s.mu.Unlock()
}

// All возвращает копию текущего маппинга id -> инцидент
func (s *Store) All() map[string]models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.Incident, len(s.incidents))
	for id, inc := range s.incidents {
		out[id] = inc
	}
	return out
}

// List возвращает инциденты в порядке прихода последней выборки
func (s *Store) List() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.incidents[id])
	}
	return out
}

// Find возвращает инцидент по id
func (s *Store) Find(id string) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inc, ok := s.incidents[id]
	return inc, ok
}

// Len возвращает размер текущего снапшота
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}

// MergeStatus вливает подтвержденный сервером статус в запись снапшота.
// Остальные поля записи не трогаются.
func (s *Store) MergeStatus(id string, status models.Status, updatedAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return false
	}
	inc.Status = status
	inc.UpdatedAt = updatedAt
	if status == models.StatusResolved && inc.ResolvedAt == nil {
		at := updatedAt
		inc.ResolvedAt = &at
	}
	s.incidents[id] = inc
	return true
}

// MergeClaim вливает подтвержденное сервером значение claimed_by
func (s *Store) MergeClaim(id string, responderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return false
	}
	inc.ClaimedBy = &responderID
	s.incidents[id] = inc
	return true
}

// MergePriority вливает подтвержденный сервером приоритет ответственного
func (s *Store) MergePriority(id string, priority models.Priority) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return false
	}
	inc.ResponderPriority = priority
	s.incidents[id] = inc
	return true
}
