package models

import (
	"strings"
	"time"
)

// IncidentType - тип инцидента
type IncidentType string

const (
	TypeFire     IncidentType = "fire"
	TypeMedical  IncidentType = "medical"
	TypePolice   IncidentType = "police"
	TypeAccident IncidentType = "accident"
	TypeHazard   IncidentType = "hazard"
	TypeOther    IncidentType = "other"
)

// Severity - уровень серьезности инцидента (4-уровневая шкала)
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMedium   Severity = "medium"
	SeveritySerious  Severity = "serious"
	SeverityCritical Severity = "critical"
)

// severityRanks задает порядок сортировки: critical первым, minor последним
var severityRanks = map[Severity]int{
	SeverityCritical: 0,
	SeveritySerious:  1,
	SeverityMedium:   2,
	SeverityMinor:    3,
}

// Rank возвращает ординальный ранг серьезности для сортировки.
// Неизвестные значения уходят в конец списка.
func (s Severity) Rank() int {
	if rank, ok := severityRanks[s]; ok {
		return rank
	}
	return len(severityRanks)
}

// NormalizeSeverity приводит пользовательские варианты именования (low/high)
// к канонической 4-уровневой шкале
func NormalizeSeverity(raw string) Severity {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "low":
		return SeverityMinor
	case "high":
		return SeveritySerious
	default:
		return Severity(s)
	}
}

// Status - статус инцидента (упорядоченная машина состояний,
// resolved - терминальное состояние)
type Status string

const (
	StatusUnverified Status = "unverified"
	StatusVerified   Status = "verified"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Terminal сообщает, является ли статус терминальным
func (s Status) Terminal() bool {
	return s == StatusResolved
}

// Priority - приоритет, выставляемый ответственным. Независим от Severity.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid проверяет, что значение приоритета входит в допустимый набор
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Incident - запись об инциденте, как её отдаёт удалённый источник истины.
// ID назначается сервером и стабилен; клиент записи не удаляет.
type Incident struct {
	ID                  string       `json:"id"`
	Type                IncidentType `json:"type"`
	Severity            Severity     `json:"severity"`
	AISeverity          Severity     `json:"ai_severity,omitempty"`
	AIConfidence        float64      `json:"ai_confidence,omitempty"`
	AIReasoning         string       `json:"ai_reasoning,omitempty"`
	Status              Status       `json:"status"`
	ClaimedBy           *int64       `json:"claimed_by,omitempty"`
	ResponderPriority   Priority     `json:"responder_priority,omitempty"`
	LocationText        string       `json:"location_text,omitempty"`
	Latitude            float64      `json:"latitude"`
	Longitude           float64      `json:"longitude"`
	Description         string       `json:"description"`
	Distance            string       `json:"distance,omitempty"` // строка с единицей, например "0.4km" или "500m"
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
	ResolvedAt          *time.Time   `json:"resolved_at,omitempty"`
	DuplicateCount      int          `json:"duplicate_count"`
	RelatedReportsCount int          `json:"related_reports_count"`
}

// Claimed сообщает, закреплён ли инцидент за ответственным
func (i *Incident) Claimed() bool {
	return i.ClaimedBy != nil
}
