package v1

import (
	"time"

	"github.com/shenikar/incident_dashboard/internal/engine"
	"github.com/shenikar/incident_dashboard/internal/models"
)

// IncidentResponse DTO записи инцидента для панели
// @Description DTO записи инцидента для панели
type IncidentResponse struct {
	ID                  string     `json:"id"`
	Type                string     `json:"type"`
	Severity            string     `json:"severity"`
	AISeverity          string     `json:"ai_severity,omitempty"`
	AIConfidence        float64    `json:"ai_confidence,omitempty"`
	AIReasoning         string     `json:"ai_reasoning,omitempty"`
	Status              string     `json:"status"`
	ClaimedBy           *int64     `json:"claimed_by,omitempty"`
	ResponderPriority   string     `json:"responder_priority,omitempty"`
	LocationText        string     `json:"location_text,omitempty"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Description         string     `json:"description"`
	Distance            string     `json:"distance,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	DuplicateCount      int        `json:"duplicate_count"`
	RelatedReportsCount int        `json:"related_reports_count"`
}

// IncidentListResponse DTO представления очереди инцидентов
// @Description DTO представления очереди инцидентов с фильтрами
type IncidentListResponse struct {
	Incidents []IncidentResponse `json:"incidents"`
	Stats     engine.Stats       `json:"stats"`
	LastSync  time.Time          `json:"last_sync"`
}

// ListFilters - параметры фильтрации очереди
type ListFilters struct {
	Severity string `form:"severity" validate:"omitempty,oneof=all minor medium serious critical"`
	Status   string `form:"status" validate:"omitempty,oneof=all unverified verified in_progress resolved"`
}

// StatusUpdateRequest DTO смены статуса ответственным
// @Description DTO смены статуса ответственным
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress resolved"`
}

// PriorityRequest DTO назначения приоритета
// @Description DTO назначения приоритета
type PriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high critical"`
}

// NoteRequest DTO сообщения заявителю
// @Description DTO сообщения заявителю с необязательным ETA
type NoteRequest struct {
	Note string `json:"note" validate:"required,min=1"`
	ETA  string `json:"eta,omitempty"`
}

// ClaimResponse DTO подтвержденного закрепления
// @Description DTO подтвержденного закрепления инцидента
type ClaimResponse struct {
	ClaimedBy int64 `json:"claimed_by"`
}

// CitizenStatusRequest DTO пользовательского обновления статуса
// @Description DTO пользовательского обновления статуса с примечанием
type CitizenStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unverified verified in_progress resolved"`
	Notes  string `json:"notes,omitempty"`
}

// ReportResponse DTO принятой заявки
// @Description DTO принятой заявки гражданина
type ReportResponse struct {
	IncidentID string `json:"incident_id"`
}

// AlertResponse DTO состояния экстренного оповещения
// @Description DTO состояния экстренного оповещения
type AlertResponse struct {
	Raised    bool               `json:"raised"`
	Incidents []IncidentResponse `json:"incidents,omitempty"`
	RaisedAt  *time.Time         `json:"raised_at,omitempty"`
}

// IncidentDetailsResponse DTO страницы инцидента
// @Description DTO страницы инцидента: запись, агрегат откликов, связанные заявки, рекомендации
type IncidentDetailsResponse struct {
	Incident       IncidentResponse           `json:"incident"`
	Verification   engine.VerificationSummary `json:"verification"`
	RelatedReports []models.RelatedReport     `json:"related_reports"`
	Guidance       []models.GuidanceItem      `json:"guidance,omitempty"`
}
