package upstream

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
)

// incidentPayload - запись инцидента на проводе. id приходит числом из
// старых развертываний бекенда и строкой из новых, поэтому json.Number.
type incidentPayload struct {
	ID                  json.Number `json:"id"`
	Type                string      `json:"type"`
	Severity            string      `json:"severity"`
	AISeverity          string      `json:"ai_severity"`
	AIConfidence        float64     `json:"ai_confidence"`
	AIReasoning         string      `json:"ai_reasoning"`
	Status              string      `json:"status"`
	ClaimedBy           *int64      `json:"claimed_by"`
	ResponderPriority   string      `json:"responder_priority"`
	LocationText        string      `json:"location_text"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	Description         string      `json:"description"`
	Distance            string      `json:"distance"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	ResolvedAt          *time.Time  `json:"resolved_at"`
	DuplicateCount      int         `json:"duplicate_count"`
	RelatedReportsCount int         `json:"related_reports_count"`
}

func (p incidentPayload) toModel() models.Incident {
	return models.Incident{
		ID:                  p.ID.String(),
		Type:                models.IncidentType(strings.ToLower(p.Type)),
		Severity:            models.NormalizeSeverity(p.Severity),
		AISeverity:          models.NormalizeSeverity(p.AISeverity),
		AIConfidence:        p.AIConfidence,
		AIReasoning:         p.AIReasoning,
		Status:              models.Status(p.Status),
		ClaimedBy:           p.ClaimedBy,
		ResponderPriority:   models.Priority(p.ResponderPriority),
		LocationText:        p.LocationText,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		Description:         p.Description,
		Distance:            p.Distance,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		ResolvedAt:          p.ResolvedAt,
		DuplicateCount:      p.DuplicateCount,
		RelatedReportsCount: p.RelatedReportsCount,
	}
}

type incidentListResponse struct {
	Success   bool              `json:"success"`
	Count     int               `json:"count"`
	Incidents []incidentPayload `json:"incidents"`
	Error     string            `json:"error"`
}

// verificationPayload принимает оба варианта именования третьего счетчика:
// unsure в новых ответах и not_sure в старых
type verificationPayload struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Unsure  int `json:"unsure"`
	NotSure int `json:"not_sure"`
}

func (p verificationPayload) toModel() models.VerificationCounts {
	return models.VerificationCounts{
		Yes:    p.Yes,
		No:     p.No,
		Unsure: p.Unsure + p.NotSure,
	}
}

type relatedReportPayload struct {
	ReporterID  *int64    `json:"reporter_id"`
	Description string    `json:"description"`
	MediaURL    *string   `json:"media_url"`
	Timestamp   time.Time `json:"timestamp"`
	Similarity  *float64  `json:"similarity"`
}

func (p relatedReportPayload) toModel() models.RelatedReport {
	return models.RelatedReport{
		ReporterID:  p.ReporterID,
		Description: p.Description,
		MediaURL:    p.MediaURL,
		Timestamp:   p.Timestamp,
		Similarity:  p.Similarity,
	}
}

type guidancePayload struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Icon        string `json:"icon"`
}

type incidentDetailsResponse struct {
	Success            bool                   `json:"success"`
	Message            string                 `json:"message"`
	Error              string                 `json:"error"`
	Incident           incidentPayload        `json:"incident"`
	VerificationCounts verificationPayload    `json:"verification_counts"`
	RelatedReports     []relatedReportPayload `json:"related_reports"`
	Guidance           []guidancePayload      `json:"guidance"`
}

type claimResponse struct {
	Success   bool   `json:"success"`
	ClaimedBy int64  `json:"claimed_by"`
	Error     string `json:"error"`
}

type simpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type reportResponse struct {
	IncidentID json.Number `json:"incident_id"`
	Error      string      `json:"error"`
}

type userStatusResponse struct {
	Status        string  `json:"status"`
	Claimed       bool    `json:"claimed"`
	ResponderName *string `json:"responder_name"`
	Priority      *string `json:"priority"`
	Note          *string `json:"note"`
	ResponderNote *string `json:"responder_note"`
	ETA           *string `json:"eta"`
	Error         string  `json:"error"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type priorityRequest struct {
	Priority string `json:"priority"`
}

type responderUpdateRequest struct {
	Note string `json:"note"`
	ETA  string `json:"eta,omitempty"`
}

// IncidentDetails - агрегированный ответ по одному инциденту
type IncidentDetails struct {
	Incident           models.Incident
	VerificationCounts models.VerificationCounts
	RelatedReports     []models.RelatedReport
	Guidance           []models.GuidanceItem
}
