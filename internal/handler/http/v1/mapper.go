package v1

import (
	"github.com/shenikar/incident_dashboard/internal/engine"
	"github.com/shenikar/incident_dashboard/internal/models"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:                  model.ID,
		Type:                string(model.Type),
		Severity:            string(model.Severity),
		AISeverity:          string(model.AISeverity),
		AIConfidence:        model.AIConfidence,
		AIReasoning:         model.AIReasoning,
		Status:              string(model.Status),
		ClaimedBy:           model.ClaimedBy,
		ResponderPriority:   string(model.ResponderPriority),
		LocationText:        model.LocationText,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Description:         model.Description,
		Distance:            model.Distance,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		ResolvedAt:          model.ResolvedAt,
		DuplicateCount:      model.DuplicateCount,
		RelatedReportsCount: model.RelatedReportsCount,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, inc := range incidents {
		responses[i] = ModelToIncidentResponse(inc)
	}
	return responses
}

// ViewToListResponse преобразует представление движка в DTO списка
func ViewToListResponse(view *engine.View) IncidentListResponse {
	return IncidentListResponse{
		Incidents: ModelsToIncidentResponses(view.Incidents),
		Stats:     view.Stats,
		LastSync:  view.LastSync,
	}
}

// AlertToResponse преобразует состояние оповещения в DTO
func AlertToResponse(alert engine.Alert) AlertResponse {
	resp := AlertResponse{
		Raised:    alert.Raised,
		Incidents: ModelsToIncidentResponses(alert.Incidents),
	}
	if alert.Raised {
		at := alert.RaisedAt
		resp.RaisedAt = &at
	}
	return resp
}
