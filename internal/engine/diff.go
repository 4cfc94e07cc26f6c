package engine

import (
	"github.com/shenikar/incident_dashboard/internal/models"
)

// Diff сравнивает входящую коллекцию с предыдущим снапшотом по отслеживаемым
// полям {status, claimed_by, responder_priority}. Остальные поля (description,
// duplicate_count и т.п.) намеренно не участвуют в сравнении: перерисовка
// дорогая, а косметический дрейф полей её не оправдывает.
//
// Сравнение однонаправленное (новое -> старое): запись, пропавшая из новой
// коллекции, отдельно не помечается - её уберет замена снапшота.
func Diff(prev map[string]models.Incident, incoming []models.Incident) (bool, []string) {
	var changedIDs []string
	for _, inc := range incoming {
		old, ok := prev[inc.ID]
		if !ok || tracked(old) != tracked(inc) {
			changedIDs = append(changedIDs, inc.ID)
		}
	}
	return len(changedIDs) > 0, changedIDs
}

// trackedFields - сравнимое значение отслеживаемых полей одной записи
type trackedFields struct {
	status    models.Status
	claimed   bool
	claimedBy int64
	priority  models.Priority
}

func tracked(inc models.Incident) trackedFields {
	f := trackedFields{
		status:   inc.Status,
		priority: inc.ResponderPriority,
	}
	if inc.ClaimedBy != nil {
		f.claimed = true
		f.claimedBy = *inc.ClaimedBy
	}
	return f
}
