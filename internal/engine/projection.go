package engine

import (
	"sort"

	"github.com/shenikar/incident_dashboard/internal/models"
)

// FilterAll - значение фильтра, пропускающее все записи
const FilterAll = "all"

// Project строит отфильтрованное и отсортированное представление снапшота.
// Оба фильтра применяются по И; "all" пропускает всё. Сортировка - по рангу
// серьезности по возрастанию (critical=0 ... minor=3), стабильная: записи
// с равным рангом остаются в порядке прихода. Исходный слайс не мутируется.
func Project(incidents []models.Incident, severityFilter, statusFilter string) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if severityFilter != FilterAll && string(inc.Severity) != severityFilter {
			continue
		}
		if statusFilter != FilterAll && string(inc.Status) != statusFilter {
			continue
		}
		out = append(out, inc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// Stats - счетчики инцидентов по уровням серьезности
type Stats struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Medium   int `json:"medium"`
	Minor    int `json:"minor"`
	Total    int `json:"total"`
}

// ComputeStats считает инциденты по уровням серьезности поверх всего снапшота
func ComputeStats(incidents []models.Incident) Stats {
	stats := Stats{Total: len(incidents)}
	for _, inc := range incidents {
		switch inc.Severity {
		case models.SeverityCritical:
			stats.Critical++
		case models.SeveritySerious:
			stats.Serious++
		case models.SeverityMedium:
			stats.Medium++
		case models.SeverityMinor:
			stats.Minor++
		}
	}
	return stats
}
