package engine

import (
	"github.com/shenikar/incident_dashboard/internal/models"
)

// VerificationSummary - агрегат откликов сообщества для отображения
type VerificationSummary struct {
	Yes        int     `json:"yes"`
	No         int     `json:"no"`
	Unsure     int     `json:"unsure"`
	Total      int     `json:"total"`
	YesPercent float64 `json:"yes_percent"`
}

// AggregateVerification считает итог и долю подтверждений.
// Деление на ноль не ошибка: при отсутствии откликов доля равна 0%.
func AggregateVerification(counts models.VerificationCounts) VerificationSummary {
	summary := VerificationSummary{
		Yes:    counts.Yes,
		No:     counts.No,
		Unsure: counts.Unsure,
		Total:  counts.Yes + counts.No + counts.Unsure,
	}
	if summary.Total > 0 {
		summary.YesPercent = float64(counts.Yes) / float64(summary.Total) * 100
	}
	return summary
}
