package guidance

import (
	"testing"

	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForType_KnownTypes(t *testing.T) {
	for _, incidentType := range []models.IncidentType{
		models.TypeFire, models.TypeMedical, models.TypePolice,
		models.TypeAccident, models.TypeHazard, models.TypeOther,
	} {
		items := ForType(incidentType)
		require.NotEmpty(t, items, "type=%s", incidentType)
		for _, item := range items {
			assert.NotEmpty(t, item.Title)
			assert.NotEmpty(t, item.Instruction)
		}
	}
}

// Для неизвестного типа отдается общий набор, а не пустой ответ
func TestForType_UnknownFallsBackToOther(t *testing.T) {
	assert.Equal(t, ForType(models.TypeOther), ForType("earthquake"))
}
