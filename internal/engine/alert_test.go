package engine

import (
	"testing"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() (*AlertEvaluator, *fakeClock) {
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewAlertEvaluator(AlertThresholdKm, clock), clock
}

func TestParseDistanceKm(t *testing.T) {
	testCases := []struct {
		raw      string
		expected float64
		ok       bool
	}{
		{"0.4km", 0.4, true},
		{"2km", 2, true},
		{"500m", 0.5, true},
		{"1500 m", 1.5, true},
		{" 1.2 KM ", 1.2, true},
		{"", 0, false},
		{"near", 0, false},
		{"-3km", 0, false},
	}

	for _, tc := range testCases {
		km, ok := ParseDistanceKm(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			assert.InDelta(t, tc.expected, km, 0.0001, "raw=%q", tc.raw)
		}
	}
}

func TestAlertEvaluator_RaisesOnCloseCritical(t *testing.T) {
	// Подготовка
	evaluator, clock := newTestEvaluator()
	incidents := []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
	}

	// Действие
	alert := evaluator.Evaluate(incidents)

	// Проверки
	require.True(t, alert.Raised)
	require.Len(t, alert.Incidents, 1)
	assert.Equal(t, "1", alert.Incidents[0].ID)
	assert.Equal(t, clock.Now(), alert.RaisedAt)
}

// Расстояние в метрах нормализуется перед сравнением с порогом:
// 500m - это 0.5 км, а не 500 км
func TestAlertEvaluator_MeterDistanceQualifies(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeveritySerious, Distance: "500m"},
	})

	assert.True(t, alert.Raised)
}

func TestAlertEvaluator_MinorNeverQualifies(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityMinor, Distance: "0.5km"},
	})

	assert.False(t, alert.Raised)
}

func TestAlertEvaluator_FarCriticalDoesNotQualify(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "2km"},
	})

	assert.False(t, alert.Raised)
}

func TestAlertEvaluator_UnparseableDistanceDoesNotQualify(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "nearby"},
	})

	assert.False(t, alert.Raised)
}

// Оповещение держится, пока пользователь его явно не сбросит,
// даже если условие на очередном цикле уже не выполняется
func TestAlertEvaluator_StaysRaisedUntilDismissed(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
	})
	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
	})

	assert.True(t, alert.Raised)
	assert.True(t, evaluator.Current().Raised)
}

func TestAlertEvaluator_DismissSuppressesKnownIncidents(t *testing.T) {
	// Подготовка
	evaluator, _ := newTestEvaluator()
	incidents := []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
	}
	evaluator.Evaluate(incidents)

	// Действие
	evaluator.Dismiss()
	alert := evaluator.Evaluate(incidents)

	// Проверки: те же инциденты оповещение не поднимают снова
	assert.False(t, alert.Raised)
}

func TestAlertEvaluator_NewIncidentReRaisesAfterDismiss(t *testing.T) {
	// Подготовка
	evaluator, _ := newTestEvaluator()
	first := []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
	}
	evaluator.Evaluate(first)
	evaluator.Dismiss()

	// Действие: в зоне появился новый квалифицирующийся инцидент
	alert := evaluator.Evaluate([]models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Distance: "0.5km"},
		{ID: "2", Severity: models.SeveritySerious, Distance: "300m"},
	})

	// Проверки
	require.True(t, alert.Raised)
	assert.Len(t, alert.Incidents, 2)
}

func TestAlertEvaluator_NoQualifyingIncidents(t *testing.T) {
	evaluator, _ := newTestEvaluator()

	alert := evaluator.Evaluate(nil)

	assert.False(t, alert.Raised)
	assert.Empty(t, alert.Incidents)
}
