package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeverity(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Severity
	}{
		{"critical", SeverityCritical},
		{"serious", SeveritySerious},
		{"medium", SeverityMedium},
		{"minor", SeverityMinor},
		// Пользовательские варианты именования крайних уровней
		{"high", SeveritySerious},
		{"low", SeverityMinor},
		{"HIGH", SeveritySerious},
		{" Low ", SeverityMinor},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeSeverity(tc.raw), "raw=%q", tc.raw)
	}
}

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Less(t, SeverityCritical.Rank(), SeveritySerious.Rank())
	assert.Less(t, SeveritySerious.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityMinor.Rank())
	// Неизвестная серьезность уходит в конец, а не в начало
	assert.Greater(t, Severity("unknown").Rank(), SeverityMinor.Rank())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusResolved.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.False(t, StatusVerified.Terminal())
	assert.False(t, StatusUnverified.Terminal())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityCritical.Valid())
	assert.False(t, Priority("urgent").Valid())
	assert.False(t, Priority("").Valid())
}

func TestIncidentClaimed(t *testing.T) {
	responder := int64(7)
	claimed := Incident{ClaimedBy: &responder}
	unclaimed := Incident{}

	assert.True(t, claimed.Claimed())
	assert.False(t, unclaimed.Claimed())
}
