package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/incident_dashboard/internal/models"
	. "github.com/shenikar/incident_dashboard/internal/service"
	"github.com/shenikar/incident_dashboard/internal/service/mocks"
	"github.com/shenikar/incident_dashboard/internal/upstream"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDashboardService — вспомогательная функция для создания сервиса с моками
func newTestDashboardService(t *testing.T) (DashboardService, *mocks.MockUpstream, *mocks.MockLocalStateRepository) {
	ctrl := gomock.NewController(t)
	upstreamMock := mocks.NewMockUpstream(ctrl)
	localMock := mocks.NewMockLocalStateRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewDashboardService(upstreamMock, localMock, logger), upstreamMock, localMock
}

func TestSubmitReport_Success(t *testing.T) {
	// Подготовка
	service, upstreamMock, localMock := newTestDashboardService(t)
	ctx := context.Background()
	report := models.ReportSubmission{
		Type:        models.TypeFire,
		Description: "Smoke on the third floor",
		Latitude:    55.75,
		Longitude:   37.61,
		UserID:      "user-7",
	}

	// Ожидания
	upstreamMock.EXPECT().
		SubmitReport(ctx, report).
		Return("42", nil).
		Times(1)
	localMock.EXPECT().
		SaveMyIncidentID(ctx, "user-7", "42").
		Return(nil).
		Times(1)

	// Действие
	incidentID, err := service.SubmitReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "42", incidentID)
}

// Принятую сервером заявку нельзя терять из-за сбоя локального стейта
func TestSubmitReport_LocalSaveFailureIsNotFatal(t *testing.T) {
	service, upstreamMock, localMock := newTestDashboardService(t)
	ctx := context.Background()
	report := models.ReportSubmission{Type: models.TypeMedical, Description: "injury", UserID: "user-7"}

	upstreamMock.EXPECT().
		SubmitReport(ctx, report).
		Return("42", nil).
		Times(1)
	localMock.EXPECT().
		SaveMyIncidentID(ctx, "user-7", "42").
		Return(errors.New("redis down")).
		Times(1)

	incidentID, err := service.SubmitReport(ctx, report)

	require.NoError(t, err)
	assert.Equal(t, "42", incidentID)
}

func TestSubmitReport_UpstreamFailure(t *testing.T) {
	service, upstreamMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	report := models.ReportSubmission{Type: models.TypeFire, UserID: "user-7"}

	upstreamMock.EXPECT().
		SubmitReport(ctx, report).
		Return("", errors.New("bad request")).
		Times(1)

	_, err := service.SubmitReport(ctx, report)

	require.Error(t, err)
}

func TestMyReportStatus_RoundTrip(t *testing.T) {
	// Подготовка
	service, upstreamMock, localMock := newTestDashboardService(t)
	ctx := context.Background()
	expected := &models.UserReportStatus{
		IncidentID: "42",
		Status:     models.StatusVerified,
	}

	// Ожидания: сохраненный id ведет к статусу собственной заявки
	localMock.EXPECT().
		MyIncidentID(ctx, "user-7").
		Return("42", nil).
		Times(1)
	upstreamMock.EXPECT().
		UserStatus(ctx, "42").
		Return(expected, nil).
		Times(1)

	// Действие
	status, err := service.MyReportStatus(ctx, "user-7")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, status)
}

func TestMyReportStatus_NoReport(t *testing.T) {
	service, _, localMock := newTestDashboardService(t)
	ctx := context.Background()

	localMock.EXPECT().
		MyIncidentID(ctx, "user-7").
		Return("", ErrNoReport).
		Times(1)

	_, err := service.MyReportStatus(ctx, "user-7")

	assert.ErrorIs(t, err, ErrNoReport)
}

func TestIncidentDetails_AggregatesVerification(t *testing.T) {
	// Подготовка
	service, upstreamMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	// Ожидания
	upstreamMock.EXPECT().
		IncidentDetails(ctx, "42").
		Return(&upstream.IncidentDetails{
			Incident: models.Incident{
				ID:       "42",
				Type:     models.TypeFire,
				Severity: models.SeveritySerious,
				Status:   models.StatusVerified,
			},
			VerificationCounts: models.VerificationCounts{Yes: 3, No: 1},
		}, nil).
		Times(1)

	// Действие
	view, err := service.IncidentDetails(ctx, "42")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, view.Verification.Total)
	assert.InDelta(t, 75.0, view.Verification.YesPercent, 0.001)
	// Рекомендаций от сервера нет - подставлен предодобренный набор по типу
	assert.NotEmpty(t, view.Guidance)
}

// Завершенный инцидент рекомендаций не получает
func TestIncidentDetails_NoGuidanceWhenResolved(t *testing.T) {
	service, upstreamMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	upstreamMock.EXPECT().
		IncidentDetails(ctx, "42").
		Return(&upstream.IncidentDetails{
			Incident: models.Incident{
				ID:     "42",
				Type:   models.TypeFire,
				Status: models.StatusResolved,
			},
			Guidance: []models.GuidanceItem{{Title: "Evacuate"}},
		}, nil).
		Times(1)

	view, err := service.IncidentDetails(ctx, "42")

	require.NoError(t, err)
	assert.Empty(t, view.Guidance)
}

func TestUpdateCitizenStatus_PassesThrough(t *testing.T) {
	service, upstreamMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	upstreamMock.EXPECT().
		CitizenStatusUpdate(ctx, "42", models.StatusResolved, "situation cleared").
		Return(nil).
		Times(1)

	require.NoError(t, service.UpdateCitizenStatus(ctx, "42", models.StatusResolved, "situation cleared"))
}

func TestRegisterResponder_PassesThrough(t *testing.T) {
	service, upstreamMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	reg := models.ResponderRegistration{Name: "Ivan Petrov", Role: "medical"}

	upstreamMock.EXPECT().
		RegisterResponder(ctx, reg).
		Return(nil).
		Times(1)

	require.NoError(t, service.RegisterResponder(ctx, reg))
}

func TestGuidanceForType_FallsBackToOther(t *testing.T) {
	service, _, _ := newTestDashboardService(t)

	known := service.GuidanceForType(models.TypeFire)
	fallback := service.GuidanceForType("unknown")

	assert.NotEmpty(t, known)
	assert.NotEmpty(t, fallback)
}
