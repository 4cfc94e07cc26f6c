package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_dashboard/internal/config"
	"github.com/shenikar/incident_dashboard/internal/engine"
	enginemocks "github.com/shenikar/incident_dashboard/internal/engine/mocks"
	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/shenikar/incident_dashboard/internal/service"
	"github.com/shenikar/incident_dashboard/internal/service/mocks"
	"github.com/shenikar/incident_dashboard/internal/upstream"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

// newTestHandler собирает роутер с живыми движками поверх статичной выборки
// и мокированным сервисом панели
func newTestHandler(t *testing.T, incidents []models.Incident) (*mocks.MockDashboardService, *enginemocks.MockMutationTransport, *gin.Engine) {
	ctrl := gomock.NewController(t)
	dashboardMock := mocks.NewMockDashboardService(ctrl)
	transportMock := enginemocks.NewMockMutationTransport(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{testAPIKey}}

	fetch := func(context.Context) ([]models.Incident, error) { return incidents, nil }
	clock := engine.NewClock()
	responderEngine := engine.New(engine.Config{Name: "responder", Interval: time.Minute}, fetch, transportMock, clock, logger)
	citizenEngine := engine.New(engine.Config{Name: "citizen", Interval: time.Minute, AlwaysNotify: true, EvaluateAlerts: true}, fetch, nil, clock, logger)

	require.NoError(t, responderEngine.Refresh(context.Background()))
	require.NoError(t, citizenEngine.Refresh(context.Background()))

	handler := NewHandler(responderEngine, citizenEngine, dashboardMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return dashboardMock, transportMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Severity: models.SeverityMinor, Status: models.StatusVerified},
		{ID: "2", Severity: models.SeverityCritical, Status: models.StatusVerified},
	})

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, authHeader())

	// Проверки: сортировка по серьезности, статистика поверх снапшота
	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, "2", resp.Incidents[0].ID)
	assert.Equal(t, 2, resp.Stats.Total)
}

func TestListIncidents_MissingAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidents_BearerTokenAccepted(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil,
		map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_InvalidFilter(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?severity=extreme", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_FilterApplied(t *testing.T) {
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Status: models.StatusVerified},
		{ID: "2", Severity: models.SeverityMinor, Status: models.StatusVerified},
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?severity=critical", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, "1", resp.Incidents[0].ID)
	// Статистика не зависит от фильтров
	assert.Equal(t, 2, resp.Stats.Total)
}

func TestClaimIncident_Success(t *testing.T) {
	// Подготовка
	_, transportMock, router := newTestHandler(t, []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Status: models.StatusVerified},
	})

	// Ожидания
	transportMock.EXPECT().
		ClaimIncident(gomock.Any(), "1").
		Return(int64(42), nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/claim", nil, authHeader())

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ClaimedBy)
}

func TestClaimIncident_UpstreamConflict(t *testing.T) {
	_, transportMock, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusVerified},
	})

	transportMock.EXPECT().
		ClaimIncident(gomock.Any(), "1").
		Return(int64(0), &upstream.AppError{Message: "incident already claimed"}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/claim", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already claimed")
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	_, transportMock, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusInProgress},
	})

	transportMock.EXPECT().
		UpdateIncidentStatus(gomock.Any(), "1", models.StatusResolved).
		Return(nil).
		Times(1)

	body := bytes.NewBufferString(`{"status":"resolved"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/status", body, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

// Завершенный инцидент отвергается локально, без похода на сервер
func TestUpdateIncidentStatus_AlreadyResolved(t *testing.T) {
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusResolved},
	})

	body := bytes.NewBufferString(`{"status":"in_progress"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/status", body, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateIncidentStatus_InvalidTarget(t *testing.T) {
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusVerified},
	})

	body := bytes.NewBufferString(`{"status":"unverified"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/status", body, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetIncidentPriority_Success(t *testing.T) {
	_, transportMock, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusVerified},
	})

	transportMock.EXPECT().
		SetIncidentPriority(gomock.Any(), "1", models.PriorityHigh).
		Return(nil).
		Times(1)

	body := bytes.NewBufferString(`{"priority":"high"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/priority", body, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendIncidentNote_EmptyNote(t *testing.T) {
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusVerified},
	})

	body := bytes.NewBufferString(`{"note":""}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/note", body, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendIncidentNote_Success(t *testing.T) {
	_, transportMock, router := newTestHandler(t, []models.Incident{
		{ID: "1", Status: models.StatusInProgress},
	})

	transportMock.EXPECT().
		SendResponderUpdate(gomock.Any(), "1", "on my way", "10 min").
		Return(nil).
		Times(1)

	body := bytes.NewBufferString(`{"note":"on my way","eta":"10 min"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/1/note", body, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	dashboardMock, _, router := newTestHandler(t, nil)

	// Ожидания
	dashboardMock.EXPECT().
		IncidentDetails(gomock.Any(), "42").
		Return(&service.IncidentDetailsView{
			Incident:     models.Incident{ID: "42", Type: models.TypeFire, Severity: models.SeveritySerious},
			Verification: engine.VerificationSummary{Yes: 3, No: 1, Total: 4, YesPercent: 75},
		}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/42", nil, authHeader())

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.Incident.ID)
	assert.InDelta(t, 75.0, resp.Verification.YesPercent, 0.001)
}

func TestSubmitReport_Success(t *testing.T) {
	// Подготовка
	dashboardMock, _, router := newTestHandler(t, nil)

	// Ожидания
	dashboardMock.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.ReportSubmission) (string, error) {
			assert.Equal(t, models.TypeFire, report.Type)
			assert.Equal(t, "user-7", report.UserID)
			return "42", nil
		}).
		Times(1)

	// Действие: multipart-форма заявки
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "fire"))
	require.NoError(t, mw.WriteField("description", "Smoke on the third floor"))
	require.NoError(t, mw.WriteField("latitude", "55.75"))
	require.NoError(t, mw.WriteField("longitude", "37.61"))
	require.NoError(t, mw.WriteField("user_id", "user-7"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.IncidentID)
}

func TestSubmitReport_InvalidType(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "flood"))
	require.NoError(t, mw.WriteField("description", "water"))
	require.NoError(t, mw.WriteField("user_id", "user-7"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMyReportStatus_NotFound(t *testing.T) {
	dashboardMock, _, router := newTestHandler(t, nil)

	dashboardMock.EXPECT().
		MyReportStatus(gomock.Any(), "user-7").
		Return(nil, service.ErrNoReport).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/status?user_id=user-7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyReportStatus_Success(t *testing.T) {
	dashboardMock, _, router := newTestHandler(t, nil)

	dashboardMock.EXPECT().
		MyReportStatus(gomock.Any(), "user-7").
		Return(&models.UserReportStatus{IncidentID: "42", Status: models.StatusVerified}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/status?user_id=user-7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.UserReportStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.IncidentID)
	assert.False(t, resp.Claimed)
}

func TestGetAlert_RaisedForCloseCritical(t *testing.T) {
	// Подготовка: критический инцидент в 300 метрах поднимает оповещение
	// на первом же цикле гражданина
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Status: models.StatusVerified, Distance: "300m"},
	})

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Raised)
	assert.Len(t, resp.Incidents, 1)
}

func TestDismissAlert(t *testing.T) {
	_, _, router := newTestHandler(t, []models.Incident{
		{ID: "1", Severity: models.SeverityCritical, Status: models.StatusVerified, Distance: "300m"},
	})

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/dismiss", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Raised)
}

func TestGetGuidance(t *testing.T) {
	dashboardMock, _, router := newTestHandler(t, nil)

	dashboardMock.EXPECT().
		GuidanceForType(models.TypeFire).
		Return([]models.GuidanceItem{{Title: "Evacuate", Instruction: "Leave the building"}}).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/guidance/fire", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var items []models.GuidanceItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Evacuate", items[0].Title)
}

func TestUpdateCitizenStatus_UpstreamRejection(t *testing.T) {
	dashboardMock, _, router := newTestHandler(t, nil)

	dashboardMock.EXPECT().
		UpdateCitizenStatus(gomock.Any(), "42", models.StatusResolved, "cleared").
		Return(&upstream.AppError{Message: "status regression is not allowed"}).
		Times(1)

	body := bytes.NewBufferString(`{"status":"resolved","notes":"cleared"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports/42/status", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "regression")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "responder_synced")
}
