package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Client определяет операции удаленного источника истины.
// Все полезные нагрузки - структурированные записи поверх HTTP.
type Client interface {
	ResponderIncidents(ctx context.Context) ([]models.Incident, error)
	NearbyIncidents(ctx context.Context, lat, lon float64, radiusM int) ([]models.Incident, error)
	IncidentDetails(ctx context.Context, id string) (*IncidentDetails, error)
	SubmitReport(ctx context.Context, report models.ReportSubmission) (string, error)
	UserStatus(ctx context.Context, id string) (*models.UserReportStatus, error)
	CitizenStatusUpdate(ctx context.Context, id string, status models.Status, notes string) error
	RegisterResponder(ctx context.Context, reg models.ResponderRegistration) error

	ClaimIncident(ctx context.Context, id string) (int64, error)
	UpdateIncidentStatus(ctx context.Context, id string, status models.Status) error
	SetIncidentPriority(ctx context.Context, id string, priority models.Priority) error
	SendResponderUpdate(ctx context.Context, id, note, eta string) error
}

// HTTPClient - реализация Client поверх net/http
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewHTTPClient создает клиент удаленного API. Таймаут - единственное
// ограничение на отдельный вызов; запросы в полете отдельно не прерываются.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ResponderIncidents забирает очередь инцидентов для панели ответственного
func (c *HTTPClient) ResponderIncidents(ctx context.Context) ([]models.Incident, error) {
	var resp incidentListResponse
	if err := c.getJSON(ctx, "/responder/incidents", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success && resp.Error != "" {
		return nil, &AppError{Message: resp.Error}
	}

	incidents := make([]models.Incident, 0, len(resp.Incidents))
	for _, p := range resp.Incidents {
		incidents = append(incidents, p.toModel())
	}
	return incidents, nil
}

// NearbyIncidents забирает активные инциденты вокруг точки
func (c *HTTPClient) NearbyIncidents(ctx context.Context, lat, lon float64, radiusM int) ([]models.Incident, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Set("lng", strconv.FormatFloat(lon, 'f', 6, 64))
	query.Set("radius", strconv.Itoa(radiusM))

	var resp incidentListResponse
	if err := c.getJSON(ctx, "/incidents/nearby", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success && resp.Error != "" {
		return nil, &AppError{Message: resp.Error}
	}

	incidents := make([]models.Incident, 0, len(resp.Incidents))
	for _, p := range resp.Incidents {
		incidents = append(incidents, p.toModel())
	}
	return incidents, nil
}

// IncidentDetails забирает агрегированные данные одного инцидента
func (c *HTTPClient) IncidentDetails(ctx context.Context, id string) (*IncidentDetails, error) {
	var resp incidentDetailsResponse
	if err := c.getJSON(ctx, "/api/incident/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		return nil, &AppError{Message: msg}
	}

	details := &IncidentDetails{
		Incident:           resp.Incident.toModel(),
		VerificationCounts: resp.VerificationCounts.toModel(),
	}
	for _, r := range resp.RelatedReports {
		details.RelatedReports = append(details.RelatedReports, r.toModel())
	}
	for _, g := range resp.Guidance {
		details.Guidance = append(details.Guidance, models.GuidanceItem{
			Title:       g.Title,
			Instruction: g.Instruction,
			Icon:        g.Icon,
		})
	}
	return details, nil
}

// SubmitReport отправляет новую заявку (multipart) и возвращает id инцидента
func (c *HTTPClient) SubmitReport(ctx context.Context, report models.ReportSubmission) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fields := map[string]string{
		"type":        string(report.Type),
		"description": report.Description,
		"latitude":    strconv.FormatFloat(report.Latitude, 'f', 6, 64),
		"longitude":   strconv.FormatFloat(report.Longitude, 'f', 6, 64),
		"user_id":     report.UserID,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", fmt.Errorf("upstream: could not write report field %s: %w", name, err)
		}
	}
	if len(report.Media) > 0 {
		part, err := mw.CreateFormFile("media", report.MediaName)
		if err != nil {
			return "", fmt.Errorf("upstream: could not attach media: %w", err)
		}
		if _, err := part.Write(report.Media); err != nil {
			return "", fmt.Errorf("upstream: could not write media: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upstream: could not finalize report form: %w", err)
	}

	var resp reportResponse
	if err := c.postForm(ctx, "/report", mw.FormDataContentType(), body, &resp); err != nil {
		return "", err
	}
	if resp.IncidentID.String() == "" {
		return "", &AppError{Message: resp.Error}
	}
	return resp.IncidentID.String(), nil
}

// UserStatus забирает состояние собственной заявки гражданина
func (c *HTTPClient) UserStatus(ctx context.Context, id string) (*models.UserReportStatus, error) {
	var resp userStatusResponse
	if err := c.getJSON(ctx, "/incident/"+url.PathEscape(id)+"/user-status", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &AppError{Message: resp.Error}
	}

	note := resp.Note
	if note == nil {
		note = resp.ResponderNote
	}
	return &models.UserReportStatus{
		IncidentID:    id,
		Status:        models.Status(resp.Status),
		Claimed:       resp.Claimed,
		ResponderName: resp.ResponderName,
		Priority:      resp.Priority,
		Note:          note,
		ETA:           resp.ETA,
	}, nil
}

// CitizenStatusUpdate - пользовательское обновление статуса с примечанием
func (c *HTTPClient) CitizenStatusUpdate(ctx context.Context, id string, status models.Status, notes string) error {
	var resp simpleResponse
	payload := statusUpdateRequest{Status: string(status), Notes: notes}
	if err := c.postJSON(ctx, "/api/incident/"+url.PathEscape(id)+"/status", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		return &AppError{Message: msg}
	}
	return nil
}

// RegisterResponder отправляет форму регистрации ответственного (multipart)
func (c *HTTPClient) RegisterResponder(ctx context.Context, reg models.ResponderRegistration) error {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("name", reg.Name); err != nil {
		return fmt.Errorf("upstream: could not write registration field: %w", err)
	}
	if err := mw.WriteField("role", reg.Role); err != nil {
		return fmt.Errorf("upstream: could not write registration field: %w", err)
	}
	if len(reg.Proof) > 0 {
		part, err := mw.CreateFormFile("proof", reg.ProofName)
		if err != nil {
			return fmt.Errorf("upstream: could not attach proof: %w", err)
		}
		if _, err := part.Write(reg.Proof); err != nil {
			return fmt.Errorf("upstream: could not write proof: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("upstream: could not finalize registration form: %w", err)
	}

	var resp simpleResponse
	if err := c.postForm(ctx, "/responder/register", mw.FormDataContentType(), body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &AppError{Message: resp.Error}
	}
	return nil
}

// ClaimIncident закрепляет инцидент; возвращенное claimed_by - новая истина
func (c *HTTPClient) ClaimIncident(ctx context.Context, id string) (int64, error) {
	var resp claimResponse
	if err := c.postJSON(ctx, "/incident/"+url.PathEscape(id)+"/claim", nil, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &AppError{Message: resp.Error}
	}
	return resp.ClaimedBy, nil
}

// UpdateIncidentStatus - точечная запись статуса (канал ответственного)
func (c *HTTPClient) UpdateIncidentStatus(ctx context.Context, id string, status models.Status) error {
	payload := statusUpdateRequest{Status: string(status)}
	return c.postJSON(ctx, "/incident/"+url.PathEscape(id)+"/status", payload, nil)
}

// SetIncidentPriority - точечная запись приоритета ответственного
func (c *HTTPClient) SetIncidentPriority(ctx context.Context, id string, priority models.Priority) error {
	var resp simpleResponse
	payload := priorityRequest{Priority: string(priority)}
	if err := c.postJSON(ctx, "/incident/"+url.PathEscape(id)+"/priority", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &AppError{Message: resp.Error}
	}
	return nil
}

// SendResponderUpdate передает заявителю сообщение и необязательный ETA
func (c *HTTPClient) SendResponderUpdate(ctx context.Context, id, note, eta string) error {
	payload := responderUpdateRequest{Note: note, ETA: eta}
	return c.postJSON(ctx, "/incident/"+url.PathEscape(id)+"/responder-update", payload, nil)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("upstream: could not create request: %w", err)
	}
	return c.do(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("upstream: could not marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("upstream: could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) postForm(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("upstream: could not create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream: could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil {
			statusErr.Message = apiErr.Error
		}
		c.logger.WithFields(logrus.Fields{
			"url":    req.URL.Path,
			"status": resp.StatusCode,
		}).Warn("Upstream returned non-success status")
		return statusErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("upstream: could not decode response: %w", err)
	}
	return nil
}
