package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_dashboard/internal/config"
	"github.com/shenikar/incident_dashboard/internal/engine"
	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/shenikar/incident_dashboard/internal/service"
	"github.com/shenikar/incident_dashboard/internal/upstream"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	responder *engine.Engine
	citizen   *engine.Engine
	dashboard service.DashboardService
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(responder, citizen *engine.Engine, dashboard service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		responder: responder,
		citizen:   citizen,
		dashboard: dashboard,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// @Summary List incidents for the responder queue
// @Description Filtered and severity-sorted view of the synchronized snapshot. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param severity query string false "Severity filter" default(all)
// @Param status query string false "Status filter" default(all)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Snapshot unavailable until next successful refresh"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filters := ListFilters{
		Severity: c.DefaultQuery("severity", engine.FilterAll),
		Status:   c.DefaultQuery("status", engine.FilterAll),
	}
	if err := h.validate.Struct(filters); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.responder.View(filters.Severity, filters.Status)
	if err != nil {
		// Состояние ошибки опроса скрывает представление целиком
		log.WithError(err).Warn("Snapshot view unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "incident data unavailable, retrying on next refresh"})
		return
	}

	c.JSON(http.StatusOK, ViewToListResponse(view))
}

// @Summary Severity statistics of the responder queue
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} engine.Stats
// @Failure 503 {object} map[string]string "Snapshot unavailable"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	view, err := h.responder.View(engine.FilterAll, engine.FilterAll)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "incident data unavailable, retrying on next refresh"})
		return
	}
	c.JSON(http.StatusOK, view.Stats)
}

// @Summary Force an out-of-schedule refresh cycle
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} IncidentListResponse
// @Failure 409 {object} map[string]string "Refresh already in flight"
// @Failure 502 {object} map[string]string "Upstream fetch failed"
// @Router /incidents/refresh [post]
func (h *Handler) refreshIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "refreshIncidents")

	if err := h.responder.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, engine.ErrRefreshInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "refresh already in flight"})
			return
		}
		log.WithError(err).Error("Manual refresh failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream fetch failed"})
		return
	}

	view, err := h.responder.View(engine.FilterAll, engine.FilterAll)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "incident data unavailable"})
		return
	}
	c.JSON(http.StatusOK, ViewToListResponse(view))
}

// @Summary Get aggregated incident details
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentDetailsResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	details, err := h.dashboard.IncidentDetails(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident details")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}

	c.JSON(http.StatusOK, IncidentDetailsResponse{
		Incident:       ModelToIncidentResponse(details.Incident),
		Verification:   details.Verification,
		RelatedReports: details.RelatedReports,
		Guidance:       details.Guidance,
	})
}

// @Summary Claim an incident
// @Description Claims the incident for the acting responder; the returned claimed_by is the new truth.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} ClaimResponse
// @Failure 409 {object} map[string]string "Rejected by upstream"
// @Router /incidents/{id}/claim [post]
func (h *Handler) claimIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "claimIncident").WithField("id", id)

	result, err := h.responder.Mutations().Apply(c.Request.Context(), engine.Mutation{
		IncidentID: id,
		Field:      engine.FieldClaim,
	})
	if err != nil {
		h.mutationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ClaimResponse{ClaimedBy: *result.ClaimedBy})
}

// @Summary Update incident status
// @Description Moves the incident to in_progress or resolved. Not invocable once resolved.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body StatusUpdateRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid target status"
// @Failure 409 {object} map[string]string "Incident already resolved"
// @Router /incidents/{id}/status [post]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input StatusUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.responder.Mutations().Apply(c.Request.Context(), engine.Mutation{
		IncidentID: id,
		Field:      engine.FieldStatus,
		Status:     models.Status(input.Status),
	})
	if err != nil {
		h.mutationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// @Summary Set responder priority
// @Description Sets responder_priority; independent of severity.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param priority body PriorityRequest true "Priority"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid priority"
// @Router /incidents/{id}/priority [post]
func (h *Handler) setIncidentPriority(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setIncidentPriority").WithField("id", id)

	var input PriorityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.responder.Mutations().Apply(c.Request.Context(), engine.Mutation{
		IncidentID: id,
		Field:      engine.FieldPriority,
		Priority:   models.Priority(input.Priority),
	})
	if err != nil {
		h.mutationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"priority": input.Priority})
}

// @Summary Send a note and optional ETA to the reporter
// @Description Side channel to the original reporter; does not mutate the incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param note body NoteRequest true "Note and optional ETA"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Empty note"
// @Router /incidents/{id}/note [post]
func (h *Handler) sendIncidentNote(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "sendIncidentNote").WithField("id", id)

	var input NoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.responder.Mutations().Apply(c.Request.Context(), engine.Mutation{
		IncidentID: id,
		Field:      engine.FieldNote,
		Note:       input.Note,
		ETA:        input.ETA,
	})
	if err != nil {
		h.mutationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "update sent to reporter"})
}

// reportForm - поля multipart-формы заявки
type reportForm struct {
	Type        string  `validate:"required,oneof=fire medical police accident hazard other"`
	Description string  `validate:"required"`
	Latitude    float64 `validate:"latitude"`
	Longitude   float64 `validate:"longitude"`
	UserID      string  `validate:"required"`
}

// @Summary Submit a new citizen report
// @Description Multipart passthrough to the upstream submission endpoint; the returned incident id is persisted per user.
// @Tags Reports
// @Accept mpfd
// @Produce json
// @Param type formData string true "Incident type"
// @Param description formData string true "Description"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param user_id formData string true "User ID"
// @Param media formData file false "Media attachment"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	lat, _ := strconv.ParseFloat(c.PostForm("latitude"), 64)
	lon, _ := strconv.ParseFloat(c.PostForm("longitude"), 64)
	form := reportForm{
		Type:        c.PostForm("type"),
		Description: c.PostForm("description"),
		Latitude:    lat,
		Longitude:   lon,
		UserID:      c.PostForm("user_id"),
	}
	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission := models.ReportSubmission{
		Type:        models.IncidentType(form.Type),
		Description: form.Description,
		Latitude:    form.Latitude,
		Longitude:   form.Longitude,
		UserID:      form.UserID,
	}

	if file, err := c.FormFile("media"); err == nil {
		src, err := file.Open()
		if err != nil {
			log.WithError(err).Warn("Failed to open media attachment")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media attachment"})
			return
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			log.WithError(err).Warn("Failed to read media attachment")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media attachment"})
			return
		}
		submission.MediaName = file.Filename
		submission.Media = data
	}

	incidentID, err := h.dashboard.SubmitReport(c.Request.Context(), submission)
	if err != nil {
		h.formError(c, log, err, "failed to submit report")
		return
	}
	c.JSON(http.StatusCreated, ReportResponse{IncidentID: incidentID})
}

// @Summary Status of the user's own report
// @Tags Reports
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} models.UserReportStatus
// @Failure 404 {object} map[string]string "No report recorded"
// @Router /reports/status [get]
func (h *Handler) myReportStatus(c *gin.Context) {
	log := h.logger.WithField("method", "myReportStatus")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	status, err := h.dashboard.MyReportStatus(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no report recorded"})
			return
		}
		log.WithError(err).Error("Failed to get report status")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get report status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Citizen-visible status update with notes
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param status body CitizenStatusRequest true "Status and notes"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation or upstream rejection"
// @Router /reports/{id}/status [post]
func (h *Handler) updateCitizenStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateCitizenStatus").WithField("id", id)

	var input CitizenStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dashboard.UpdateCitizenStatus(c.Request.Context(), id, models.Status(input.Status), input.Notes); err != nil {
		h.formError(c, log, err, "failed to update status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated successfully"})
}

// @Summary Current emergency alert state
// @Tags Alerts
// @Produce json
// @Success 200 {object} AlertResponse
// @Router /alerts [get]
func (h *Handler) getAlert(c *gin.Context) {
	c.JSON(http.StatusOK, AlertToResponse(h.citizen.Alerts().Current()))
}

// @Summary Dismiss the standing emergency alert
// @Description Local-only dismissal; new qualifying incidents raise the alert again.
// @Tags Alerts
// @Produce json
// @Success 200 {object} map[string]string
// @Router /alerts/dismiss [post]
func (h *Handler) dismissAlert(c *gin.Context) {
	h.citizen.Alerts().Dismiss()
	c.JSON(http.StatusOK, gin.H{"message": "alert dismissed"})
}

// @Summary Pre-approved guidance for an incident type
// @Tags Guidance
// @Produce json
// @Param type path string true "Incident type"
// @Success 200 {array} models.GuidanceItem
// @Router /guidance/{type} [get]
func (h *Handler) getGuidance(c *gin.Context) {
	items := h.dashboard.GuidanceForType(models.IncidentType(c.Param("type")))
	c.JSON(http.StatusOK, items)
}

// registrationForm - поля multipart-формы регистрации ответственного
type registrationForm struct {
	Name string `validate:"required,min=2,max=255"`
	Role string `validate:"required,oneof=medical police fire traffic disaster"`
}

// @Summary Register a responder
// @Tags Responders
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param role formData string true "Role"
// @Param proof formData file false "Proof document"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation or upstream rejection"
// @Router /responders/register [post]
func (h *Handler) registerResponder(c *gin.Context) {
	log := h.logger.WithField("method", "registerResponder")

	form := registrationForm{
		Name: c.PostForm("name"),
		Role: c.PostForm("role"),
	}
	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg := models.ResponderRegistration{
		Name: form.Name,
		Role: form.Role,
	}
	if file, err := c.FormFile("proof"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proof attachment"})
			return
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proof attachment"})
			return
		}
		reg.ProofName = file.Filename
		reg.Proof = data
	}

	if err := h.dashboard.RegisterResponder(c.Request.Context(), reg); err != nil {
		h.formError(c, log, err, "failed to register responder")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "responder registered"})
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"responder_synced":    h.responder.Healthy(),
		"responder_last_sync": h.responder.LastSync(),
		"citizen_synced":      h.citizen.Healthy(),
		"citizen_last_sync":   h.citizen.LastSync(),
	})
}

// mutationError переводит ошибки мутаций в HTTP-ответ: прикладные отказы
// отдаются блокирующим сообщением, транспортные - как сбой шлюза
func (h *Handler) mutationError(c *gin.Context, log *logrus.Entry, err error) {
	var appErr *upstream.AppError
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, engine.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "incident is already resolved"})
	case errors.Is(err, engine.ErrInvalidStatus), errors.Is(err, engine.ErrInvalidPriority), errors.Is(err, engine.ErrEmptyNote):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		c.JSON(http.StatusConflict, gin.H{"error": appErr.Message})
	case errors.As(err, &statusErr):
		log.WithError(err).Error("Upstream transport failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
	default:
		log.WithError(err).Error("Mutation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
	}
}

// formError - встроенное сообщение для форменных потоков
func (h *Handler) formError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	var appErr *upstream.AppError
	if errors.As(err, &appErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
		return
	}
	log.WithError(err).Error("Upstream request failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
}
