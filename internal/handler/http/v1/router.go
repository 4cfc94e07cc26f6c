package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Очередь инцидентов панели ответственного (за API-ключом)
	incidents := api.Group("/incidents")
	incidents.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.POST("/refresh", h.refreshIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/claim", h.claimIncident)
		incidents.POST("/:id/status", h.updateIncidentStatus)
		incidents.POST("/:id/priority", h.setIncidentPriority)
		incidents.POST("/:id/note", h.sendIncidentNote)
	}

	// Маршруты гражданина
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("/status", h.myReportStatus)
		reports.POST("/:id/status", h.updateCitizenStatus)
	}

	// Экстренные оповещения
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.getAlert)
		alerts.POST("/dismiss", h.dismissAlert)
	}

	// Рекомендации по типу инцидента
	api.GET("/guidance/:type", h.getGuidance)

	// Регистрация ответственного
	api.POST("/responders/register", h.registerResponder)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
