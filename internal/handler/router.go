package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetclinic-scheduling/internal/domain/staff"
	"vetclinic-scheduling/internal/handler/api"
	"vetclinic-scheduling/internal/handler/middleware"
	"vetclinic-scheduling/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, appointmentHandler *api.AppointmentHandler, waitingRoomHandler *api.WaitingRoomHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, appointmentHandler, waitingRoomHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, appointmentHandler *api.AppointmentHandler, waitingRoomHandler *api.WaitingRoomHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Schedule},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointmentHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: appointmentHandler.Complete},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: appointmentHandler.MarkNoShow},
				{Method: http.MethodPost, Path: "/:id/start-service", Handler: appointmentHandler.StartService},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: waitingRoomHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:id/ensure-in-service", Handler: waitingRoomHandler.EnsureInService},
			})
		}

		waitingRoom := apiGroup.Group("/waiting-room")
		{
			addRoutes(waitingRoom, []route{
				{Method: http.MethodPost, Path: "/entries", Handler: waitingRoomHandler.WalkIn},
				{Method: http.MethodGet, Path: "/entries/:id", Handler: waitingRoomHandler.Get},
				{Method: http.MethodPost, Path: "/entries/:id/call", Handler: waitingRoomHandler.Call},
				{Method: http.MethodPost, Path: "/entries/:id/start-service", Handler: waitingRoomHandler.StartService},
				{Method: http.MethodPost, Path: "/entries/:id/close", Handler: waitingRoomHandler.Close},
				// Triage reassessment is a clinical judgement call
				{Method: http.MethodPost, Path: "/entries/:id/reassess", Handler: waitingRoomHandler.Reassess,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(staff.RoleVeterinary, staff.RoleAssistantVeterinary, staff.RoleAdmin)}},
			})
		}

		clinics := apiGroup.Group("/clinics")
		{
			addRoutes(clinics, []route{
				{Method: http.MethodGet, Path: "/:id/waiting-room", Handler: waitingRoomHandler.TriageBoard},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
