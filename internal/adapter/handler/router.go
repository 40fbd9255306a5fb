package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/incial/Incial/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	authHandler     *Auth
	calendarHandler *Calendar
	taskHandler     *Task
	meetingHandler  *Meeting
	companyHandler  *Company
	authMW          echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	calendarHandler *Calendar,
	taskHandler *Task,
	meetingHandler *Meeting,
	companyHandler *Company,
	authMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:             cfg,
		authHandler:     authHandler,
		calendarHandler: calendarHandler,
		taskHandler:     taskHandler,
		meetingHandler:  meetingHandler,
		companyHandler:  companyHandler,
		authMW:          authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupCalendarRoutes(v1)
	rt.setupTaskRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupCompanyRoutes(v1)
}

// setupAuthRoutes configures session routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/session", rt.authHandler.CreateSession)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMW)
}

// setupCalendarRoutes configures the calendar view and mutation routes
func (rt *Router) setupCalendarRoutes(g *echo.Group) {
	calGroup := g.Group("/calendar", rt.authMW)
	calGroup.GET("/month", rt.calendarHandler.Month)
	calGroup.GET("/day/:date", rt.calendarHandler.Day)
	calGroup.GET("/stats", rt.calendarHandler.Stats)
	calGroup.GET("/popover", rt.calendarHandler.Popover)
	calGroup.POST("/refresh", rt.calendarHandler.Refresh)
	calGroup.POST("/reschedule", rt.calendarHandler.Reschedule)
	calGroup.POST("/quick-add", rt.calendarHandler.QuickAdd)
}

// setupTaskRoutes configures task CRUD routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	taskGroup := g.Group("/tasks", rt.authMW)
	taskGroup.GET("", rt.taskHandler.List)
	taskGroup.POST("", rt.taskHandler.Create)
	taskGroup.PATCH("/:id", rt.taskHandler.Update)
	taskGroup.PATCH("/:id/status", rt.taskHandler.ChangeStatus)
	taskGroup.DELETE("/:id", rt.taskHandler.Delete)
}

// setupMeetingRoutes configures meeting CRUD routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", rt.authMW)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.PATCH("/:id", rt.meetingHandler.Update)
	meetingGroup.PATCH("/:id/status", rt.meetingHandler.ChangeStatus)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
}

// setupCompanyRoutes configures CRM lookup routes
func (rt *Router) setupCompanyRoutes(g *echo.Group) {
	companyGroup := g.Group("/companies", rt.authMW)
	companyGroup.GET("", rt.companyHandler.List)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
