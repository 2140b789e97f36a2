package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/veterinario/clinic-system/internal/api/handler"
	"github.com/veterinario/clinic-system/internal/api/middleware"
	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// RouterDeps bundles everything the HTTP layer needs.
type RouterDeps struct {
	AuthService        ports.AuthService
	AppointmentService ports.AppointmentService
	AuditService       ports.AuditService
	SessionStore       ports.SessionStore

	DB    *sql.DB
	Redis *redis.Client
	Mongo *mongo.Client
}

// NewRouter builds the Echo instance with all routes and middleware wired.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	appointmentHandler := handler.NewAppointmentHandler(deps.AppointmentService)
	auditHandler := handler.NewAuditHandler(deps.AuditService)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis, deps.Mongo)

	e.GET("/healthz", healthHandler.Live)
	e.GET("/readyz", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	e.POST("/login", authHandler.Login)

	// Everything below requires a live session.
	guarded := e.Group("", middleware.Session(deps.SessionStore))
	guarded.POST("/logout", authHandler.Logout)
	guarded.GET("/perfil", authHandler.Profile)
	guarded.GET("/citas", appointmentHandler.List)
	guarded.POST("/citas", appointmentHandler.Create)
	guarded.GET("/eventos", auditHandler.List, middleware.RBAC(domain.RoleAdmin))

	return e
}
