package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/schooldesk/school-api/internal/api/handler"
	"github.com/schooldesk/school-api/internal/api/middleware"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// Options carries everything the router needs. Services are built by the
// caller so the router stays free of storage concerns.
type Options struct {
	Schools  ports.SchoolService
	Roster   ports.RosterService
	Messages ports.MessageService
	Tokens   ports.TokenVerifier

	HealthChecks map[string]handler.HealthCheck
	CORSOrigins  []string
	Logger       zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handler.IdempotencyKeyHeader,
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "school",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	auth := middleware.Auth(opts.Tokens)
	owner := middleware.OwnSchool("schoolId")

	schoolHandler := handler.NewSchoolHandler(opts.Schools)
	studentHandler := handler.NewStudentHandler(opts.Roster)
	staffHandler := handler.NewStaffHandler(opts.Roster)
	messageHandler := handler.NewMessageHandler(opts.Messages)
	healthHandler := handler.NewHealthHandler(opts.HealthChecks)

	// --- Account routes ---
	schools := e.Group("/api/schools")
	schools.POST("/register", schoolHandler.Register)
	schools.POST("/login", schoolHandler.Login)
	schools.GET("/me", schoolHandler.Me, auth)

	// --- Routes scoped to the authenticated school ---
	owned := schools.Group("/:schoolId", auth, owner)
	owned.GET("", schoolHandler.Get)
	owned.PATCH("", schoolHandler.Update)

	owned.POST("/students", studentHandler.Create)
	owned.GET("/students", studentHandler.List)
	owned.GET("/students/:studentId", studentHandler.Get)
	owned.PUT("/students/:studentId", studentHandler.Update)
	owned.DELETE("/students/:studentId", studentHandler.Delete)

	owned.POST("/staffs", staffHandler.Create)
	owned.GET("/staffs", staffHandler.List)
	owned.GET("/staffs/:staffId", staffHandler.Get)
	owned.PUT("/staffs/:staffId", staffHandler.Update)
	owned.DELETE("/staffs/:staffId", staffHandler.Delete)

	owned.POST("/messages", messageHandler.Send)
	owned.GET("/messages/inbox", messageHandler.Inbox)
	owned.GET("/messages/outbox", messageHandler.Outbox)
	owned.PATCH("/messages/:messageId/viewed", messageHandler.MarkViewed)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
