package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/esportscoach/coaching-platform/docs"
	"github.com/esportscoach/coaching-platform/internal/api/handler"
	"github.com/esportscoach/coaching-platform/internal/api/middleware"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
	"github.com/esportscoach/coaching-platform/pkg/logger"
)

// Deps carries everything the HTTP layer needs. Services are built by the caller.
type Deps struct {
	Log zerolog.Logger

	Tokens    ports.TokenCodec
	Resolver  ports.PrincipalResolver
	Auth      ports.AuthService
	Profiles  ports.ProfileService
	Catalog   ports.CatalogService
	Content   ports.ContentService
	Reviews   ports.TestimonialService
	Bookings  ports.BookingService
	Readiness map[string]handler.CheckFunc

	// AllowOrigins lists the browser origins granted CORS access; "*" allows any.
	AllowOrigins     []string
	AllowCredentials bool
	CORSMaxAge       int

	// AuthRateLimit and AuthRateBurst throttle login and registration per client IP.
	// A zero rate disables throttling.
	AuthRateLimit float64
	AuthRateBurst int

	// Registry receives the HTTP request metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// PublicRoutes lists the routes anonymous callers may reach.
var PublicRoutes = []middleware.PublicRoute{
	{Method: http.MethodPost, Path: "/api/auth/login"},
	{Method: http.MethodPost, Path: "/api/auth/register"},
	{Method: http.MethodGet, Path: "/api/services"},
	{Method: http.MethodGet, Path: "/api/services/:id"},
	{Method: http.MethodGet, Path: "/api/content"},
	{Method: http.MethodGet, Path: "/api/content/latest"},
	{Method: http.MethodGet, Path: "/api/content/:id"},
	{Method: http.MethodGet, Path: "/api/testimonials"},
	{Method: http.MethodGet, Path: "/api/testimonials/stats"},
	{Method: http.MethodGet, Path: "/api/testimonials/:id"},
	{Method: http.MethodGet, Path: "/health"},
	{Method: http.MethodGet, Path: "/health/ready"},
	{Method: http.MethodGet, Path: "/metrics"},
	{Method: http.MethodGet, Path: "/swagger/*"},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestScopedLogger(d.Log))
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(cors(d.AllowOrigins, d.AllowCredentials, d.CORSMaxAge))
	e.Use(middleware.Authenticate(d.Tokens, d.Resolver, d.Log))
	e.Use(middleware.Authorize(PublicRoutes...))

	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleCoach)
	admin := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	throttle := authRateLimiter(d.AuthRateLimit, d.AuthRateBurst)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, throttle)
	auth.POST("/login", authHandler.Login, throttle)
	auth.GET("/me", authHandler.Me)

	// --- Profile (authenticated) ---
	profile := handler.NewProfileHandler(d.Profiles)
	user := e.Group("/api/user")
	user.GET("/profile", profile.Get)
	user.PUT("/profile", profile.Update)

	// --- Catalog ---
	catalog := handler.NewCatalogHandler(d.Catalog)
	services := e.Group("/api/services")
	services.GET("", catalog.List)
	services.GET("/:id", catalog.Get)
	services.POST("", catalog.Create, staff)
	services.PUT("/:id", catalog.Update, staff)
	services.DELETE("/:id", catalog.Deactivate, admin)

	// --- Content ---
	content := handler.NewContentHandler(d.Content)
	cg := e.Group("/api/content")
	cg.GET("", content.List)
	cg.GET("/latest", content.Latest)
	cg.GET("/:id", content.Get)
	cg.POST("", content.Create, admin)
	cg.PUT("/:id", content.Update, admin)
	cg.PUT("/:id/publish", content.Publish, admin)
	cg.DELETE("/:id", content.Delete, admin)

	// --- Testimonials ---
	reviews := handler.NewTestimonialHandler(d.Reviews)
	tg := e.Group("/api/testimonials")
	tg.GET("", reviews.ListApproved)
	tg.GET("/stats", reviews.Stats)
	tg.GET("/all", reviews.ListPending, admin)
	tg.GET("/:id", reviews.Get)
	tg.POST("", reviews.Create)
	tg.PUT("/:id", reviews.Update, admin)
	tg.PUT("/:id/approve", reviews.Approve, admin)
	tg.DELETE("/:id", reviews.Delete, admin)

	// --- Bookings (authenticated) ---
	bookings := handler.NewBookingHandler(d.Bookings)
	bg := e.Group("/api/bookings")
	bg.POST("", bookings.Create)
	bg.GET("", bookings.ListMine)
	bg.GET("/coach", bookings.ListForCoach, staff)
	bg.GET("/:id", bookings.Get)
	bg.PUT("/:id/cancel", bookings.Cancel)
	bg.PUT("/:id/status", bookings.UpdateStatus, staff)
	bg.DELETE("/:id", bookings.Delete, admin)

	// --- Health checks, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(d.Readiness)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestScopedLogger hands downstream middleware and handlers a logger
// tagged with the request id.
func requestScopedLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			c.SetRequest(req.WithContext(logger.WithRequest(req.Context(), log, id)))
			return next(c)
		}
	}
}

// requestLogger emits one structured line per request through zerolog.
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
			evt := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// cors answers browser preflights before the auth gates see them.
// A wildcard origin combined with credentials reflects the caller's Origin.
func cors(origins []string, credentials bool, maxAge int) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowCredentials:                         credentials,
		UnsafeWildcardOriginWithAllowCredentials: credentials && slices.Contains(origins, "*"),
		MaxAge:                                   maxAge,
	})
}

// authRateLimiter throttles credential endpoints per client IP.
func authRateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
