package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

type Router struct {
	userHandler   *UserHandler
	authHandler   *AuthHandler
	authenticator middleware.Authenticator
	config        usecasecontract.IConfigProvider
	log           *zap.Logger
	httpMetrics   *middleware.HTTPMetrics
	metrics       http.Handler
}

// NewRouter builds the handlers. A nil registry means the default prometheus registry.
func NewRouter(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider, log *zap.Logger, registry *prometheus.Registry) (*Router, error) {
	var (
		reg     prometheus.Registerer = prometheus.DefaultRegisterer
		metrics                       = promhttp.Handler()
	)
	if registry != nil {
		reg = registry
		metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}
	authMetrics, err := middleware.NewAuthMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Router{
		userHandler:   NewUserHandler(userUsecase),
		authHandler:   NewAuthHandler(userUsecase, authMetrics),
		authenticator: userUsecase,
		config:        config,
		log:           log,
		httpMetrics:   httpMetrics,
		metrics:       metrics,
	}, nil
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	origins := r.config.GetCORSAllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.log))
	router.Use(r.httpMetrics.Handler())
	router.Use(cors.New(r.corsConfig()))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitRPS())))

	router.GET("/metrics", gin.WrapH(r.metrics))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", middleware.RequireAuth(r.authenticator), r.authHandler.Logout)
	}

	users := v1.Group("/users")
	users.Use(middleware.RequireAuth(r.authenticator))
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/me", r.userHandler.GetCurrentUser)
		users.GET("/:id", r.userHandler.GetUser)
		users.PATCH("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
		users.PATCH("/:id/status", r.userHandler.SetUserStatus)
	}
}
