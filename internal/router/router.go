package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/teleclinic/telemed-api/internal/config"
	"github.com/teleclinic/telemed-api/internal/handler"
	"github.com/teleclinic/telemed-api/internal/handler/prometheus"
	"github.com/teleclinic/telemed-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// PublicHandler additionally exposes routes that skip authentication.
type PublicHandler interface {
	Handler
	RegisterPublicRoutes(*gin.RouterGroup)
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	metrics       *prometheus.Handler
	h             *handler.Handler
	userH         PublicHandler
	patientH      Handler
	consultationH Handler
	labTestH      Handler
	messageH      Handler
}

func NewRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	auth *middleware.AuthMiddleware,
	metrics *prometheus.Handler,
	h *handler.Handler,
	userH PublicHandler,
	patientH Handler,
	consultationH Handler,
	labTestH Handler,
	messageH Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		metrics.Middleware(),
	)

	// Deliberately permissive: the API is consumed by browser clients
	// served from arbitrary origins.
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
		corsConfig.AllowCredentials = true
	}
	engine.Use(cors.New(corsConfig))

	return &Router{
		engine:        engine,
		auth:          auth,
		metrics:       metrics,
		h:             h,
		userH:         userH,
		patientH:      patientH,
		consultationH: consultationH,
		labTestH:      labTestH,
		messageH:      messageH,
	}
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.setupHealthCheck(root)

	// Public routes
	r.userH.RegisterPublicRoutes(root)

	// Protected routes
	protected := root.Group("")
	protected.Use(r.auth.Authenticate())
	r.userH.RegisterRoutes(protected)
	r.patientH.RegisterRoutes(protected)
	r.consultationH.RegisterRoutes(protected)
	r.labTestH.RegisterRoutes(protected)
	r.messageH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("", r.h.HealthCheck)
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	rg.GET("/metrics", r.metrics.Handler())
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
