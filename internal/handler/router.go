package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ad-approval-service/internal/handler/api"
	"ad-approval-service/internal/handler/middleware"
	"ad-approval-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	webhookHandler *api.PaymentWebhookHandler,
	adHandler *api.AdListingHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, webhookHandler, adHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, webhookHandler *api.PaymentWebhookHandler, adHandler *api.AdListingHandler) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: api.HealthCheck},
		{Method: http.MethodGet, Path: "/health", Handler: api.HealthCheck},
		{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(promhttp.Handler())},
		{Method: http.MethodPost, Path: "/webhook", Handler: webhookHandler.Handle},
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		ads := apiGroup.Group("/ads")
		addRoutes(ads, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: adHandler.Get},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
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
