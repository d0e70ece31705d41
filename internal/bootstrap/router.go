package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/projects-api/internal/api/http"
	"github.com/GoSim-25-26J-441/projects-api/internal/api/http/middleware"
	projectshttp "github.com/GoSim-25-26J-441/projects-api/internal/projects/http"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *zap.Logger
	Projects       *service.ProjectService
}

// BuildRouter wires the global chain (recovery, CORS, request id, request
// logger, rate limit) and registers health, metrics and project routes.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(dep.Logger))
	r.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Projects)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	projectsHandler := projectshttp.New(dep.Projects)
	projectsHandler.Register(r.Group("/projects"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
