package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterDeps struct {
	AllowedOrigins []string
	Logger         *zap.Logger
	Gatherer       prometheus.Gatherer
	Incidents      *IncidentHandler
	Chat           *ChatHandler
	Status         *StatusHandler
}

// NewRouter - 라우트 등록
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(deps.Logger))
	router.Use(CORSMiddleware(deps.AllowedOrigins, false))

	router.GET("/ping", Ping)
	router.GET("/", Root)
	router.GET("/openapi.json", OpenAPIDoc)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		api.POST("/incidents/upload", deps.Incidents.UploadIncidents)
		api.GET("/incidents", deps.Incidents.GetIncidents)
		api.GET("/incidents/charts", deps.Incidents.GetCharts)

		api.POST("/chat", deps.Chat.Chat)
		api.GET("/chat/history", deps.Chat.GetHistory)
		api.GET("/chat/presets", deps.Chat.GetPresets)
		api.DELETE("/session", deps.Chat.ResetSession)

		api.GET("/status", deps.Status.GetStatus)
	}

	return router
}
