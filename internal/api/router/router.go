package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customer-matrix/config"
	"customer-matrix/internal/api/docs"
	"customer-matrix/internal/api/handler"
	"customer-matrix/internal/api/middleware"
	"customer-matrix/pkg/metrics"
	"customer-matrix/pkg/redis"
	"customer-matrix/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时不限流；m 为 nil 时不采集指标
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── 指标与文档 ──
	if m != nil && cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	docs.Register(r)

	// ── API ──
	api := r.Group("/api")
	if cfg.Server.RateLimit.Enabled {
		api.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window, logger))
	}
	{
		// 地点模块
		locations := api.Group("/locations")
		{
			locations.GET("", h.Location.ListLocations)
			locations.GET("/:id", h.Location.GetLocation)
			locations.POST("", h.Location.CreateLocation)
			locations.PUT("/:id", h.Location.UpdateLocation)
			locations.DELETE("/:id", h.Location.DeleteLocation)
		}

		// 基地模块
		bases := api.Group("/bases")
		{
			bases.GET("", h.Base.ListBases)
			bases.GET("/:id", h.Base.GetBase)
			bases.POST("", h.Base.CreateBase)
			bases.PUT("/:id", h.Base.UpdateBase)
			bases.DELETE("/:id", h.Base.DeleteBase)
		}

		// 单位模块
		units := api.Group("/units")
		{
			units.GET("", h.Unit.ListUnits)
			units.GET("/:id", h.Unit.GetUnit)
			units.POST("", h.Unit.CreateUnit)
			units.PUT("/:id", h.Unit.UpdateUnit)
			units.DELETE("/:id", h.Unit.DeleteUnit)
		}

		// 导出模块
		export := api.Group("/export")
		{
			export.GET("/records", h.Export.ExportRecords)
		}
	}

	return r
}
