package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"customer-matrix/pkg/metrics"
)

// Metrics 请求指标中间件，按路由模板聚合避免标签基数膨胀
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
