package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"byp-site/cmd/api/metrics"
)

// RequestMetrics 는 진입부터 응답까지 걸린 시간을 라우트 패턴 단위로 기록한다.
// 매칭되지 않은 경로는 경로 폭증을 막기 위해 "unmatched" 로 묶는다.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start).Seconds())
	}
}
