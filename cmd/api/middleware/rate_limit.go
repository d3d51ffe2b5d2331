package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"byp-site/cmd/api/dto"
)

const maxTrackedClients = 4096

// RateLimit 는 클라이언트 IP 별 token bucket 으로 요청 수를 제한한다.
// 추적하는 IP 수는 LRU 로 제한한다. perMinute 가 0 이하면 제한하지 않는다.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var mu sync.Mutex
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	every := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := limiters.Get(ip)
		if !ok {
			lim = rate.NewLimiter(every, burst)
			limiters.Add(ip, lim)
		}
		mu.Unlock()

		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: "too_many_requests"})
			return
		}
		c.Next()
	}
}
