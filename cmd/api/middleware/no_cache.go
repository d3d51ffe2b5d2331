package middleware

import "github.com/gin-gonic/gin"

// NoCache 는 응답이 브라우저/프록시 캐시에 남지 않도록 헤더를 강제한다.
// 자주 바뀌는 매거진 이슈 목록에 사용한다.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		c.Next()
	}
}
