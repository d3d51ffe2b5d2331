package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// queryInt 는 정수 쿼리 파라미터를 읽는다. 없거나 형식이 틀리면 def 를 쓴다.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return def
	}
	return v
}

// queryIntList 는 "1,2,3" 과 반복 파라미터(?tags=1&tags=2) 둘 다 받는다. 숫자가 아닌 값은 버린다.
func queryIntList(c *gin.Context, key string) []int {
	var out []int
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n > 0 {
				out = append(out, n)
			}
		}
	}
	return out
}

func pagination(c *gin.Context) (page, perPage int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage = queryInt(c, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// forceParam 은 ?force=true|1 이면 캐시를 무시하라는 뜻이다.
func forceParam(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("force"))
	return v
}
