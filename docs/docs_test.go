package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "/", parsed.BasePath)

	for path, method := range map[string]string{
		"/api/posts":                    "get",
		"/api/posts/{id}":               "get",
		"/api/authors/{username}/posts": "get",
		"/api/magazine/issues/latest":   "get",
		"/api/subscribe":                "post",
		"/view/home":                    "get",
		"/view/search":                  "get",
		"/view/magazine":                "get",
		"/view/cache":                   "delete",
	} {
		require.Contains(t, parsed.Paths, path)
		assert.Contains(t, parsed.Paths[path], method, path)
	}
	assert.Len(t, parsed.Paths, 21)
	assert.Contains(t, parsed.Definitions, "dto.MagazineViewDTO")
}
