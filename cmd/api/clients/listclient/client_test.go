package listclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byp-site/cmd/api/httpclient"
)

func TestSubscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3.0/lists/L1/members", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body memberRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "subscribed", body.Status)

		switch body.EmailAddress {
		case "new@example.com":
			w.WriteHeader(http.StatusOK)
		case "old@example.com":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"title":"Member Exists","detail":"already a list member"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"title":"Invalid Resource"}`))
		}
	}))
	defer srv.Close()

	c := NewWithBase(httpclient.NewBaseClient(srv.URL+"/3.0"), "L1", "tok")
	ctx := context.Background()

	assert.NoError(t, c.Subscribe(ctx, "new@example.com"))
	assert.NoError(t, c.Subscribe(ctx, "old@example.com"))
	assert.Error(t, c.Subscribe(ctx, "bad@example.com"))
}

func TestSubscribeNotConfigured(t *testing.T) {
	c := NewWithBase(httpclient.NewBaseClient("http://localhost"), "", "")
	err := c.Subscribe(context.Background(), "a@b.c")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
