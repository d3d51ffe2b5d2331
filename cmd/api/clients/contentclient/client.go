package contentclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"byp-site/cmd/api/httpclient"
	"byp-site/config"
)

// Client는 원격 콘텐츠 API(WordPress REST, /wp-json/wp/v2)를 호출하는 얇은 클라이언트다.
//
// - 쿼리 조립과 응답 정규화만 담당하고, 에러는 그대로 호출자에게 돌려준다.
// - 에러를 삼키고 빈 목록으로 바꾸는 경계는 services.ContentService 다.
//
// baseURL 예: https://wp.blackyouthproject.com
type Client struct {
	base        *httpclient.BaseClient
	concurrency int
}

var ErrNotFound = errors.New("resource not found")

const (
	wpPrefix     = "/wp-json/wp/v2"
	bypPrefix    = "/wp-json/byp/v1"
	maxErrorBody = 2048
	maxPerPage   = 100
)

func New(cfg config.ContentAPIConfig) *Client {
	base := httpclient.NewBaseClientWithClient(
		httpclient.New(httpclient.Config{Timeout: cfg.Timeout}),
		cfg.BaseURL,
	)
	base.User = cfg.User
	base.Password = cfg.Password
	return NewWithBase(base, cfg.EnrichmentConcurrency)
}

// NewWithBase 는 이미 구성된 BaseClient 를 사용한다. concurrency 는 매거진 보강 시 동시 호출 수다.
func NewWithBase(base *httpclient.BaseClient, concurrency int) *Client {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Client{base: base, concurrency: concurrency}
}

// getJSON 은 GET 요청을 보내고 200 응답 바디를 out 으로 디코딩한다.
// 404 는 ErrNotFound, 그 외 비정상 상태는 op 이름을 포함한 에러가 된다.
func (c *Client) getJSON(ctx context.Context, op, relPath string, q url.Values, privileged bool, out any) (http.Header, error) {
	var (
		req *http.Request
		err error
	)
	if privileged {
		req, err = c.base.NewPrivilegedRequest(ctx, http.MethodGet, relPath, q, nil)
	} else {
		req, err = c.base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	}
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content-api %s: %w", op, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return resp.Header, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("content-api %s: decode: %w", op, err)
		}
		return resp.Header, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("content-api %s: status=%d body=%s", op, resp.StatusCode, string(body))
	}
}

// Health 는 /wp-json 인덱스를 호출해 콘텐츠 API 가 응답하는지 확인한다.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.getJSON(ctx, "Health", "/wp-json", nil, false, nil)
	return err
}
