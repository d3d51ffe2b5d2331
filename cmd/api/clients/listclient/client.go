package listclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"byp-site/cmd/api/httpclient"
	"byp-site/config"
)

// Client는 이메일 리스트(Mailchimp 호환) API 로 구독 요청을 보내는 얇은 클라이언트다.
//
// baseURL 예: https://us1.api.mailchimp.com/3.0
type Client struct {
	base   *httpclient.BaseClient
	listID string
	token  string
}

var ErrNotConfigured = errors.New("email list is not configured")

func New(cfg config.SubscribeConfig) *Client {
	return NewWithBase(httpclient.NewBaseClient(cfg.BaseURL), cfg.ListID, cfg.Token)
}

func NewWithBase(base *httpclient.BaseClient, listID, token string) *Client {
	return &Client{base: base, listID: listID, token: token}
}

type memberRequest struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Subscribe 는 POST /lists/{list_id}/members 를 호출한다.
// 이미 구독 중인 주소("Member Exists")는 성공으로 취급한다.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	if c.listID == "" || c.token == "" || c.base.BaseURL == "" {
		return ErrNotConfigured
	}

	buf, err := json.Marshal(memberRequest{EmailAddress: email, Status: "subscribed"})
	if err != nil {
		return err
	}

	relPath := path.Join("/lists", c.listID, "members")
	req, err := c.base.NewRequest(ctx, http.MethodPost, relPath, nil, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && strings.EqualFold(er.Title, "Member Exists") {
		return nil
	}
	return fmt.Errorf("list-api Subscribe: status=%d body=%s", resp.StatusCode, string(body))
}
