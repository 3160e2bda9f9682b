package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response はGETの結果（ステータスコードと未解析のボディ）
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport はGETを実行してレスポンスを返す
// 通信に失敗した場合はエラーを返す
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// HTTPTransport は net/http を使う Transport
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport はHTTPTransportを作成する
// timeout が 0 の場合はタイムアウトを設定しない
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient は既存の http.Client を使う
func NewHTTPTransportWithClient(c *http.Client) *HTTPTransport {
	return &HTTPTransport{client: c}
}

func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

var _ Transport = (*HTTPTransport)(nil)
