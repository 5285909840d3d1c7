// Package rest 다운스트림 서버 공용 HTTP 클라이언트
package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Response 다운스트림 응답. 본문은 해석하지 않고 바이트로 보관한다
type Response struct {
	StatusCode int
	Body       []byte
}

// OK 2xx 여부
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client 타임아웃을 가진 범용 요청 클라이언트
type Client struct {
	client *http.Client
}

// NewClient 새 클라이언트 생성
func NewClient() *Client {
	return &Client{
		client: &http.Client{},
	}
}

// Do 요청을 보내고 상태 코드와 본문을 그대로 반환한다.
// 전송 실패만 오류로 취급하고 비2xx 판단은 호출자 몫이다
func (c *Client) Do(ctx context.Context, method, url, contentType string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
