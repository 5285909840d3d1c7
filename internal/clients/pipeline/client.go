// Package pipeline 텍스트 파이프라인 서버(서버 B) 클라이언트
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai_chat_front/internal/clients/rest"
)

// Config 파이프라인 클라이언트 설정
type Config struct {
	BaseURL             string        // 파이프라인 서버 주소
	RunTimeout          time.Duration // run-text-pipeline 타임아웃
	ConversationTimeout time.Duration // 대화 내역 조회 타임아웃
}

// Client 파이프라인 클라이언트
type Client struct {
	config Config
	rest   *rest.Client
}

// Step2TTOT 파이프라인 2단계(TTOT) 결과
type Step2TTOT struct {
	TTOTText string `json:"ttot_text"` // 답장으로 사용할 텍스트
}

// Result run-text-pipeline 응답 구조
type Result struct {
	Success   bool       `json:"success"`
	Step2TTOT *Step2TTOT `json:"step2_ttot,omitempty"`
	Errors    []string   `json:"errors,omitempty"`
}

// NewClient 새 파이프라인 클라이언트 생성
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		rest:   rest.NewClient(),
	}
}

// Run 텍스트 파이프라인 실행. 폼 인코딩으로 text와 user_id를 전달한다
func (c *Client) Run(ctx context.Context, text, userID string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RunTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("text", text)
	form.Set("user_id", userID)

	endpoint := fmt.Sprintf("%s/run-text-pipeline", c.config.BaseURL)
	resp, err := c.rest.Do(ctx, http.MethodPost, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("파이프라인 서버 오류 응답: %d", resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("파이프라인 응답 파싱 실패: %v", err)
	}

	return &result, nil
}

// Conversation 대화 내역 조회. 본문은 해석하지 않고 그대로 반환한다
func (c *Client) Conversation(ctx context.Context, userID string) (*rest.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConversationTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/api/conversation/%s", c.config.BaseURL, url.PathEscape(userID))
	return c.rest.Do(ctx, http.MethodGet, endpoint, "", nil)
}
