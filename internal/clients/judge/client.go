// Package judge 오디오 판단 서버(서버 C) 클라이언트
package judge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"ai_chat_front/internal/clients/rest"
)

// 전송 모드
const (
	ModeChunk = "chunk" // 스트리밍 청크
	ModeFile  = "file"  // 파일 전체 전사
)

// Config 판단 서버 클라이언트 설정
type Config struct {
	BaseURL       string        // 판단 서버 주소
	StartTimeout  time.Duration // 세션 시작 타임아웃
	IngestTimeout time.Duration // 청크/파일 전송 타임아웃
}

// Client 판단 서버 클라이언트
type Client struct {
	config Config
	rest   *rest.Client
}

// NewClient 새 판단 서버 클라이언트 생성
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		rest:   rest.NewClient(),
	}
}

// Start 새 녹음 세션 시작. 판단 서버 응답을 그대로 반환한다
func (c *Client) Start(ctx context.Context) (*rest.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.StartTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/start", c.config.BaseURL)
	return c.rest.Do(ctx, http.MethodPost, endpoint, "", nil)
}

// Ingest 오디오 청크/파일을 multipart로 전달한다.
// sessionId와 mode는 폼 필드, 오디오는 chunk 파일 파트로 싣는다
func (c *Client) Ingest(ctx context.Context, sessionID, mode, filename string, data []byte) (*rest.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.IngestTimeout)
	defer cancel()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("sessionId", sessionID); err != nil {
		return nil, fmt.Errorf("폼 필드 작성 실패: %v", err)
	}
	if err := writer.WriteField("mode", mode); err != nil {
		return nil, fmt.Errorf("폼 필드 작성 실패: %v", err)
	}

	part, err := createChunkPart(writer, filename)
	if err != nil {
		return nil, fmt.Errorf("파일 파트 생성 실패: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("오디오 데이터 쓰기 실패: %v", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("multipart 마감 실패: %v", err)
	}

	endpoint := fmt.Sprintf("%s/ingest-chunk", c.config.BaseURL)
	return c.rest.Do(ctx, http.MethodPost, endpoint, writer.FormDataContentType(), &buf)
}

// createChunkPart 오디오 파트를 application/octet-stream으로 만든다
func createChunkPart(writer *multipart.Writer, filename string) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="chunk"; filename="%s"`, filename))
	header.Set("Content-Type", "application/octet-stream")
	return writer.CreatePart(header)
}
