package services

import (
	"context"

	"ai_chat_front/internal/clients/judge"
	"ai_chat_front/internal/clients/rest"
	"ai_chat_front/internal/logger"
)

// AudioResult 판단 서버 응답을 그대로 실어 나르는 결과.
// Raw가 nil이면 전송 실패이며 핸들러가 고정 오류 응답을 만든다
type AudioResult struct {
	Raw *rest.Response // 판단 서버 원본 응답
	Err error          // 전송 계층 오류
}

// AudioService 오디오 세션 프록시. 세션 상태는 전혀 들고 있지 않으며
// 판단 서버의 응답을 해석 없이 통과시킨다
type AudioService struct {
	judge *judge.Client
	log   *logger.Logger
}

// NewAudioService 새 오디오 프록시 생성
func NewAudioService(judgeClient *judge.Client, log *logger.Logger) *AudioService {
	return &AudioService{
		judge: judgeClient,
		log:   log.With("service", "audio"),
	}
}

// Open 판단 서버에 새 녹음 세션 생성을 요청한다
func (s *AudioService) Open(ctx context.Context) AudioResult {
	resp, err := s.judge.Start(ctx)
	if err != nil {
		s.log.Warn("판단 서버 /start 통신 에러", "error", err)
		return AudioResult{Err: err}
	}
	return AudioResult{Raw: resp}
}

// Ingest 오디오 청크/파일을 판단 서버로 중계한다.
// 청크 간 순서 보장은 클라이언트 호출 순서에 맡긴다
func (s *AudioService) Ingest(ctx context.Context, sessionID, mode, filename string, data []byte) AudioResult {
	resp, err := s.judge.Ingest(ctx, sessionID, mode, filename, data)
	if err != nil {
		s.log.Warn("판단 서버 /ingest-chunk 통신 에러", "session_id", sessionID, "error", err)
		return AudioResult{Err: err}
	}
	return AudioResult{Raw: resp}
}
