package services

import (
	"context"
	"fmt"
	"strings"

	"ai_chat_front/internal/clients/pipeline"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/models"
)

// 파이프라인 실패 시 사용자에게 보여줄 답장
const (
	replyPipelineFailed = "파이프라인 실행 중 오류가 발생했습니다."
)

// ChatService 메시지 저장과 텍스트 파이프라인 전달을 묶는 오케스트레이터.
// 파이프라인이 죽어 있어도 메시지 생성은 항상 성공한다
type ChatService struct {
	ledger   *LedgerService
	pipeline *pipeline.Client
	hub      *HubService
	log      *logger.Logger
}

// NewChatService 새 채팅 서비스 생성
func NewChatService(ledger *LedgerService, pipelineClient *pipeline.Client, hub *HubService, log *logger.Logger) *ChatService {
	return &ChatService{
		ledger:   ledger,
		pipeline: pipelineClient,
		hub:      hub,
		log:      log.With("service", "chat"),
	}
}

// Create 메시지를 먼저 원장에 저장한 뒤 파이프라인을 실행한다.
// 파이프라인 결과와 무관하게 저장된 메시지와 답장(또는 오류 문구)을 돌려준다
func (s *ChatService) Create(ctx context.Context, req models.CreateMessageRequest) models.MessageResponse {
	msg := s.ledger.Append(req.RoomID, req.Text, req.ClientType)

	s.log.Info("텍스트 파이프라인 실행 시작", "message_id", msg.ID, "user_id", req.UserID, "mode", req.Mode)

	replyText := s.forward(ctx, req.Text, req.UserID)

	response := models.MessageResponse{
		Message:   msg,
		ReplyText: &replyText,
	}

	// 같은 방 구독자에게 답장 포함 메시지를 푸시
	s.hub.Broadcast(msg.RoomID, response)

	return response
}

// forward 파이프라인을 호출해 답장 텍스트를 도출한다
func (s *ChatService) forward(ctx context.Context, text, userID string) string {
	result, err := s.pipeline.Run(ctx, text, userID)
	if err != nil {
		// 전송 실패는 재시도 없이 오류 문구로 강등한다
		s.log.Warn("파이프라인 실행 실패", "error", err)
		return fmt.Sprintf("오류: %v", err)
	}

	if result.Success && result.Step2TTOT != nil {
		s.log.Info("파이프라인 실행 완료")
		return result.Step2TTOT.TTOTText
	}

	// 구조상 성공이지만 파이프라인 내부 오류가 보고된 경우
	replyText := replyPipelineFailed
	if len(result.Errors) > 0 {
		replyText += fmt.Sprintf("\n오류: %s", strings.Join(result.Errors, ", "))
	}
	return replyText
}

// List 방의 메시지 목록 조회
func (s *ChatService) List(roomID string) []models.Message {
	return s.ledger.Query(roomID)
}
