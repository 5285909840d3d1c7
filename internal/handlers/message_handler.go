package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/clients/pipeline"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/models"
	"ai_chat_front/internal/services"
)

// MessageHandler 채팅 메시지 API 처리기
type MessageHandler struct {
	chat     *services.ChatService
	pipeline *pipeline.Client
	log      *logger.Logger
}

// NewMessageHandler 새 메시지 처리기 생성
func NewMessageHandler(chat *services.ChatService, pipelineClient *pipeline.Client, log *logger.Logger) *MessageHandler {
	return &MessageHandler{
		chat:     chat,
		pipeline: pipelineClient,
		log:      log.With("handler", "message"),
	}
}

// List GET /api/messages 방의 메시지 목록
func (h *MessageHandler) List(c *gin.Context) {
	roomID := c.DefaultQuery("room_id", "default")
	c.JSON(http.StatusOK, h.chat.List(roomID))
}

// Create POST /api/messages 메시지 저장 후 파이프라인 실행.
// 파이프라인이 실패해도 항상 200으로 응답한다
func (h *MessageHandler) Create(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 원본 클라이언트가 생략할 수 있는 필드 기본값
	if req.RoomID == "" {
		req.RoomID = "default"
	}
	if req.ClientType == "" {
		req.ClientType = "web"
	}
	if req.UserID == "" {
		req.UserID = "test"
	}

	c.JSON(http.StatusOK, h.chat.Create(c.Request.Context(), req))
}

// Conversation GET /api/conversation/:user_id 대화 내역 프록시
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := c.Param("user_id")

	resp, err := h.pipeline.Conversation(c.Request.Context(), userID)
	if err != nil {
		h.log.Warn("대화 내역 조회 통신 에러", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        err.Error(),
			"user_id":      userID,
			"conversation": []interface{}{},
		})
		return
	}
	if !resp.OK() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "Failed to load conversation",
			"user_id":      userID,
			"conversation": []interface{}{},
		})
		return
	}

	c.Data(http.StatusOK, "application/json", resp.Body)
}
