package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/clients/judge"
	"ai_chat_front/internal/services"
)

// AudioHandler 오디오 스트리밍 프록시 API 처리기
type AudioHandler struct {
	audio *services.AudioService
}

// NewAudioHandler 새 오디오 처리기 생성
func NewAudioHandler(audio *services.AudioService) *AudioHandler {
	return &AudioHandler{audio: audio}
}

// Start POST /start 새 녹음 세션 시작
func (h *AudioHandler) Start(c *gin.Context) {
	result := h.audio.Open(c.Request.Context())
	if result.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Err.Error()})
		return
	}
	if !result.Raw.OK() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.Data(http.StatusOK, "application/json", result.Raw.Body)
}

// IngestChunk POST /ingest-chunk 오디오 청크/파일 패스스루.
// 판단 서버 응답은 상태 코드와 본문 모두 그대로 전달한다
func (h *AudioHandler) IngestChunk(c *gin.Context) {
	sessionID := c.PostForm("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	mode := c.DefaultPostForm("mode", judge.ModeChunk)

	fileHeader, err := c.FormFile("chunk")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chunk is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.audio.Ingest(c.Request.Context(), sessionID, mode, fileHeader.Filename, data)
	if result.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "Error",
			"text":   nil,
			"detail": result.Err.Error(),
		})
		return
	}

	c.Data(result.Raw.StatusCode, "application/json", result.Raw.Body)
}
