package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/config"
)

// StaticHandler 정적 파일 처리기
type StaticHandler struct {
	staticDir string
}

// NewStaticHandler 새 정적 파일 처리기 생성
func NewStaticHandler(storage config.StorageConfig) *StaticHandler {
	return &StaticHandler{staticDir: storage.StaticDir}
}

// Index GET / 루트에서 index.html 반환
func (h *StaticHandler) Index(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}

// Favicon GET /favicon.ico
func (h *StaticHandler) Favicon(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "favicon.ico"))
}

// Health GET /health 헬스체크
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ai_chat_front",
	})
}
