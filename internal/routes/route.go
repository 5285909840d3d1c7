// Package routes 라우트 등록
package routes

import (
	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/config"
	"ai_chat_front/internal/handlers"
)

// Handlers 라우트 등록에 필요한 처리기 모음
type Handlers struct {
	Message *handlers.MessageHandler
	Auth    *handlers.AuthHandler
	Audio   *handlers.AudioHandler
	WS      *handlers.WSHandler
	Static  *handlers.StaticHandler
}

// RegisterRoutes 모든 라우트를 등록한다
func RegisterRoutes(r *gin.Engine, storage config.StorageConfig, h Handlers) {
	// 정적 파일
	r.GET("/", h.Static.Index)
	r.GET("/favicon.ico", h.Static.Favicon)
	r.Static("/static", storage.StaticDir)
	r.Static("/wavfiles", storage.WavDir)

	r.GET("/health", handlers.Health)

	// 채팅 메시지 API
	api := r.Group("/api")
	{
		api.GET("/messages", h.Message.List)
		api.POST("/messages", h.Message.Create)
		api.GET("/conversation/:user_id", h.Message.Conversation)

		api.POST("/login", h.Auth.Login)
		api.POST("/register", h.Auth.Register)
		api.GET("/get_uuid", h.Auth.GetUUID)
	}

	// 오디오 스트리밍 프록시
	r.POST("/start", h.Audio.Start)
	r.POST("/ingest-chunk", h.Audio.IngestChunk)

	// 새 메시지 푸시 구독
	r.GET("/ws/chat", h.WS.Subscribe)
}
