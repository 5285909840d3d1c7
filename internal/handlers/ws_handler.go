package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ai_chat_front/internal/config"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/services"
)

// WSHandler 방 구독 WebSocket 처리기
type WSHandler struct {
	hub      *services.HubService
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewWSHandler 새 WebSocket 처리기 생성
func NewWSHandler(hub *services.HubService, wsConfig config.WebSocketConfig, log *logger.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  wsConfig.ReadBufferSize,
			WriteBufferSize: wsConfig.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: log.With("handler", "ws"),
	}
}

// Subscribe GET /ws/chat 방 브로드캐스트 구독.
// 연결이 끊길 때까지 읽기 루프를 유지하고 종료 시 구독을 해제한다
func (h *WSHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket 업그레이드 실패", "error", err)
		return
	}

	roomID := c.DefaultQuery("room_id", "default")
	h.hub.Subscribe(roomID, conn)

	defer func() {
		h.hub.Unsubscribe(roomID, conn)
		conn.Close()
	}()

	for {
		// 구독 전용 채널이라 수신 데이터는 버리고 종료 감지만 한다
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("WebSocket 읽기 오류", "room_id", roomID, "error", err)
			}
			return
		}
	}
}
