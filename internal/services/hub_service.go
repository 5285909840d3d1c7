package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"ai_chat_front/internal/logger"
)

// HubService 방 단위 WebSocket 브로드캐스트 허브.
// 새 메시지가 만들어지면 같은 방을 구독 중인 클라이언트에게 밀어 준다
type HubService struct {
	rooms map[string]map[*websocket.Conn]bool
	log   *logger.Logger
	mu    sync.RWMutex
}

// NewHubService 새 허브 생성
func NewHubService(log *logger.Logger) *HubService {
	return &HubService{
		rooms: make(map[string]map[*websocket.Conn]bool),
		log:   log.With("service", "hub"),
	}
}

// Subscribe 방 구독 등록
func (s *HubService) Subscribe(roomID string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rooms[roomID] == nil {
		s.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	s.rooms[roomID][conn] = true
}

// Unsubscribe 방 구독 해제
func (s *HubService) Unsubscribe(roomID string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clients, ok := s.rooms[roomID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(s.rooms, roomID)
		}
	}
}

// Broadcast 방 구독자 전원에게 JSON으로 전송한다. 실패한 연결은 제거
func (s *HubService) Broadcast(roomID string, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.rooms[roomID] {
		if err := conn.WriteJSON(v); err != nil {
			s.log.Warn("브로드캐스트 전송 실패", "room_id", roomID, "error", err)
			conn.Close()
			delete(s.rooms[roomID], conn)
		}
	}
}

// Count 방 구독자 수
func (s *HubService) Count(roomID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms[roomID])
}
