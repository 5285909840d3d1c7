package services

import (
	"sync"
	"time"

	"ai_chat_front/internal/models"
)

// LedgerService 프로세스 내 메모리에 채팅 메시지를 보관한다.
// 추가만 가능하고 삭제는 없다 (실서비스라면 DB로 교체)
type LedgerService struct {
	messages []models.Message
	mu       sync.RWMutex
}

// NewLedgerService 새 메시지 원장 생성
func NewLedgerService() *LedgerService {
	return &LedgerService{
		messages: make([]models.Message, 0),
	}
}

// Append 메시지를 추가하고 저장된 메시지를 반환한다.
// ID는 현재 메시지 수 + 1 로 부여한다
func (s *LedgerService) Append(roomID, text, clientType string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:         len(s.messages) + 1,
		RoomID:     roomID,
		Text:       text,
		ClientType: clientType,
		CreatedAt:  time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Query 방의 메시지를 입력 순서대로 반환한다
func (s *LedgerService) Query(roomID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Message, 0)
	for _, msg := range s.messages {
		if msg.RoomID == roomID {
			result = append(result, msg)
		}
	}
	return result
}
