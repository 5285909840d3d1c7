package models

import "time"

// Message 채팅 메시지
type Message struct {
	ID         int       `json:"id"`          // 프로세스 내 단조 증가 ID
	RoomID     string    `json:"room_id"`     // 방 ID
	Text       string    `json:"text"`        // 메시지 본문
	ClientType string    `json:"client_type"` // 클라이언트 종류 (web 등)
	CreatedAt  time.Time `json:"created_at"`  // 생성 시각(UTC)
}

// CreateMessageRequest 메시지 생성 요청
type CreateMessageRequest struct {
	RoomID     string `json:"room_id"`
	Text       string `json:"text"`
	ClientType string `json:"client_type"`
	UserID     string `json:"user_id"` // 로그인한 사용자 ID
	Mode       string `json:"mode"`    // 입력 모드(저장하지 않음)
}

// MessageResponse 메시지 생성 응답. 파이프라인 답장을 포함한다
type MessageResponse struct {
	Message
	ReplyText *string `json:"reply_text"` // 서버 B 답장 텍스트
}
