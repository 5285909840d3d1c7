package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_chat_front/internal/clients/pipeline"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/models"
)

func newChatService(t *testing.T, pipelineURL string) *ChatService {
	t.Helper()

	log, err := logger.New("")
	require.NoError(t, err)

	client := pipeline.NewClient(pipeline.Config{
		BaseURL:             pipelineURL,
		RunTimeout:          2 * time.Second,
		ConversationTimeout: 2 * time.Second,
	})
	return NewChatService(NewLedgerService(), client, NewHubService(log), log)
}

func TestChatService_CreateWithReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"step2_ttot":{"ttot_text":"답장입니다"}}`))
	}))
	defer server.Close()

	chat := newChatService(t, server.URL)

	resp := chat.Create(context.Background(), models.CreateMessageRequest{
		RoomID:     "default",
		Text:       "안녕",
		ClientType: "web",
		UserID:     "alice",
	})

	assert.Equal(t, 1, resp.ID)
	require.NotNil(t, resp.ReplyText)
	assert.Equal(t, "답장입니다", *resp.ReplyText)

	// 파이프라인 결과와 무관하게 메시지는 저장되어 있어야 한다
	assert.Len(t, chat.List("default"), 1)
}

func TestChatService_CreateDegradesOnPipelineErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"errors":["TTOT 변환 실패","DB 저장 실패"]}`))
	}))
	defer server.Close()

	chat := newChatService(t, server.URL)

	resp := chat.Create(context.Background(), models.CreateMessageRequest{RoomID: "default", Text: "안녕", ClientType: "web", UserID: "alice"})

	require.NotNil(t, resp.ReplyText)
	assert.Equal(t, "파이프라인 실행 중 오류가 발생했습니다.\n오류: TTOT 변환 실패, DB 저장 실패", *resp.ReplyText)
}

func TestChatService_CreateDegradesOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	chat := newChatService(t, server.URL)

	resp := chat.Create(context.Background(), models.CreateMessageRequest{RoomID: "default", Text: "안녕", ClientType: "web", UserID: "alice"})

	// 전송 실패도 오류 문구로 강등될 뿐 메시지 생성은 성공한다
	require.NotNil(t, resp.ReplyText)
	assert.Contains(t, *resp.ReplyText, "오류:")
	assert.Len(t, chat.List("default"), 1)
}

func TestChatService_CreateWithoutStep2IsFailure(t *testing.T) {
	// success지만 step2 결과가 없으면 실패 문구를 쓴다
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	chat := newChatService(t, server.URL)

	resp := chat.Create(context.Background(), models.CreateMessageRequest{RoomID: "default", Text: "안녕", ClientType: "web", UserID: "alice"})

	require.NotNil(t, resp.ReplyText)
	assert.Equal(t, "파이프라인 실행 중 오류가 발생했습니다.", *resp.ReplyText)
}
