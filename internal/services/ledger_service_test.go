package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerService_AppendAssignsMonotonicIDs(t *testing.T) {
	ledger := NewLedgerService()

	// 같은 방에 N개 추가하면 ID가 1..N으로 부여된다
	const n = 5
	for i := 0; i < n; i++ {
		msg := ledger.Append("default", fmt.Sprintf("메시지 %d", i+1), "web")
		assert.Equal(t, i+1, msg.ID)
		assert.False(t, msg.CreatedAt.IsZero())
	}

	messages := ledger.Query("default")
	assert.Len(t, messages, n)
	for i, msg := range messages {
		assert.Equal(t, i+1, msg.ID)
		assert.Equal(t, fmt.Sprintf("메시지 %d", i+1), msg.Text)
	}
}

func TestLedgerService_QueryFiltersByRoom(t *testing.T) {
	ledger := NewLedgerService()

	ledger.Append("room-a", "a1", "web")
	ledger.Append("room-b", "b1", "app")
	ledger.Append("room-a", "a2", "web")

	roomA := ledger.Query("room-a")
	assert.Len(t, roomA, 2)
	assert.Equal(t, "a1", roomA[0].Text)
	assert.Equal(t, "a2", roomA[1].Text)

	// ID는 방이 아니라 프로세스 전체 기준으로 증가한다
	assert.Equal(t, 1, roomA[0].ID)
	assert.Equal(t, 3, roomA[1].ID)

	assert.Empty(t, ledger.Query("room-c"))
}

func TestLedgerService_QueryReturnsCopy(t *testing.T) {
	ledger := NewLedgerService()
	ledger.Append("default", "원본", "web")

	messages := ledger.Query("default")
	messages[0].Text = "변조"

	assert.Equal(t, "원본", ledger.Query("default")[0].Text)
}
