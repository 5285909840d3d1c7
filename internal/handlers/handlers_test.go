package handlers_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ai_chat_front/internal/clients/judge"
	"ai_chat_front/internal/clients/pipeline"
	"ai_chat_front/internal/config"
	"ai_chat_front/internal/handlers"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/routes"
	"ai_chat_front/internal/services"
)

// testEnv 테스트용 서버 구성 요소
type testEnv struct {
	router *gin.Engine
	hub    *services.HubService
}

// setupRouter 실제 main과 같은 배선으로 테스트 라우터를 만든다
func setupRouter(t *testing.T, pipelineURL, judgeURL, userDataPath string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("")
	require.NoError(t, err)

	if userDataPath == "" {
		userDataPath = filepath.Join(t.TempDir(), "userdata.json")
	}

	staticDir := filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.MkdirAll(staticDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>index</html>"), 0644))

	storage := config.StorageConfig{
		UserDataPath: userDataPath,
		StaticDir:    staticDir,
		WavDir:       filepath.Join(t.TempDir(), "wavfiles"),
	}

	pipelineClient := pipeline.NewClient(pipeline.Config{
		BaseURL:             pipelineURL,
		RunTimeout:          2 * time.Second,
		ConversationTimeout: 2 * time.Second,
	})
	judgeClient := judge.NewClient(judge.Config{
		BaseURL:       judgeURL,
		StartTimeout:  2 * time.Second,
		IngestTimeout: 2 * time.Second,
	})

	ledgerService := services.NewLedgerService()
	userService := services.NewUserService(storage.UserDataPath)
	hubService := services.NewHubService(log)
	chatService := services.NewChatService(ledgerService, pipelineClient, hubService, log)
	audioService := services.NewAudioService(judgeClient, log)

	h := routes.Handlers{
		Message: handlers.NewMessageHandler(chatService, pipelineClient, log),
		Auth:    handlers.NewAuthHandler(userService),
		Audio:   handlers.NewAudioHandler(audioService),
		WS:      handlers.NewWSHandler(hubService, config.WebSocketConfig{ReadBufferSize: 1024, WriteBufferSize: 1024}, log),
		Static:  handlers.NewStaticHandler(storage),
	}

	r := gin.New()
	routes.RegisterRoutes(r, storage, h)

	return &testEnv{router: r, hub: hubService}
}
