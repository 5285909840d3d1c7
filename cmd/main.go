package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/clients/judge"
	"ai_chat_front/internal/clients/pipeline"
	"ai_chat_front/internal/config"
	"ai_chat_front/internal/handlers"
	"ai_chat_front/internal/logger"
	"ai_chat_front/internal/middleware"
	"ai_chat_front/internal/routes"
	"ai_chat_front/internal/services"
)

func main() {
	configPath := flag.String("config", "config.yaml", "설정 파일 경로")
	flag.Parse()

	// 로거 설정
	logMode := os.Getenv("LOG_MODE")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("채팅 프론트 서버 시작")

	// 설정 로드
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("설정 로드 실패", "error", err)
		os.Exit(1)
	}

	// 녹음 파일 디렉토리 준비
	if err := os.MkdirAll(cfg.Storage.WavDir, 0755); err != nil {
		log.Error("녹음 디렉토리 생성 실패", "dir", cfg.Storage.WavDir, "error", err)
		os.Exit(1)
	}

	// 다운스트림 클라이언트
	pipelineClient := pipeline.NewClient(pipeline.Config{
		BaseURL:             cfg.Pipeline.BaseURL,
		RunTimeout:          cfg.Pipeline.RunTimeoutDuration(),
		ConversationTimeout: cfg.Pipeline.ConversationTimeoutDuration(),
	})
	judgeClient := judge.NewClient(judge.Config{
		BaseURL:       cfg.Judge.BaseURL,
		StartTimeout:  cfg.Judge.StartTimeoutDuration(),
		IngestTimeout: cfg.Judge.IngestTimeoutDuration(),
	})

	// 서비스
	ledgerService := services.NewLedgerService()
	userService := services.NewUserService(cfg.Storage.UserDataPath)
	hubService := services.NewHubService(log)
	chatService := services.NewChatService(ledgerService, pipelineClient, hubService, log)
	audioService := services.NewAudioService(judgeClient, log)

	// 처리기
	h := routes.Handlers{
		Message: handlers.NewMessageHandler(chatService, pipelineClient, log),
		Auth:    handlers.NewAuthHandler(userService),
		Audio:   handlers.NewAudioHandler(audioService),
		WS:      handlers.NewWSHandler(hubService, cfg.WebSocket, log),
		Static:  handlers.NewStaticHandler(cfg.Storage),
	}

	// 라우터
	r := gin.New()
	middleware.Setup(r, cfg.CORS.AllowOrigins)
	routes.RegisterRoutes(r, cfg.Storage, h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("서버 리스닝", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("서버 종료", "error", err)
		os.Exit(1)
	}
}
