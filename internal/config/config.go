// Package config 설정 로드와 검증을 담당한다
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var globalConfig *Config

// Config 애플리케이션 설정 구조체
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Judge     JudgeConfig     `yaml:"judge"`
	Storage   StorageConfig   `yaml:"storage"`
	CORS      CORSConfig      `yaml:"cors"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Host string `yaml:"host"` // 서버 바인드 주소
	Port int    `yaml:"port"` // 서버 포트
}

// PipelineConfig 텍스트 파이프라인 서버(서버 B) 설정
type PipelineConfig struct {
	BaseURL             string `yaml:"base_url"`             // 파이프라인 서버 주소
	RunTimeout          int    `yaml:"run_timeout"`          // run-text-pipeline 타임아웃(초)
	ConversationTimeout int    `yaml:"conversation_timeout"` // 대화 내역 조회 타임아웃(초)
}

// RunTimeoutDuration run_timeout을 Duration으로 반환
func (c PipelineConfig) RunTimeoutDuration() time.Duration {
	return time.Duration(c.RunTimeout) * time.Second
}

// ConversationTimeoutDuration conversation_timeout을 Duration으로 반환
func (c PipelineConfig) ConversationTimeoutDuration() time.Duration {
	return time.Duration(c.ConversationTimeout) * time.Second
}

// JudgeConfig 오디오 판단 서버(서버 C) 설정
type JudgeConfig struct {
	BaseURL       string `yaml:"base_url"`       // 판단 서버 주소
	StartTimeout  int    `yaml:"start_timeout"`  // 세션 시작 타임아웃(초)
	IngestTimeout int    `yaml:"ingest_timeout"` // 청크/파일 전송 타임아웃(초)
}

// StartTimeoutDuration start_timeout을 Duration으로 반환
func (c JudgeConfig) StartTimeoutDuration() time.Duration {
	return time.Duration(c.StartTimeout) * time.Second
}

// IngestTimeoutDuration ingest_timeout을 Duration으로 반환
func (c JudgeConfig) IngestTimeoutDuration() time.Duration {
	return time.Duration(c.IngestTimeout) * time.Second
}

// StorageConfig 로컬 저장소 설정
type StorageConfig struct {
	UserDataPath string `yaml:"user_data_path"` // 회원 정보 JSON 파일 경로
	StaticDir    string `yaml:"static_dir"`     // 정적 파일 디렉토리
	WavDir       string `yaml:"wav_dir"`        // 녹음 파일 디렉토리
}

// CORSConfig CORS 설정
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"` // 허용 오리진 목록
}

// WebSocketConfig WebSocket 설정
type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`  // 읽기 버퍼 크기
	WriteBufferSize int `yaml:"write_buffer_size"` // 쓰기 버퍼 크기
}

// GetConfig 전역 설정 인스턴스 반환
func GetConfig() *Config {
	return globalConfig
}

// Load 파일에서 설정을 로드한다
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("설정 파일 읽기 실패: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %v", err)
	}

	applyDefaults(&config)

	// 설정 검증
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("설정 검증 실패: %v", err)
	}

	globalConfig = &config

	return &config, nil
}

// applyDefaults 비어 있는 항목에 기본값을 채운다
func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = "127.0.0.1"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Pipeline.RunTimeout <= 0 {
		config.Pipeline.RunTimeout = 60 // 파이프라인은 수십 초까지 걸린다
	}
	if config.Pipeline.ConversationTimeout <= 0 {
		config.Pipeline.ConversationTimeout = 10
	}
	if config.Judge.StartTimeout <= 0 {
		config.Judge.StartTimeout = 10
	}
	if config.Judge.IngestTimeout <= 0 {
		config.Judge.IngestTimeout = 30 // file 모드 대용량 전송 여유
	}
	if config.Storage.UserDataPath == "" {
		config.Storage.UserDataPath = "static/userdata.json"
	}
	if config.Storage.StaticDir == "" {
		config.Storage.StaticDir = "static"
	}
	if config.Storage.WavDir == "" {
		config.Storage.WavDir = "wavfiles"
	}
	if len(config.CORS.AllowOrigins) == 0 {
		config.CORS.AllowOrigins = []string{"http://localhost", "http://localhost:3000"}
	}
	if config.WebSocket.ReadBufferSize == 0 {
		config.WebSocket.ReadBufferSize = 1024
	}
	if config.WebSocket.WriteBufferSize == 0 {
		config.WebSocket.WriteBufferSize = 1024
	}
}

// validateConfig 설정 유효성 검사
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 {
		return ErrInvalidPort
	}
	if config.Pipeline.BaseURL == "" {
		return ErrEmptyPipelineURL
	}
	if config.Judge.BaseURL == "" {
		return ErrEmptyJudgeURL
	}
	return nil
}
