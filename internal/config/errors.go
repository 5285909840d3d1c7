package config

import "errors"

// 설정 관련 오류
var (
	ErrInvalidPort      = errors.New("서버 포트는 0보다 커야 합니다")
	ErrEmptyPipelineURL = errors.New("파이프라인 서버 주소가 비어 있습니다")
	ErrEmptyJudgeURL    = errors.New("판단 서버 주소가 비어 있습니다")
)
