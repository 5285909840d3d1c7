// Package logger zap 기반 구조화 로거 래퍼
package logger

import (
	"go.uber.org/zap"
)

// Logger 키-값 쌍 로깅을 제공하는 래퍼
type Logger struct {
	sugar *zap.SugaredLogger
}

// New 로거를 생성한다. mode가 "production"이면 JSON 출력, 그 외에는 개발용 출력
func New(mode string) (*Logger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if mode == "production" {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// With 고정 키-값을 추가한 하위 로거 반환
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// Debug 디버그 로그
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info 정보 로그
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn 경고 로그
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error 오류 로그
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync 버퍼된 로그를 비운다
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
