// Package middleware HTTP 미들웨어 모음
package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Logger 요청 로그 미들웨어
func Logger() gin.HandlerFunc {
	return gin.Logger()
}

// Recovery panic 복구 미들웨어
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}

// CORS 허용 오리진 목록 기반 CORS 미들웨어.
// 자격 증명을 허용하므로 와일드카드 대신 명시 목록을 쓴다
func CORS(allowOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
	})
}

// Setup 기본 미들웨어 일괄 등록
func Setup(r *gin.Engine, allowOrigins []string) {
	r.Use(Logger())
	r.Use(Recovery())
	r.Use(CORS(allowOrigins))
}
