package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_chat_front/internal/models"
	"ai_chat_front/internal/services"
)

// AuthHandler 회원가입/로그인 API 처리기
type AuthHandler struct {
	users *services.UserService
}

// NewAuthHandler 새 인증 처리기 생성
func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register POST /api/register 회원가입.
// 검증 실패도 HTTP 200에 success:false로 보고한다
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.users.Register(req.ID, req.Pwd))
}

// Login POST /api/login 로그인
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.users.Login(req.Username, req.Password))
}

// GetUUID GET /api/get_uuid uuid 원시 값 반환
func (h *AuthHandler) GetUUID(c *gin.Context) {
	username := c.Query("username")

	uuid, err := h.users.UUID(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, uuid)
}
