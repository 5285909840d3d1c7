package models

// User 저장되는 회원 레코드
type User struct {
	ID     string  `json:"id"`
	Pwd    string  `json:"pwd"`
	UUID   int64   `json:"uuid"`             // ID에서 결정적으로 유도되는 10자리 정수
	Device *string `json:"device,omitempty"` // 등록된 기기(선택)
}

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	ID  string `json:"id"`
	Pwd string `json:"pwd"`
}

// RegisterResponse 회원가입 응답
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse 로그인 응답
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}
