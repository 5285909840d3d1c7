package services

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"os"
	"strings"
	"sync"

	"ai_chat_front/internal/models"
)

// 회원 저장소 오류
var (
	ErrUserNotFound = errors.New("존재하지 않는 아이디입니다")
)

// UserService 회원 정보를 JSON 파일 하나로 관리한다.
// 모든 변경은 파일 전체를 다시 쓰며, 뮤텍스로 읽기-수정-쓰기를 직렬화한다
type UserService struct {
	path string
	mu   sync.Mutex
}

// NewUserService 새 회원 저장소 생성
func NewUserService(path string) *UserService {
	return &UserService{path: path}
}

// Register 회원가입. 빈 값과 중복 ID를 거부한다
func (s *UserService) Register(id, pwd string) models.RegisterResponse {
	id = strings.TrimSpace(id)
	pwd = strings.TrimSpace(pwd)

	if id == "" || pwd == "" {
		return models.RegisterResponse{Success: false, Message: "ID와 비밀번호를 입력해주세요."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()

	// ID 중복 체크
	if _, exists := users[id]; exists {
		return models.RegisterResponse{Success: false, Message: "이미 존재하는 ID입니다."}
	}

	users[id] = models.User{
		ID:   id,
		Pwd:  pwd,
		UUID: GenerateUUID(id),
	}

	if err := s.save(users); err != nil {
		return models.RegisterResponse{Success: false, Message: "회원 정보 저장에 실패했습니다."}
	}

	return models.RegisterResponse{Success: true, Message: "회원가입 완료!"}
}

// Login 로그인. 비밀번호는 저장값과 그대로 비교한다
func (s *UserService) Login(username, password string) models.LoginResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()

	user, exists := users[username]
	if !exists {
		return models.LoginResponse{Success: false, Message: "존재하지 않는 아이디입니다."}
	}

	// 비밀번호 검증
	if user.Pwd != password {
		return models.LoginResponse{Success: false, Message: "비밀번호가 올바르지 않습니다."}
	}

	return models.LoginResponse{Success: true, Username: username, Message: "로그인 성공"}
}

// UUID 회원의 uuid 조회
func (s *UserService) UUID(username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()

	user, exists := users[username]
	if !exists {
		return 0, ErrUserNotFound
	}
	return user.UUID, nil
}

// load 파일에서 회원 전체를 읽는다. 파일이 없거나 깨져 있으면 빈 집합
func (s *UserService) load() map[string]models.User {
	users := make(map[string]models.User)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return users
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return make(map[string]models.User)
	}
	return users
}

// save 회원 전체를 파일에 다시 쓴다
func (s *UserService) save(users map[string]models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// GenerateUUID ID 문자열에서 10자리 정수를 결정적으로 유도한다.
// FNV-1a 해시라 프로세스가 바뀌어도 같은 ID는 항상 같은 값이 나온다
func GenerateUUID(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() % 10000000000)
}
