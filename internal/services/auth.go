package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/internal/utils"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"gorm.io/gorm"
)

// SessionState is the admin session lifecycle. Requests are authorized
// per-token by the JWT middleware; the state machine tracks the observable
// login/logout transitions that drive admin notifications.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

type AuthService struct {
	db          *gorm.DB
	ldapService *LDAPService
	jwtConfig   *config.JWTConfig
	hub         *NotificationHub

	mu    sync.RWMutex
	state SessionState
}

func NewAuthService(db *gorm.DB, ldapCfg *config.LDAPConfig, jwtCfg *config.JWTConfig, hub *NotificationHub) *AuthService {
	return &AuthService{
		db:          db,
		ldapService: NewLDAPService(ldapCfg),
		jwtConfig:   jwtCfg,
		hub:         hub,
		state:       SessionAnonymous,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	AuthType string `json:"auth_type"` // local, ldap
}

type LoginResponse struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	ExpireAt time.Time    `json:"expire_at"`
}

// State returns the current session state.
func (s *AuthService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether an admin session is active.
func (s *AuthService) IsAuthenticated() bool {
	return s.State() == SessionAuthenticated
}

func (s *AuthService) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Login authenticates the admin and returns a signed token. On failure
// the session state reverts to its value before the attempt and an error
// notification is emitted; the admin flag never changes on error.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	prior := s.State()
	s.setState(SessionAuthenticating)

	if req.AuthType == "" {
		req.AuthType = "local"
	}

	var user *models.User
	var err error
	switch req.AuthType {
	case "local":
		user, err = s.localAuth(req.Username, req.Password)
	case "ldap":
		user, err = s.ldapAuth(req.Username, req.Password)
	default:
		err = errors.New("invalid auth type")
	}

	if err != nil {
		s.setState(prior)
		s.hub.Add("Authentication error occurred", models.NotificationError)
		return nil, err
	}

	expireHours := s.jwtConfig.ExpireHour
	if expireHours <= 0 {
		expireHours = 24
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, expireHours)
	if err != nil {
		s.setState(prior)
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	s.db.Save(user)

	s.setState(SessionAuthenticated)

	name := user.Nickname
	if name == "" {
		name = "Admin"
	}
	s.hub.Add(fmt.Sprintf("Welcome back, %s", name), models.NotificationSuccess)

	return &LoginResponse{
		Token:    token,
		User:     user,
		ExpireAt: now.Add(time.Duration(expireHours) * time.Hour),
	}, nil
}

// RefreshToken issues a fresh token for an already-authenticated user
// without touching the session state.
func (s *AuthService) RefreshToken(userID uint) (*LoginResponse, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if !user.IsActive {
		return nil, errors.New("user is disabled")
	}

	expireHours := s.jwtConfig.ExpireHour
	if expireHours <= 0 {
		expireHours = 24
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, expireHours)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		User:     user,
		ExpireAt: time.Now().Add(time.Duration(expireHours) * time.Hour),
	}, nil
}

// Logout transitions the session back to anonymous. Token invalidation
// is client-side (the token is simply discarded).
func (s *AuthService) Logout() {
	s.setState(SessionAnonymous)
	s.hub.Add("Logged out successfully", models.NotificationInfo)
}

func (s *AuthService) localAuth(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ? AND auth_type = ?", username, "local").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid username or password")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, errors.New("user is disabled")
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, errors.New("invalid username or password")
	}

	return &user, nil
}

// ldapAuth verifies credentials against the external directory and
// provisions a local user record on first login.
func (s *AuthService) ldapAuth(username, password string) (*models.User, error) {
	ldapUser, err := s.ldapService.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("username = ? AND auth_type = ?", ldapUser.Username, "ldap").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Username: ldapUser.Username,
			Email:    ldapUser.Email,
			Nickname: ldapUser.Nickname,
			Role:     "admin",
			AuthType: "ldap",
			IsActive: true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, errors.New("user is disabled")
	}
	return &user, nil
}

// GetUserByID returns the user with the given id.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword updates a local user's password after verifying the
// current one.
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	if user.AuthType != "local" {
		return errors.New("password is managed by the external directory")
	}

	if !utils.CheckPassword(oldPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", hash).Error
}

// CreateAdminIfNotExists seeds the default admin account on first boot.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Password: hash,
		Nickname: "Administrator",
		Role:     "admin",
		AuthType: "local",
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Warn().Msg("default admin account created (admin/admin123), change the password")
	return nil
}
