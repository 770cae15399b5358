package services

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/pkg/utils/token"
)

// IdentityService owns the in-memory user directory and session registry.
// A single mutex serializes login, logout, user creation and grant updates
// so concurrent requests always observe a consistent session view.
type IdentityService struct {
	users    map[string]*domain.User
	sessions map[string]string // token -> username
	logger   *logger.Logger
	mu       sync.RWMutex
}

type BootstrapUser struct {
	Username   string
	Credential string
	Department string
}

type IdentityServiceConfig struct {
	Logger    *logger.Logger
	Bootstrap BootstrapUser
}

func NewIdentityService(cfg IdentityServiceConfig) (*IdentityService, error) {
	s := &IdentityService{
		users:    make(map[string]*domain.User),
		sessions: make(map[string]string),
		logger:   cfg.Logger,
	}

	boot := cfg.Bootstrap
	if boot.Username == "" {
		boot.Username = "admin"
	}
	if boot.Credential == "" {
		boot.Credential = "admin"
	}
	if boot.Department == "" {
		boot.Department = "HQ"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(boot.Credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash bootstrap credential: %w", err)
	}

	// The bootstrap admin is granted every module.
	s.users[boot.Username] = &domain.User{
		Username:       boot.Username,
		CredentialHash: string(hash),
		GrantedModules: domain.AllModuleKeys(),
		Department:     boot.Department,
		Role:           domain.RoleAdmin,
	}

	return s, nil
}

// Authenticate verifies the credential and mints a session token for the
// user. The caller receives both the fresh session and a copy of the user.
func (s *IdentityService) Authenticate(username, credential string) (*domain.Session, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.CredentialHash), []byte(credential)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tok, err := token.NewSessionToken()
	if err != nil {
		return nil, nil, err
	}
	s.sessions[tok] = username

	s.logger.Infow("session_created", "username", username)

	userCopy := copyUser(user)
	return &domain.Session{Token: tok, Username: username}, userCopy, nil
}

// Resolve maps a live token back to its user. An absent token means the
// caller is unauthenticated, never an internal error.
func (s *IdentityService) Resolve(tok string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, live := s.sessions[tok]
	if !live {
		return nil, domain.ErrUnauthenticated
	}
	user, exists := s.users[username]
	if !exists {
		return nil, domain.ErrUnauthenticated
	}
	return copyUser(user), nil
}

// Revoke drops a session token. Revoking an absent token is a no-op.
func (s *IdentityService) Revoke(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username, live := s.sessions[tok]; live {
		delete(s.sessions, tok)
		s.logger.Infow("session_revoked", "username", username)
	}
}

// CreateUser provisions a new user. Unknown modules in the input are
// filtered out; an empty module list falls back to the office module.
func (s *IdentityService) CreateUser(input ports.CreateUserInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := input.Username
	if username == "" {
		suffix, err := token.NewSuffix(6)
		if err != nil {
			return "", err
		}
		username = "user-" + suffix
	}
	if _, exists := s.users[username]; exists {
		return "", ErrUserAlreadyExists
	}

	credential := input.Credential
	if credential == "" {
		credential = "changeme"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	modules := filterKnownModules(input.Modules)
	if len(modules) == 0 {
		modules = []domain.ModuleKey{domain.ModuleOffice}
	}

	department := input.Department
	if department == "" {
		department = "General"
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	s.users[username] = &domain.User{
		Username:       username,
		CredentialHash: string(hash),
		GrantedModules: modules,
		Department:     department,
		Role:           role,
	}

	s.logger.Infow("user_created", "username", username, "role", role, "modules", len(modules))
	return username, nil
}

// GrantModules overwrites the user's granted module set. It does not union
// with the previous grant.
func (s *IdentityService) GrantModules(username string, modules []domain.ModuleKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return ErrUserNotFound
	}
	user.GrantedModules = filterKnownModules(modules)

	s.logger.Infow("modules_granted", "username", username, "modules", len(user.GrantedModules))
	return nil
}

// GetUser returns a copy of the named user.
func (s *IdentityService) GetUser(username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

func filterKnownModules(modules []domain.ModuleKey) []domain.ModuleKey {
	filtered := make([]domain.ModuleKey, 0, len(modules))
	for _, m := range modules {
		if domain.KnownModule(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// copyUser returns a detached copy so callers never share the stored slice.
func copyUser(user *domain.User) *domain.User {
	userCopy := *user
	userCopy.GrantedModules = append([]domain.ModuleKey(nil), user.GrantedModules...)
	return &userCopy
}
