package dto

import (
	"github.com/atlaserp/backend/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK      bool               `json:"ok"`
	Modules []domain.ModuleKey `json:"modules"`
}

type MeResponse struct {
	Username   string             `json:"username"`
	Modules    []domain.ModuleKey `json:"modules"`
	Department string             `json:"department"`
	Role       domain.Role        `json:"role"`
}

func UserToMeResponse(user *domain.User) MeResponse {
	return MeResponse{
		Username:   user.Username,
		Modules:    user.GrantedModules,
		Department: user.Department,
		Role:       user.Role,
	}
}

type CreateUserRequest struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	Modules    []string `json:"modules"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
}

func (r *CreateUserRequest) ModuleKeys() []domain.ModuleKey {
	keys := make([]domain.ModuleKey, len(r.Modules))
	for i, m := range r.Modules {
		keys[i] = domain.ModuleKey(m)
	}
	return keys
}

type CreateUserResponse struct {
	OK      bool   `json:"ok"`
	Created string `json:"created"`
}

type GrantModulesRequest struct {
	Modules []string `json:"modules"`
}

func (r *GrantModulesRequest) ModuleKeys() []domain.ModuleKey {
	keys := make([]domain.ModuleKey, len(r.Modules))
	for i, m := range r.Modules {
		keys[i] = domain.ModuleKey(m)
	}
	return keys
}
