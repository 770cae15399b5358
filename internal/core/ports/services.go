package ports

import (
	"context"

	"github.com/atlaserp/backend/internal/domain"
)

type IdentityService interface {
	Authenticate(username, credential string) (*domain.Session, *domain.User, error)
	Resolve(token string) (*domain.User, error)
	Revoke(token string)
	CreateUser(input CreateUserInput) (string, error)
	GrantModules(username string, modules []domain.ModuleKey) error
	GetUser(username string) (*domain.User, error)
}

type CreateUserInput struct {
	Username   string
	Credential string
	Modules    []domain.ModuleKey
	Department string
	Role       domain.Role
}

type TaskRegistry interface {
	Lookup(id string) (*domain.TaskDescriptor, error)
	ModuleOf(id string) (domain.ModuleKey, error)
	// ValidateBatch resolves every requested id against the registry and the
	// user's granted modules. All-or-nothing: any unknown or forbidden id
	// rejects the whole batch and nothing is resolved for execution.
	ValidateBatch(ids []string, user *domain.User) ([]domain.TaskDescriptor, error)
}

type Dispatcher interface {
	// Run executes the items on a bounded worker pool and returns results
	// keyed by submission index. On any item failure it waits for all
	// in-flight items, discards partial results and returns the failure.
	Run(ctx context.Context, items []domain.WorkItem) (map[int]any, error)
}
