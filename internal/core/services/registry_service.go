package services

import (
	"fmt"

	"github.com/atlaserp/backend/internal/domain"
)

// RegistryService is the static task table: id -> (owning module, work item).
// It is populated once at startup and read-only afterwards, so lookups need
// no locking.
type RegistryService struct {
	tasks map[string]domain.TaskDescriptor
}

func NewRegistryService(descriptors []domain.TaskDescriptor) (*RegistryService, error) {
	tasks := make(map[string]domain.TaskDescriptor, len(descriptors))
	for _, d := range descriptors {
		if _, exists := tasks[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTaskID, d.ID)
		}
		if !domain.KnownModule(d.Module) {
			return nil, fmt.Errorf("registry: task %s references unknown module %q", d.ID, d.Module)
		}
		tasks[d.ID] = d
	}
	return &RegistryService{tasks: tasks}, nil
}

func (r *RegistryService) Lookup(id string) (*domain.TaskDescriptor, error) {
	d, exists := r.tasks[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return &d, nil
}

func (r *RegistryService) ModuleOf(id string) (domain.ModuleKey, error) {
	d, exists := r.tasks[id]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return d.Module, nil
}

// Size reports how many tasks are registered.
func (r *RegistryService) Size() int {
	return len(r.tasks)
}

// ValidateBatch checks the whole batch before anything may run. Unknown ids
// are collected first and rejected as one error; only a fully-known batch is
// then checked against the caller's granted modules, again collecting every
// offender. A single bad id voids the batch, including its valid entries.
func (r *RegistryService) ValidateBatch(ids []string, user *domain.User) ([]domain.TaskDescriptor, error) {
	var unknown []string
	for _, id := range ids {
		if _, exists := r.tasks[id]; !exists {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return nil, &domain.UnknownTasksError{IDs: unknown}
	}

	var forbidden []string
	for _, id := range ids {
		if !user.HasModule(r.tasks[id].Module) {
			forbidden = append(forbidden, id)
		}
	}
	if len(forbidden) > 0 {
		return nil, &domain.ForbiddenTasksError{IDs: forbidden}
	}

	// Duplicates are legal and resolve once per occurrence.
	resolved := make([]domain.TaskDescriptor, len(ids))
	for i, id := range ids {
		resolved[i] = r.tasks[id]
	}
	return resolved, nil
}
