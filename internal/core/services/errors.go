package services

import "errors"

// Identity errors
var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrUserNotFound       = errors.New("identity: user not found")
	ErrUserAlreadyExists  = errors.New("identity: username already exists")
)

// Registry errors
var (
	ErrTaskNotFound    = errors.New("registry: task not found")
	ErrDuplicateTaskID = errors.New("registry: duplicate task id")
)
