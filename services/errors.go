// file: services/errors.go
package services

import (
	"errors"
	"fmt"
)

// 三类服务错误：调用方据此决定状态码和对外文案。
// ValidationError 可给出具体指引；PersistenceError 对外只给通用提示；
// AuthorizationError 透传策略层自己的文案（只有特权调用方能触发）。

var ErrTransitionInFlight = errors.New("a status transition is already in flight for this session")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}
