package usecase

import (
	"errors"
	"fmt"
)

// 4種類の失敗に分類する。ハンドラ側はこの型でHTTPステータスを決める。

// 呼び出し側の入力が不正（空カート、未知のメニューIDなど）。
// リクエストを直せば再実行できる。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// リクエスト自体は正しいが今の状態では満たせない（在庫不足、競合負け）。
// 状態が変われば再実行できる。
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

// データ自体の矛盾（レシピが存在しない材料を参照している等）。
// 呼び出し側の責任ではないので詳細は外に出さない。
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

func NewIntegrityError(format string, args ...any) error {
	return &IntegrityError{Message: fmt.Sprintf(format, args...)}
}

func AsIntegrityError(err error) (*IntegrityError, bool) {
	var ie *IntegrityError
	ok := errors.As(err, &ie)
	return ie, ok
}

// ストア側の一時障害（接続断・タイムアウト）。
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "store unavailable: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

func NewTransientError(err error) error {
	return &TransientError{Err: err}
}

func AsTransientError(err error) (*TransientError, bool) {
	var te *TransientError
	ok := errors.As(err, &te)
	return te, ok
}
