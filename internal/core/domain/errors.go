package domain

import (
	"errors"
	"fmt"
)

// Ошибки-сентинелы, которые могут быть возвращены из Use Cases.
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrToggleInFlight   = errors.New("favorite toggle already in progress for this pair")
	ErrPermissionDenied = errors.New("operation not permitted for this user")
)

// ValidationError - некорректные входные данные (цена, проценты, enum-значения).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// RemoteError - сбой внешнего хранилища избранного. Оборачивает исходную
// ошибку, чтобы вызывающая сторона могла показать сообщение пользователю.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote favorite store failed during %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
