// Package errors provides custom errors for types implementing RecordStorage interface.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		Entity string
		ID     int64
		Err    error
	}
	AlreadyExistsError struct {
		Entity string
		ID     int64
		Err    error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	StatementSQLError struct {
		Err error
	}
	ExecutionSQLError struct {
		Err error
	}
	FileWriteError struct {
		Err error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: not found in storage", e.Entity, e.ID)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %d: already exists in storage", e.Entity, e.ID)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *StatementSQLError) Error() string {
	return fmt.Sprintf("%s: could not compile statement", e.Err.Error())
}

func (e *ExecutionSQLError) Error() string {
	return fmt.Sprintf("%s: could not query", e.Err.Error())
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s: could not add to file", e.Err.Error())
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

func (e *StatementSQLError) Unwrap() error {
	return e.Err
}

func (e *ExecutionSQLError) Unwrap() error {
	return e.Err
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
