package service

import (
	"errors"
	"fmt"
)

// DomainError marks validation, not-found and conflict failures raised by the
// domain services. Handlers surface it as HTTP 400 with the message in the
// body; every other error is treated as unexpected and becomes a 500.
type DomainError struct {
	msg string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.msg
}

// IsDomainError reports whether err is (or wraps) a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
