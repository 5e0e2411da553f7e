package fault

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrInvalidID = errors.New("invalid id")
)

type Kind int

const (
	KindClient Kind = iota
	KindInternal
)

// Fault tags an error as caused by the caller or by the system.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func NewClientError(msg string, err error) error {
	return &Fault{Kind: KindClient, Message: msg, Err: err}
}

func NewInternalError(msg string, err error) error {
	return &Fault{Kind: KindInternal, Message: msg, Err: err}
}

func IsClientError(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == KindClient
	}
	return false
}

func IsInternalError(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == KindInternal
	}
	return false
}

// HTTPStatus maps err to the status code an api handler should answer with.
// Untagged errors count as internal.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), IsClientError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
