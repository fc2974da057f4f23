package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a domain error of a given kind whose Message is safe to return to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFoundf returns an ErrNotFound error with a formatted client message.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument returns an ErrInvalidArgument error with the given client message.
func InvalidArgument(msg string) error {
	return &Error{Kind: ErrInvalidArgument, Message: msg}
}

// Client-facing messages shared by the service and HTTP layers.
const (
	MsgEventNotFound     = "Epic Fail: No existe el evento"
	MsgEventNotFoundByID = "Epic Fail: No existe el evento con ID %d"
	MsgNilEvent          = "El evento no puede ser nulo"
	MsgInvalidEvent      = "El evento no puede ser nulo o tener un nombre vacío"
)
