package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The handlers map kinds to HTTP statuses;
// nothing below the handlers knows about status codes.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindModerationRejected
	KindConflict
	KindStorage
)

// Error is the failure type every service method returns. Entity and Message
// carry enough context for a client-facing error body.
type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the kind from a service error, or 0 for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func notFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: entity + " not found"}
}

func forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func moderationRejected(entity string) *Error {
	return &Error{Kind: KindModerationRejected, Entity: entity, Message: entity + " contains sensitive words"}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure during " + op, Err: err}
}
