package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for transport mapping. Every service error that
// reaches a controller carries exactly one kind.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
)

// Code identifies the specific failure within a kind.
type Code string

const (
	CodeUnknownService         Code = "UnknownService"
	CodeMalformedRequest       Code = "MalformedRequest"
	CodeDuplicateIdentity      Code = "DuplicateIdentity"
	CodeRoleNotPermitted       Code = "RoleNotPermitted"
	CodeStageMismatch          Code = "StageMismatch"
	CodeAlreadyTerminal        Code = "AlreadyTerminal"
	CodeApplicationEscalated   Code = "ApplicationEscalated"
	CodeConcurrentModification Code = "ConcurrentModification"
	CodeNotEscalated           Code = "NotEscalated"
	CodeNotFound               Code = "NotFound"
	CodeInvalidCredentials     Code = "InvalidCredentials"
)

type Error struct {
	Kind    Kind
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(kind Kind, code Code, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Validation(code Code, format string, args ...interface{}) *Error {
	return New(KindValidation, code, format, args...)
}

func Authorization(code Code, format string, args ...interface{}) *Error {
	return New(KindAuthorization, code, format, args...)
}

func Conflict(code Code, format string, args ...interface{}) *Error {
	return New(KindConflict, code, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, CodeNotFound, format, args...)
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Status maps an error to the HTTP status controllers respond with.
// Unclassified errors are treated as internal.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindConflict:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// Respond writes the uniform error JSON for err on the Fiber context.
func Respond(ctx *fiber.Ctx, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return ctx.Status(Status(err)).JSON(fiber.Map{"error": e.Message, "code": e.Code})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
