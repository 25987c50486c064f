package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Typed error kinds
   (string-match yerine sabit discriminant)
=================================*/

type ErrorKind string

const (
	ErrKindUnauthorized ErrorKind = "UNAUTHORIZED"
	ErrKindForbidden    ErrorKind = "FORBIDDEN"
	ErrKindNotFound     ErrorKind = "NOT_FOUND"
	ErrKindValidation   ErrorKind = "VALIDATION_ERROR"
	ErrKindConflict     ErrorKind = "CONFLICT"
	ErrKindUpstream     ErrorKind = "UPSTREAM_ERROR"
	ErrKindInternal     ErrorKind = "INTERNAL_ERROR"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind ErrorKind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func WrapAppError(kind ErrorKind, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func ErrUnauthorized(msg string) *AppError { return NewAppError(ErrKindUnauthorized, msg) }
func ErrForbidden(msg string) *AppError    { return NewAppError(ErrKindForbidden, msg) }
func ErrNotFound(msg string) *AppError     { return NewAppError(ErrKindNotFound, msg) }
func ErrValidation(msg string) *AppError   { return NewAppError(ErrKindValidation, msg) }
func ErrConflict(msg string) *AppError     { return NewAppError(ErrKindConflict, msg) }
func ErrUpstream(msg string, err error) *AppError {
	return WrapAppError(ErrKindUpstream, msg, err)
}
func ErrInternal(msg string, err error) *AppError {
	return WrapAppError(ErrKindInternal, msg, err)
}

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrKindUnauthorized:
		return fiber.StatusUnauthorized
	case ErrKindForbidden:
		return fiber.StatusForbidden
	case ErrKindNotFound:
		return fiber.StatusNotFound
	case ErrKindValidation:
		return fiber.StatusBadRequest
	case ErrKindConflict:
		return fiber.StatusConflict
	case ErrKindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonAppError: servis katmanından dönen error'u tek noktadan HTTP'ye çevirir.
// *AppError → kind'a göre status; *fiber.Error → kendi kodu; diğerleri → 500.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return JsonError(c, ae.Kind.HTTPStatus(), ae.Message)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
}
