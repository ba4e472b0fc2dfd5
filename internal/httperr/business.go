package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies a business error and decides its HTTP status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	// KindNotFoundOrUnauthorized hides whether a referenced record exists.
	KindNotFoundOrUnauthorized
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound, KindNotFoundOrUnauthorized:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string][]string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return ErrBusiness(KindValidation, code, message)
}

// ValidationFields builds a validation error carrying per-field messages.
func ValidationFields(code, message string, fields map[string][]string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Fields: fields}
}

func Unauthenticated(code, message string) error {
	return ErrBusiness(KindAuthentication, code, message)
}

func Forbidden(code, message string) error {
	return ErrBusiness(KindAuthorization, code, message)
}

func NotFoundErr(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func NotFoundOrUnauthorized(code, message string) error {
	return ErrBusiness(KindNotFoundOrUnauthorized, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
