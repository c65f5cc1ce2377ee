package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation          ErrorCode = "validation"
	ErrorCodeUnauthorized        ErrorCode = "unauthorized"
	ErrorCodeForbidden           ErrorCode = "forbidden"
	ErrorCodeConflict            ErrorCode = "conflict"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeAlreadyDeleted      ErrorCode = "already_deleted"
	ErrorCodeSelfDelete          ErrorCode = "self_delete"
	ErrorCodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
	ErrorCodeInternal            ErrorCode = "internal"

	// 仅由中间件直接写出
	ErrorCodeRateLimited     ErrorCode = "rate_limited"
	ErrorCodePayloadTooLarge ErrorCode = "payload_too_large"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
	// Cause 仅用于日志和调试模式下的错误详情，不直接返回给客户端。
	Cause error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewAlreadyDeletedError(message string) error {
	return NewServiceError(ErrorCodeAlreadyDeleted, message)
}

func NewSelfDeleteError(message string) error {
	return NewServiceError(ErrorCodeSelfDelete, message)
}

func NewUpstreamUnavailableError(message string) error {
	return NewServiceError(ErrorCodeUpstreamUnavailable, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

// WrapInternalError 构造内部错误并保留底层原因。
func WrapInternalError(message string, cause error) error {
	return &ServiceError{Code: ErrorCodeInternal, Message: message, Cause: cause}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsCode 判断 err 是否为指定错误码的 ServiceError。
func IsCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
