package codes

import "fmt"

// ErrorCode represents a structured dispatch error shared across packages.
type ErrorCode struct {
	Numeric int32
	Symbol  string
	Message string
}

var (
	// ErrInvalidArgument indicates a nil or missing input.
	ErrInvalidArgument = ErrorCode{Numeric: 40001, Symbol: "INVALID_ARGUMENT", Message: "invalid argument"}
	// ErrInvalidFormat indicates an identity, credential, or resource id that fails fixed-format validation.
	ErrInvalidFormat = ErrorCode{Numeric: 40002, Symbol: "INVALID_FORMAT", Message: "invalid format"}
	// ErrEncoding indicates string or JSON formatting failed.
	ErrEncoding = ErrorCode{Numeric: 40003, Symbol: "ENCODING_ERROR", Message: "encoding failed"}
	// ErrSizeExceeded indicates computed content exceeds a fixed buffer budget.
	ErrSizeExceeded = ErrorCode{Numeric: 40004, Symbol: "SIZE_EXCEEDED", Message: "content exceeds buffer size"}
	// ErrOutOfMemory indicates resource allocation failed.
	ErrOutOfMemory = ErrorCode{Numeric: 50002, Symbol: "OUT_OF_MEMORY", Message: "allocation failed"}
	// ErrInvalidState indicates an operation on a connection that can no longer accept it.
	ErrInvalidState = ErrorCode{Numeric: 50003, Symbol: "INVALID_STATE", Message: "invalid connection state"}
	// ErrTransport indicates a network or TLS failure at the transport layer.
	ErrTransport = ErrorCode{Numeric: 50301, Symbol: "TRANSPORT_ERROR", Message: "transport failure"}
	// ErrResponse indicates the bridge answered with a non-200 status.
	ErrResponse = ErrorCode{Numeric: 50302, Symbol: "RESPONSE_ERROR", Message: "unexpected response status"}
)

// Registry exposes a static list for validation or docs.
var Registry = []ErrorCode{
	ErrInvalidArgument,
	ErrInvalidFormat,
	ErrEncoding,
	ErrSizeExceeded,
	ErrOutOfMemory,
	ErrInvalidState,
	ErrTransport,
	ErrResponse,
}

// Error pairs an ErrorCode with call-site context.
type Error struct {
	Code   ErrorCode
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	msg := e.Code.Message
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code.Symbol, e.Code.Numeric, msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error for code with formatted detail.
func New(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error for code caused by err.
func Wrap(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...), Cause: err}
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		if ce, ok := err.(*Error); ok {
			return ce.Code.Numeric == code.Numeric
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
