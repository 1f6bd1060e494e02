package errors

import "errors"

// Code classifies an Error.
type Code string

const (
	// Fallback when no structured error is in the chain.
	CodeUnknown Code = "unknown"

	// Store errors
	CodeRemoteFailed Code = "remote_failed"
	CodeDecodeFailed Code = "decode_failed"
	CodeNotFound     Code = "not_found"

	// Domain errors
	CodeInvalidRecord      Code = "invalid_record"
	CodeInvalidKingdom     Code = "invalid_kingdom"
	CodeConfigurationError Code = "configuration_error"
)

// Error carries a code, the message shown to the user, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e Error) Unwrap() error {
	return e.Err
}

// New builds an Error. err may be nil.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the first Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether CodeOf(err) is code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// MessageOf returns the human-readable message carried by err. A structured
// error contributes only its Message, which may be empty; anything else falls
// back to err.Error(). An empty string means the failure carried no message.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var structured Error
	if errors.As(err, &structured) {
		return structured.Message
	}
	return err.Error()
}
