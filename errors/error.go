package errors

import (
	"encoding/json"
	"errors"
)

// Error is the error type returned by the catalog-building packages. It
// contains a 4-digit error code where the most significant digit describes
// the category where the error occurred and the rest 3 digits describe the
// specific error reason.
type Error struct {
	ErrorCode int    `json:"code"`
	Message   string `json:"message"`
}

// The error category as the most significant digit of the error code.
type Category int

// The error reason as the last 3 digits of the error code.
type Reason int

const (
	Success Category = 1000 * iota // 0XXX
	// MappingError means a cipher suite name the engine reported has no
	// entry in the static name or key-size tables. It signals the tables
	// are stale relative to the engine's actual cipher support and is
	// never recoverable at runtime.
	MappingError // 1XXX
	// EngineError means the OpenSSL engine could not be driven at all for
	// a requested protocol version.
	EngineError // 2XXX
)

// Non-specified error.
const (
	None Reason = iota
)

// Mapping errors, must be specified along with MappingError.
const (
	// Code 11XX
	UnknownCipherSuite Reason = 100 * (iota + 1)
	// Code 12XX
	UnknownProtocolVersion
)

// Engine errors, must be specified along with EngineError.
const (
	// Code 21XX
	InitFailed Reason = 100 * (iota + 1)
	// Code 22XX
	UnsupportedProtocol
)

// The error interface implementation, which formats to a JSON object string.
func (e *Error) Error() string {
	marshaled, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(marshaled)
}

// New returns an error that contains an error code derived from the given
// category and reason, with a default message. To avoid confusion, it is
// not allowed to create an error of category Success.
func New(category Category, reason Reason) *Error {
	return Wrap(category, reason, nil)
}

// Wrap returns an error that contains the given error and an error code
// derived from the given category and reason.
func Wrap(category Category, reason Reason, err error) *Error {
	errorCode := int(category) + int(reason)
	switch category {
	case MappingError:
		if err == nil {
			msg := "Unknown mapping error"
			switch reason {
			case UnknownCipherSuite:
				msg = "Cipher suite name is missing from the static tables"
			case UnknownProtocolVersion:
				msg = "Protocol version is missing from the static tables"
			}
			err = errors.New(msg)
		}
	case EngineError:
		if err == nil {
			msg := "Unknown engine error"
			switch reason {
			case InitFailed:
				msg = "Failed to initialize the OpenSSL engine"
			case UnsupportedProtocol:
				msg = "The OpenSSL engine does not support the protocol version"
			}
			err = errors.New(msg)
		}
	case Success:
		panic("errors: cannot construct error of category Success")
	default:
		panic("errors: unknown error category")
	}

	return &Error{ErrorCode: errorCode, Message: err.Error()}
}
