package pagechat

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ETRANSPORT = "transport"
	EPARSE     = "parse"

	// Generation preconditions. The provider is never called for these.
	ECONFIG    = "config"
	ENOCONTEXT = "no_context"

	// Provider failures.
	ECREDENTIALS = "credentials"
	ESAFETY      = "safety"
	EQUOTA       = "quota"
	EPROVIDER    = "provider"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagechat error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return their own text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ReplyMessage returns the text shown to the user in place of an answer when
// generating a response fails.
func ReplyMessage(err error) string {
	switch ErrorCode(err) {
	case "":
		return ""
	case ECONFIG:
		return "Gemini API is not configured. Please add your API key."
	case ENOCONTEXT:
		return "No website content available. Please parse a website first!"
	case ECREDENTIALS:
		return "Invalid API key. Please check your Gemini API key."
	case ESAFETY:
		return "Response blocked by safety filters. Try rephrasing your question."
	case EQUOTA:
		return "API quota exceeded. Please try again later or check your Gemini API usage."
	case EPROVIDER, EINTERNAL:
		return "Error generating response: " + ErrorMessage(err)
	default:
		return ErrorMessage(err)
	}
}
