package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/value"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeInvalidArgument   ErrorCode = "invalid_argument"
	CodeUnauthenticated   ErrorCode = "unauthenticated"
	CodePermissionDenied  ErrorCode = "permission_denied"
	CodeNotFound          ErrorCode = "not_found"
	CodeMethodNotAllowed  ErrorCode = "method_not_allowed"
	CodeConflict          ErrorCode = "conflict"
	CodeGone              ErrorCode = "gone"
	CodeResourceExhausted ErrorCode = "resource_exhausted"
	CodeCanceled          ErrorCode = "canceled"
	CodeInternal          ErrorCode = "internal"
	CodeNotImplemented    ErrorCode = "not_implemented"
	CodeUnavailable       ErrorCode = "unavailable"
	CodeDeadlineExceeded  ErrorCode = "deadline_exceeded"
	CodeUnknown           ErrorCode = "unknown"
)

// maxErrorBody bounds how much of a failed response body is read.
const maxErrorBody = 1 << 20

// Error is returned for failed API calls: non-2xx responses, rejected
// request parameters and expired contexts.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Status  int            `json:"status,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	// Body is the raw response body, if any.
	Body []byte `json:"-"`

	err error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, such as context.DeadlineExceeded.
func (e *Error) Unwrap() error { return e.err }

// NewError creates a new error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	return e.WithDetails(map[string]any{key: value})
}

// WithDetails returns a new Error with the provided map merged into details.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	out := *e
	out.Details = merged
	return &out
}

// ErrorFromResponse builds an Error from a non-2xx response. The body is
// read (up to 1 MiB) but not closed.
//
// Merge reports failures in a few shapes: {"detail": "..."},
// {"message": "..."}, {"error": "..."} and {"errors": [...]}. Every top-level
// key of an object body is copied into Details.
func ErrorFromResponse(resp *http.Response) *Error {
	e := &Error{
		Code:   CodeFromStatus(resp.StatusCode),
		Status: resp.StatusCode,
	}
	if resp.Body != nil {
		e.Body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	}
	e.Message = http.StatusText(resp.StatusCode)
	if e.Message == "" {
		e.Message = resp.Status
	}

	body, err := value.Parse(e.Body)
	if err != nil {
		if s := strings.TrimSpace(string(e.Body)); s != "" && len(s) <= 512 {
			e.Message = s
		}
		return e
	}
	obj, ok := body.Object()
	if !ok {
		return e
	}
	e.Details = make(map[string]any, obj.Len())
	obj.Range(func(key string, v value.Value) bool {
		e.Details[key] = value.ToAny(v)
		return true
	})
	for _, key := range []string{"detail", "message", "error"} {
		if s, ok := body.Get(key); ok {
			if msg, ok := s.AsString(); ok && msg != "" {
				e.Message = msg
				return e
			}
		}
	}
	if errs, ok := body.Get("errors"); ok {
		var msgs []string
		for _, el := range errs.Elements() {
			msgs = append(msgs, problemMessage(el))
		}
		if len(msgs) > 0 {
			e.Message = strings.Join(msgs, "; ")
		}
	}
	return e
}

func problemMessage(v value.Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	for _, key := range []string{"detail", "title", "message"} {
		if f, ok := v.Get(key); ok {
			if s, ok := f.AsString(); ok && s != "" {
				return s
			}
		}
	}
	return v.String()
}

// CodeFromStatus maps an HTTP status code to an ErrorCode.
func CodeFromStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case http.StatusConflict:
		return CodeConflict
	case http.StatusGone:
		return CodeGone
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case 499:
		return CodeCanceled
	case http.StatusNotImplemented:
		return CodeNotImplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	}
	if status >= 500 {
		return CodeInternal
	}
	return CodeUnknown
}

// HTTPStatus maps an ErrorCode to an HTTP status code.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeConflict:
		return http.StatusConflict
	case CodeGone:
		return http.StatusGone
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeCanceled:
		return 499 // Client Closed Request (Nginx standard)
	case CodeNotImplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// AsError maps err to an *Error. Errors that already are (or wrap) an
// *Error are returned as such; context and validator errors get their own
// codes; anything else is CodeUnknown. Returns nil for a nil err.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeDeadlineExceeded, Message: "request timeout", err: err}
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Code: CodeCanceled, Message: "context canceled", err: err}
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		details := make(map[string]any)
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			msg := model.FormatFieldError(ve)
			details[ve.Field()] = msg
			messages = append(messages, ve.Field()+": "+msg)
		}
		return &Error{
			Code:    CodeInvalidArgument,
			Message: strings.Join(messages, "; "),
			Details: details,
			err:     err,
		}
	}

	return &Error{Code: CodeUnknown, Message: err.Error(), err: err}
}

// CodeOf returns the ErrorCode of err, or "" when err carries none.
func CodeOf(err error) ErrorCode {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

// IsUnauthenticated reports whether the API rejected the credentials.
func IsUnauthenticated(err error) bool { return CodeOf(err) == CodeUnauthenticated }

// IsPermissionDenied reports whether the linked account lacks access.
func IsPermissionDenied(err error) bool { return CodeOf(err) == CodePermissionDenied }

// IsRateLimited reports whether the API throttled the call.
func IsRateLimited(err error) bool { return CodeOf(err) == CodeResourceExhausted }
