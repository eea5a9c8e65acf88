package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeNotFound, "resource not found")
	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeInvalidArgument, "invalid field: %s", "email")
	if err.Message != "invalid field: email" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
	if got := err.Error(); got != "invalid_argument: invalid field: email" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_WithDetails(t *testing.T) {
	base := NewError(CodeConflict, "exists").WithDetail("id", "e1")
	merged := base.WithDetails(map[string]any{"field": "email"})

	if len(base.Details) != 1 {
		t.Errorf("WithDetails modified the receiver: %v", base.Details)
	}
	if merged.Details["id"] != "e1" || merged.Details["field"] != "email" {
		t.Errorf("Details = %v", merged.Details)
	}
	if same := base.WithDetails(nil); same != base {
		t.Error("WithDetails(nil) should return the receiver")
	}
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestErrorFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode ErrorCode
		wantMsg  string
	}{
		{
			name:     "detail",
			status:   http.StatusUnauthorized,
			body:     `{"detail":"Invalid API key."}`,
			wantCode: CodeUnauthenticated,
			wantMsg:  "Invalid API key.",
		},
		{
			name:     "message",
			status:   http.StatusForbidden,
			body:     `{"message":"Category not enabled."}`,
			wantCode: CodePermissionDenied,
			wantMsg:  "Category not enabled.",
		},
		{
			name:     "errors list",
			status:   http.StatusBadRequest,
			body:     `{"errors":[{"title":"Missing","detail":"first_name is required"},"bad cursor"]}`,
			wantCode: CodeInvalidArgument,
			wantMsg:  "first_name is required; bad cursor",
		},
		{
			name:     "plain text",
			status:   http.StatusBadGateway,
			body:     "upstream unavailable",
			wantCode: CodeUnavailable,
			wantMsg:  "upstream unavailable",
		},
		{
			name:     "empty body",
			status:   http.StatusTooManyRequests,
			body:     "",
			wantCode: CodeResourceExhausted,
			wantMsg:  "Too Many Requests",
		},
		{
			name:     "non-object json",
			status:   http.StatusInternalServerError,
			body:     `["x"]`,
			wantCode: CodeInternal,
			wantMsg:  "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrorFromResponse(response(tt.status, tt.body))
			if err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", err.Code, tt.wantCode)
			}
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Status != tt.status {
				t.Errorf("Status = %d, want %d", err.Status, tt.status)
			}
			if string(err.Body) != tt.body {
				t.Errorf("Body = %q, want %q", err.Body, tt.body)
			}
		})
	}
}

func TestCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
	}{
		{400, CodeInvalidArgument},
		{422, CodeInvalidArgument},
		{401, CodeUnauthenticated},
		{403, CodePermissionDenied},
		{404, CodeNotFound},
		{405, CodeMethodNotAllowed},
		{409, CodeConflict},
		{410, CodeGone},
		{429, CodeResourceExhausted},
		{499, CodeCanceled},
		{500, CodeInternal},
		{501, CodeNotImplemented},
		{502, CodeUnavailable},
		{503, CodeUnavailable},
		{504, CodeDeadlineExceeded},
		{599, CodeInternal},
		{418, CodeUnknown},
	}
	for _, tt := range tests {
		if got := CodeFromStatus(tt.status); got != tt.want {
			t.Errorf("CodeFromStatus(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestErrorCode_HTTPStatusRoundTrip(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidArgument, CodeUnauthenticated, CodePermissionDenied, CodeNotFound,
		CodeMethodNotAllowed, CodeConflict, CodeGone, CodeResourceExhausted, CodeCanceled,
		CodeInternal, CodeNotImplemented, CodeUnavailable, CodeDeadlineExceeded,
	}
	for _, code := range codes {
		if got := CodeFromStatus(code.HTTPStatus()); got != code {
			t.Errorf("CodeFromStatus(%s.HTTPStatus()) = %s", code, got)
		}
	}
	if got := CodeUnknown.HTTPStatus(); got != http.StatusInternalServerError {
		t.Errorf("CodeUnknown.HTTPStatus() = %d", got)
	}
}

func TestAsError(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}
	valErr := validator.New().Struct(input{Email: "nope"})

	tests := []struct {
		name     string
		input    error
		wantCode ErrorCode
		wantMsg  string
	}{
		{name: "passthrough", input: NewError(CodeNotFound, "not found"), wantCode: CodeNotFound, wantMsg: "not found"},
		{name: "wrapped", input: fmt.Errorf("call: %w", NewError(CodeGone, "gone")), wantCode: CodeGone, wantMsg: "gone"},
		{name: "deadline", input: context.DeadlineExceeded, wantCode: CodeDeadlineExceeded, wantMsg: "request timeout"},
		{name: "canceled", input: context.Canceled, wantCode: CodeCanceled, wantMsg: "context canceled"},
		{name: "validation", input: valErr, wantCode: CodeInvalidArgument, wantMsg: "Name: required; Email: must be a valid email address"},
		{name: "other", input: errors.New("boom"), wantCode: CodeUnknown, wantMsg: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsError(tt.input)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}

	if AsError(nil) != nil {
		t.Error("AsError(nil) != nil")
	}
	if got := AsError(valErr); got.Details["Email"] != "must be a valid email address" {
		t.Errorf("Details = %v", got.Details)
	}
	if !errors.Is(AsError(context.Canceled), context.Canceled) {
		t.Error("AsError(context.Canceled) does not unwrap")
	}
}

func TestErrorPredicates(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Code: CodeResourceExhausted, Status: 429})
	if !IsRateLimited(err) {
		t.Error("IsRateLimited = false")
	}
	if IsNotFound(err) || IsUnauthenticated(err) || IsPermissionDenied(err) {
		t.Error("unexpected predicate match")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("CodeOf(plain) should be empty")
	}
}
