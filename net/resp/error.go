package resp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ncobase/coursenav/ecode"
)

// Extra carries optional error detail
type Extra struct {
	Fields map[string][]string `json:"fields,omitempty"`
}

// ErrorData is the normalized API error
type ErrorData struct {
	Status  int    `json:"-"`              // HTTP status, 0 for transport failures
	Code    int    `json:"code,omitempty"` // Business code
	Message string `json:"message"`
	Extra   Extra  `json:"extra"`
}

// Error implements error
func (e *ErrorData) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// FieldErrors returns the validation messages of a field
func (e *ErrorData) FieldErrors(name string) []string {
	if e == nil || e.Extra.Fields == nil {
		return nil
	}
	return e.Extra.Fields[name]
}

// Detail renders the message followed by per-field messages
func (e *ErrorData) Detail() string {
	if e == nil {
		return ""
	}
	if len(e.Extra.Fields) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	for _, name := range sortedKeys(e.Extra.Fields) {
		fmt.Fprintf(&b, "\n  %s: %s", name, strings.Join(e.Extra.Fields[name], " "))
	}
	return b.String()
}

// Response is the result of an API call: exactly one of Result and Error is set
type Response[T any] struct {
	Result *T
	Error  *ErrorData
}

// Ok creates a success response
func Ok[T any](v T) Response[T] {
	return Response[T]{Result: &v}
}

// Err creates an error response
func Err[T any](e *ErrorData) Response[T] {
	if e == nil {
		e = &ErrorData{Code: ecode.ServerErr, Message: ecode.Text(ecode.ServerErr)}
	}
	return Response[T]{Error: e}
}

// IsOk reports whether the response carries a result
func (r Response[T]) IsOk() bool {
	return r.Error == nil && r.Result != nil
}

// FromHTTP normalizes an HTTP reply: nil for status < 400, otherwise the
// decoded {message, extra} body with fallbacks for missing parts.
func FromHTTP(status int, body []byte) *ErrorData {
	if status < http.StatusBadRequest {
		return nil
	}

	e := &ErrorData{}
	if len(body) > 0 {
		_ = json.Unmarshal(body, e)
	}
	e.Status = status
	if e.Code == 0 {
		e.Code = ecode.FromHTTPStatus(status)
	}
	if strings.TrimSpace(e.Message) == "" {
		e.Message = fallbackMessage(status, body)
	}
	return e
}

// fallbackMessage picks a DRF style "detail" when present, else the code text
func fallbackMessage(status int, body []byte) string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if len(body) > 0 && json.Unmarshal(body, &detail) == nil && detail.Detail != "" {
		return detail.Detail
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return ecode.Text(ecode.FromHTTPStatus(status))
}

// Transport wraps a transport failure as error data
func Transport(err error) *ErrorData {
	code := ecode.ServiceUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		code = ecode.Deadline
	}
	return &ErrorData{
		Code:    code,
		Message: fmt.Sprintf("%s: %v", ecode.Text(code), err),
	}
}

// Invalid creates validation error data for the given fields
func Invalid(fields map[string][]string) *ErrorData {
	return &ErrorData{
		Status:  http.StatusBadRequest,
		Code:    ecode.ParamErr,
		Message: ecode.Text(ecode.ParamErr),
		Extra:   Extra{Fields: fields},
	}
}
