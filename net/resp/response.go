package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/ncobase/coursenav/ecode"
)

// Exception represents a failure written by a server.
type Exception struct {
	Status  int                 `json:"-"`              // HTTP status
	Code    int                 `json:"code,omitempty"` // Business code
	Message string              `json:"message"`        // Message
	Fields  map[string][]string `json:"-"`              // Validation errors
}

// newException creates a new exception.
func newException(status, code int, message string, args ...any) *Exception {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if message == "" {
		message = ecode.Text(code)
	}
	return &Exception{Status: status, Code: code, Message: message}
}

// Success handles success responses.
func Success(w http.ResponseWriter, data any) {
	WithStatusCode(w, http.StatusOK, data)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data any) {
	if s, ok := data.(string); ok {
		data = map[string]any{"message": s}
	}
	if data == nil {
		data = map[string]any{"message": "ok"}
	}
	writeJSON(w, statusCode, data)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer("")
	}
	statusCode, result := buildFailureResponse(r)
	writeJSON(w, statusCode, result)
}

// buildFailureResponse builds the {message, code, extra} failure body.
func buildFailureResponse(r *Exception) (int, *ErrorData) {
	status := http.StatusBadRequest
	code := ecode.RequestErr

	if r.Status != 0 {
		status = r.Status
	}
	if r.Code != 0 {
		code = r.Code
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &ErrorData{
		Code:    code,
		Message: message,
		Extra:   Extra{Fields: r.Fields},
	}
}

// writeJSON writes the JSON body with the status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}

// BadRequest indicates a bad request.
func BadRequest(message string, args ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, args...)
}

// ValidationFailed indicates invalid fields.
func ValidationFailed(fields map[string][]string) *Exception {
	e := newException(http.StatusBadRequest, ecode.ParamErr, "")
	e.Fields = fields
	return e
}

// UnAuthorized indicates that the request is unauthorized.
func UnAuthorized(message string, args ...any) *Exception {
	return newException(http.StatusUnauthorized, ecode.Unauthorized, message, args...)
}

// Forbidden indicates access is forbidden.
func Forbidden(message string, args ...any) *Exception {
	return newException(http.StatusForbidden, ecode.AccessDenied, message, args...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, args ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NothingFound, message, args...)
}

// InternalServer indicates a server error.
func InternalServer(message string, args ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, args...)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
