package ecode

import (
	"net/http"
	"sync"
)

// Client-side error codes.
const (
	OK = 0

	// Authentication / authorization
	NoLogin      = -101
	Unauthorized = -103
	AccessDenied = -104

	// Request
	RequestErr = -400
	ParamErr   = -401

	// Resource
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409

	// Server / transport
	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:                 "ok",
		NoLogin:            "Account not logged in",
		Unauthorized:       "Authentication credentials were not provided or are invalid",
		AccessDenied:       "Access denied",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		Deadline:           "Deadline exceeded",
	}
)

// Text returns the message for a code
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// Register registers or overrides the message of a code
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}

// FromHTTPStatus maps an HTTP status to the closest code.
func FromHTTPStatus(status int) int {
	switch {
	case status < 400:
		return OK
	case status == http.StatusUnauthorized:
		return Unauthorized
	case status == http.StatusForbidden:
		return AccessDenied
	case status == http.StatusNotFound:
		return NothingFound
	case status == http.StatusMethodNotAllowed:
		return MethodNotAllowed
	case status == http.StatusConflict:
		return Conflict
	case status == http.StatusUnprocessableEntity:
		return ParamErr
	case status == http.StatusServiceUnavailable, status == http.StatusBadGateway:
		return ServiceUnavailable
	case status == http.StatusGatewayTimeout:
		return Deadline
	case status >= 500:
		return ServerErr
	default:
		return RequestErr
	}
}

// ToHTTPStatus maps a code to an HTTP status.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin, Unauthorized:
		return http.StatusUnauthorized
	case AccessDenied:
		return http.StatusForbidden
	case NothingFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	case Deadline:
		return http.StatusGatewayTimeout
	case ServerErr:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
