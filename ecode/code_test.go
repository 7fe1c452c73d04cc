package ecode

import (
	"net/http"
	"testing"
)

func TestFromHTTPStatus(t *testing.T) {
	cases := map[int]int{
		http.StatusOK:                  OK,
		http.StatusBadRequest:          RequestErr,
		http.StatusUnauthorized:        Unauthorized,
		http.StatusForbidden:           AccessDenied,
		http.StatusNotFound:            NothingFound,
		http.StatusUnprocessableEntity: ParamErr,
		http.StatusInternalServerError: ServerErr,
		http.StatusBadGateway:          ServiceUnavailable,
		http.StatusGatewayTimeout:      Deadline,
	}
	for status, want := range cases {
		if got := FromHTTPStatus(status); got != want {
			t.Errorf("FromHTTPStatus(%d) = %d, want %d", status, got, want)
		}
	}
}

func TestTextFallsBackToServerError(t *testing.T) {
	if got := Text(-9999); got != Text(ServerErr) {
		t.Errorf("expected fallback message, got %q", got)
	}
	Register(-1001, "Selection expired")
	if got := Text(-1001); got != "Selection expired" {
		t.Errorf("expected registered message, got %q", got)
	}
}

func TestFieldMessages(t *testing.T) {
	if got := FieldIsRequired("email"); got != "email required" {
		t.Errorf("unexpected message %q", got)
	}
	if got := NotExist(); got != "does not exist" {
		t.Errorf("unexpected message %q", got)
	}
}
