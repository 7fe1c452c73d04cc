package resp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/coursenav/ecode"
)

func TestFromHTTPSuccessIsNil(t *testing.T) {
	if e := FromHTTP(http.StatusOK, []byte(`{"message":"ignored"}`)); e != nil {
		t.Errorf("expected nil for 2xx, got %+v", e)
	}
	if e := FromHTTP(http.StatusFound, nil); e != nil {
		t.Errorf("expected nil for 3xx, got %+v", e)
	}
}

func TestFromHTTPDecodesEnvelope(t *testing.T) {
	body := []byte(`{"message":"Invalid credentials","extra":{"fields":{"email":["bad email"]}}}`)
	e := FromHTTP(http.StatusBadRequest, body)
	if e == nil {
		t.Fatal("expected error data")
	}
	if e.Message != "Invalid credentials" || e.Status != http.StatusBadRequest {
		t.Errorf("unexpected error data %+v", e)
	}
	if e.Code != ecode.RequestErr {
		t.Errorf("expected code derived from status, got %d", e.Code)
	}
	if got := e.FieldErrors("email"); len(got) != 1 || got[0] != "bad email" {
		t.Errorf("unexpected field errors %v", got)
	}
}

func TestFromHTTPFallbacks(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   string
	}{
		{http.StatusInternalServerError, "<html>oops</html>", "Internal Server Error"},
		{http.StatusUnauthorized, `{"detail":"Invalid token."}`, "Invalid token."},
		{http.StatusNotFound, "", "Not Found"},
	}
	for _, c := range cases {
		e := FromHTTP(c.status, []byte(c.body))
		if e == nil || e.Message != c.want {
			t.Errorf("FromHTTP(%d, %q) message = %v, want %q", c.status, c.body, e, c.want)
		}
	}
}

func TestTransport(t *testing.T) {
	e := Transport(errors.New("connection refused"))
	if e.Code != ecode.ServiceUnavailable || e.Status != 0 {
		t.Errorf("unexpected transport error %+v", e)
	}
	if d := Transport(context.DeadlineExceeded); d.Code != ecode.Deadline {
		t.Errorf("expected deadline code, got %d", d.Code)
	}
}

func TestResponseVariants(t *testing.T) {
	ok := Ok(3)
	if !ok.IsOk() || *ok.Result != 3 {
		t.Errorf("unexpected ok response %+v", ok)
	}
	bad := Err[int](nil)
	if bad.IsOk() || bad.Error == nil || bad.Error.Code != ecode.ServerErr {
		t.Errorf("unexpected err response %+v", bad)
	}
}

func TestDetail(t *testing.T) {
	e := Invalid(map[string][]string{"password": {"required"}, "email": {"invalid"}})
	want := "Invalid parameters\n  email: invalid\n  password: required"
	if got := e.Detail(); got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}
}

func TestFailWritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, ValidationFailed(map[string][]string{"email": {"required"}}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	e := FromHTTP(rec.Code, rec.Body.Bytes())
	if e.Code != ecode.ParamErr || e.FieldErrors("email")[0] != "required" {
		t.Errorf("round trip lost detail: %+v", e)
	}
}

func TestSuccessWritesData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"id": 1})
	var got map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil || got["id"] != 1 {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
}
