package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	info := GetVersionInfo()
	if info.Version != "1.2.3" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}

func TestInfoFormats(t *testing.T) {
	i := Info{Version: "1.0.0", Branch: "main", Revision: "abc1234", BuiltAt: "now", GoVersion: "go1.24"}
	if !strings.Contains(i.String(), "Revision: abc1234") {
		t.Errorf("String() = %q", i.String())
	}

	out, err := i.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var back Info
	if err := json.Unmarshal([]byte(out), &back); err != nil || back != i {
		t.Errorf("JSON() = %s", out)
	}

	var buf bytes.Buffer
	Fprint(&buf)
	if !strings.HasPrefix(buf.String(), "Version: ") {
		t.Errorf("Fprint() = %q", buf.String())
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortRevision() = %q", got)
	}
	if got := shortRevision("abc"); got != "abc" {
		t.Errorf("shortRevision() = %q", got)
	}
}
