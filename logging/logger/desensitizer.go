package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Default sensitive field names
var defaultSensitiveFields = []string{
	"password", "passwd", "pwd",
	"token", "access_token", "refresh_token", "authorization",
	"secret", "api_key", "apikey",
}

const maskValue = "******"

// Desensitizer masks sensitive fields of log entries
type Desensitizer struct {
	fields []string
}

// NewDesensitizer creates a desensitizer masking the default fields plus extra
func NewDesensitizer(extra ...string) *Desensitizer {
	fields := make([]string, 0, len(defaultSensitiveFields)+len(extra))
	fields = append(fields, defaultSensitiveFields...)
	for _, f := range extra {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			fields = append(fields, f)
		}
	}
	return &Desensitizer{fields: fields}
}

// Levels returns all log levels
func (d *Desensitizer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks sensitive fields in place
func (d *Desensitizer) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if value == nil || !d.isSensitiveField(key) {
			continue
		}
		entry.Data[key] = maskValue
	}
	return nil
}

// isSensitiveField matches field names by substring, case-insensitive
func (d *Desensitizer) isSensitiveField(key string) bool {
	k := strings.ToLower(key)
	for _, f := range d.fields {
		if strings.Contains(k, f) {
			return true
		}
	}
	return false
}
