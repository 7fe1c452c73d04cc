package config

import (
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level      int
	Path       string
	Format     string
	Output     string
	OutputFile string
	// SensitiveFields are masked before an entry is written
	SensitiveFields []string
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:           v.GetInt("logger.level"),
		Format:          v.GetString("logger.format"),
		Path:            v.GetString("logger.path"),
		Output:          v.GetString("logger.output"),
		OutputFile:      v.GetString("logger.output_file"),
		SensitiveFields: v.GetStringSlice("logger.sensitive_fields"),
	}
}
