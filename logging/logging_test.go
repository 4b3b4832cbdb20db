package logging

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "info level",
			level:     "info",
			wantLevel: slog.LevelInfo,
		},
		{
			name:      "warning level",
			level:     "warning",
			wantLevel: slog.LevelWarn,
		},
		{
			name:      "error level",
			level:     "error",
			wantLevel: slog.LevelError,
		},
		{
			name:      "silent level disables logging",
			level:     "silent",
			wantLevel: slog.Level(1000),
		},
		{
			name:      "invalid level defaults to info",
			level:     "invalid",
			wantLevel: slog.LevelInfo,
		},
		{
			name:      "empty string defaults to info",
			level:     "",
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLogLevel(tt.level)
			if got != tt.wantLevel {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.level, got, tt.wantLevel)
			}
		})
	}
}

func TestLogLevelFlag_Set(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{name: "valid debug", value: "debug", wantError: false},
		{name: "valid error", value: "error", wantError: false},
		{name: "valid silent", value: "silent", wantError: false},
		{name: "invalid value", value: "verbose", wantError: true},
		{name: "empty value", value: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := &logLevelFlag{value: "silent"}
			err := flag.Set(tt.value)
			if tt.wantError {
				if err == nil {
					t.Errorf("Set(%q) expected error, got nil", tt.value)
				}
				if flag.IsSet() {
					t.Errorf("Set(%q) failed but flag marked as set", tt.value)
				}
			} else {
				if err != nil {
					t.Errorf("Set(%q) unexpected error: %v", tt.value, err)
				}
				if !flag.IsSet() {
					t.Errorf("Set(%q) succeeded but flag not marked as set", tt.value)
				}
				if flag.String() != tt.value {
					t.Errorf("String() = %q, want %q", flag.String(), tt.value)
				}
			}
		})
	}
}
