package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Init(tt.level, &buf); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			out := buf.String()
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp+" ") {
					t.Errorf("expected %s in output %q", exp, out)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc+" ") {
					t.Errorf("unexpected %s in output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Init("warn", &buf); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("hidden")
	Warn("-te is deprecated")
	Sync()

	if out := buf.String(); out != "WARN -te is deprecated\n" {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestNilConsole(t *testing.T) {
	if err := Init("debug", nil); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	Error("dropped")
	Sugar.Debugf("dropped %d", 1)
}

func TestLevelForVerbosity(t *testing.T) {
	tests := map[int]string{0: "warn", 1: "info", 2: "debug", 5: "debug"}
	for verbose, want := range tests {
		if got := LevelForVerbosity(verbose); got != want {
			t.Errorf("verbosity %d: expected %s, got %s", verbose, want, got)
		}
	}
}
