package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "seaworld.log")

	// 1MB is the smallest rotation size lumberjack accepts
	l, err := New(Options{Level: "debug", File: FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// About 3MB of output
	payload := strings.Repeat("~", 200)
	sugar := l.Sugar()
	for i := 0; i < 15000; i++ {
		sugar.Infof("frame %d: %s", i, payload)
	}
	_ = l.Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	current := false
	for _, e := range entries {
		switch name := e.Name(); {
		case name == "seaworld.log":
			current = true
		case strings.HasPrefix(name, "seaworld-20") && strings.HasSuffix(name, ".log"):
			rotated = append(rotated, name)
		}
	}

	if !current {
		t.Error("current log file missing")
	}
	// Pruning to MaxBackups runs in the background, so only require one
	if len(rotated) == 0 {
		t.Errorf("expected timestamped backups, got %v", entries)
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	tests := []struct {
		level string
		first int // index in all of the lowest level written
	}{
		{"error", 3},
		{"warn", 2},
		{"info", 1},
		{"", 1},
		{"debug", 0},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, "level-"+tt.level+".log")
			if err := InitWith(Options{Level: tt.level, File: FileConfig{Path: logFile, MaxSizeMB: 10}}); err != nil {
				t.Fatalf("InitWith: %v", err)
			}

			Debug("sonar ping")
			Info("sonar ping")
			Warn("sonar ping")
			Error("sonar ping")
			Sync()

			content := readLog(t, logFile)
			for i, lvl := range all {
				has := strings.Contains(content, lvl)
				if want := i >= tt.first; has != want {
					t.Errorf("%s present = %v, want %v", lvl, has, want)
				}
			}
		})
	}
}

func TestCallerSkipsWrappers(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	if err := InitWith(Options{Level: "info", File: FileConfig{Path: logFile, MaxSizeMB: 1}}); err != nil {
		t.Fatal(err)
	}
	Info("where")
	Sync()

	if content := readLog(t, logFile); !strings.Contains(content, "logger_test.go") {
		t.Errorf("caller should point at the test, got %s", content)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("/tmp/seaworld.log")
	want := FileConfig{Path: "/tmp/seaworld.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 14, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected New to reject an unknown level")
	}
}

func TestNamedLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWith(Options{Level: "info", File: FileConfig{Path: logFile, MaxSizeMB: 1}}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("assets").Warn("face missing", zap.String("face", "aqua4_up.jpg"))
	Sync()

	content := readLog(t, logFile)
	for _, want := range []string{"assets", "face missing", "aqua4_up.jpg", "logger_test.go"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in log output, got %s", want, content)
		}
	}
}
