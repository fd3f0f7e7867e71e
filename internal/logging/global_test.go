package logging

import (
	"testing"
)

func TestGlobalDefaultsToNoop(t *testing.T) {
	SetGlobal(nil)

	l := Global()
	if l == nil {
		t.Fatal("Global() returned nil")
	}
	// Safe to call without initialization.
	Info("no-op info")
	Debug("no-op debug")
}

func TestSetGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	logger, err := New(&Config{Level: LevelInfo, LogDir: tmpDir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		SetGlobal(nil)
		logger.Close()
	})

	SetGlobal(logger)
	if Global() != logger {
		t.Error("Global() did not return the logger set via SetGlobal")
	}
}

func TestInitAndCloseGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	if Global().LogPath() == "" {
		t.Error("global logger has no log path after InitGlobal")
	}

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}
}
