package system

import (
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestSetLevel(t *testing.T) {
	prev := Logger.GetLevel()
	defer Logger.SetLevel(prev)

	if err := SetLevel("DEBUG"); err != nil {
		t.Fatalf("SetLevel error: %v", err)
	}
	if got := Logger.GetLevel(); got != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	// empty keeps the current level
	if err := SetLevel(" "); err != nil {
		t.Fatalf("SetLevel empty error: %v", err)
	}
	if got := Logger.GetLevel(); got != clog.DebugLevel {
		t.Fatalf("expected level unchanged, got %v", got)
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
