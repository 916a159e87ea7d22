package logger

import "testing"

func TestNopLogger_DiscardsEverything(t *testing.T) {
	n := NewNop()

	n.Debug("debug", "k", 1)
	n.Info("info")
	n.Warn("warn", "k", "v")
	n.Error("error")
}

func TestTestLogger_FormatsKeyValues(t *testing.T) {
	got := formatKeyValues([]any{"size", 8, "depth", 2})
	want := "size=8 depth=2 "
	if got != want {
		t.Errorf("formatKeyValues() = %q, want %q", got, want)
	}
}

func TestTestLogger_FormatsDanglingKey(t *testing.T) {
	got := formatKeyValues([]any{"orphan"})
	if got != "orphan=<missing> " {
		t.Errorf("formatKeyValues() = %q", got)
	}
}
