package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/perihassanzadeh/improve365/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewHonoursLevel(t *testing.T) {
	t.Parallel()
	l, err := New(config.LogConfig{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected error enabled at warn level")
	}
}

func TestNamedNilFallsBackToNop(t *testing.T) {
	t.Parallel()
	if Named(nil, "store") == nil {
		t.Fatalf("expected nop logger")
	}
}
