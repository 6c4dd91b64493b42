package anim

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestSetLoggerSharesWithRasterizer(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(l)
	if Logger() != l || gg.Logger() != l {
		t.Fatal("logger should be installed for anim and gg")
	}
	gg.Logger().Warn("cpu fallback")
	if !strings.Contains(buf.String(), "cpu fallback") {
		t.Errorf("gg output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil should restore the silent logger")
	}
	if gg.Logger() == l {
		t.Error("nil should reset the gg logger too")
	}
}
