package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Width != WindowWidth || conf.Height != WindowHeight {
		t.Errorf("size = %dx%d", conf.Width, conf.Height)
	}
	if conf.Delay != FrameDelay {
		t.Errorf("Delay = %v, want %v", conf.Delay, FrameDelay)
	}
	if conf.Policy != PolicyBoth {
		t.Errorf("Policy = %q", conf.Policy)
	}
	if len(conf.Faces) != 1 || conf.Faces[0] != (Face{}) {
		t.Errorf("Faces = %+v, want one default face", conf.Faces)
	}
	if conf.Sound || conf.Terminal || conf.HUD || conf.ExportDir != "" {
		t.Errorf("unexpected optional modes: %+v", conf)
	}
}

func TestLoadPresetTwo(t *testing.T) {
	conf, err := Load([]string{"-preset", "two", "-width", "600", "-height", "400"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Delay != TwoFacesDelay {
		t.Errorf("Delay = %v", conf.Delay)
	}
	if len(conf.Faces) != 2 {
		t.Fatalf("Faces = %+v", conf.Faces)
	}
	second := conf.Faces[1]
	if second.X != 300 || second.Y != 400-DefaultFaceHeight-1 || second.Dy == nil || *second.Dy != -DefaultStep {
		t.Errorf("second face = %+v", second)
	}
}

func TestLoadFlagsOverride(t *testing.T) {
	conf, err := Load([]string{"-delay", "5ms", "-policy", "axis", "-sound", "-term", "-hud", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Delay != 5*time.Millisecond || conf.Policy != PolicyAxis {
		t.Errorf("Delay = %v, Policy = %q", conf.Delay, conf.Policy)
	}
	if !conf.Sound || !conf.Terminal || !conf.HUD || !conf.Verbose {
		t.Errorf("booleans not set: %+v", conf)
	}
}

func TestLoadSceneFile(t *testing.T) {
	fn := writeScene(t, `{
		"width": 640, "height": 480, "delay_ms": 16, "policy": "axis",
		"faces": [
			{"x": 10, "y": 20},
			{"x": 100, "y": 50, "width": 40, "height": 30, "dx": -3, "dy": 2}
		]
	}`)
	conf, err := Load([]string{"-scene", fn})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Width != 640 || conf.Height != 480 {
		t.Errorf("size = %dx%d", conf.Width, conf.Height)
	}
	if conf.Delay != 16*time.Millisecond || conf.Policy != PolicyAxis {
		t.Errorf("Delay = %v, Policy = %q", conf.Delay, conf.Policy)
	}
	if len(conf.Faces) != 2 {
		t.Fatalf("Faces = %+v", conf.Faces)
	}
	f := conf.Faces[1]
	if f.X != 100 || *f.Width != 40 || *f.Height != 30 || *f.Dx != -3 || *f.Dy != 2 {
		t.Errorf("face = %+v", f)
	}
	if conf.Faces[0].Width != nil {
		t.Error("unset width should stay nil")
	}
}

func TestLoadExplicitFlagsBeatSceneFile(t *testing.T) {
	fn := writeScene(t, `{"width": 640, "delay_ms": 16, "policy": "axis", "faces": []}`)
	conf, err := Load([]string{"-scene", fn, "-width", "300", "-delay", "1ms", "-policy", "both"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Width != 300 || conf.Delay != time.Millisecond || conf.Policy != PolicyBoth {
		t.Errorf("conf = %+v", conf)
	}
	if len(conf.Faces) != 0 {
		t.Errorf("scene file faces should replace the preset, got %+v", conf.Faces)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"policy", []string{"-policy", "spin"}, ErrUnknownPolicy},
		{"preset", []string{"-preset", "three"}, ErrUnknownPreset},
		{"format", []string{"-format", "gif"}, ErrUnknownFormat},
		{"frames", []string{"-export", "out", "-frames", "-1"}, ErrBadFrames},
		{"scene and preset", []string{"-scene", "any.json", "-preset", "two"}, ErrSceneConflict},
	}
	for _, tt := range tests {
		if _, err := Load(tt.args); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := Load([]string{"-width", "0"}); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := Load([]string{"-scene", filepath.Join(t.TempDir(), "missing.json")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing scene err = %v", err)
	}
	if _, err := Load([]string{"-scene", writeScene(t, "{not json")}); err == nil {
		t.Error("malformed scene should fail")
	}
}

func TestBundledScene(t *testing.T) {
	conf, err := Load([]string{"-scene", "../../scenes/crowd.json"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Width != 640 || conf.Height != 480 || conf.Policy != PolicyAxis || len(conf.Faces) != 4 {
		t.Errorf("conf = %+v", conf)
	}
}
