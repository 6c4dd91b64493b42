package export

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/face-animation/internal/anim"
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/face"
	"github.com/iburimskiy/face-animation/internal/scene"
)

func setup() (*anim.Loop, *scene.Canvas) {
	c := scene.New(128, 96)
	c.AddFace(face.NewSized(0, 0, 40, 30))
	return anim.NewLoop(c, anim.Options{}), c
}

func TestFramesPNG(t *testing.T) {
	loop, c := setup()
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := Frames(context.Background(), loop, c, dir, "png", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 || filepath.Base(paths[2]) != "frame-0003.png" {
		t.Fatalf("paths = %v", paths)
	}
	if loop.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", loop.Frames())
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("bounds = %v", b)
	}
}

func TestFramesSVG(t *testing.T) {
	loop, c := setup()
	dir := t.TempDir()

	paths, err := Frames(context.Background(), loop, c, dir, "svg", 2)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	// Second frame: the face has moved twice by (5, 5).
	if !strings.Contains(string(data), `<ellipse cx="30" cy="25" rx="20" ry="15"`) {
		t.Errorf("unexpected svg:\n%s", data)
	}
}

func TestFramesRejectsFormat(t *testing.T) {
	loop, c := setup()
	_, err := Frames(context.Background(), loop, c, t.TempDir(), "gif", 1)
	if !errors.Is(err, config.ErrUnknownFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestFramesRejectsNegativeCount(t *testing.T) {
	loop, c := setup()
	paths, err := Frames(context.Background(), loop, c, t.TempDir(), "png", -1)
	if !errors.Is(err, config.ErrBadFrames) || paths != nil {
		t.Errorf("paths = %v, err = %v", paths, err)
	}
	if loop.Frames() != 0 {
		t.Errorf("Frames = %d, want 0", loop.Frames())
	}
}

func TestFramesCancelled(t *testing.T) {
	loop, c := setup()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := Frames(ctx, loop, c, t.TempDir(), "png", 5)
	if !errors.Is(err, context.Canceled) || len(paths) != 0 {
		t.Errorf("paths = %v, err = %v", paths, err)
	}
}
