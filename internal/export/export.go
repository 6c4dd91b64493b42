// Package export renders animation frames to image files without a window.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iburimskiy/face-animation/internal/anim"
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/render"
	"github.com/iburimskiy/face-animation/internal/scene"
)

// Frames steps loop n times and writes every published frame of c to dir as
// frame-0001.<format>, frame-0002.<format>, ... Pacing is ignored. It returns
// the written paths.
func Frames(ctx context.Context, loop *anim.Loop, c *scene.Canvas, dir, format string, n int) ([]string, error) {
	if format != "png" && format != "svg" {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", config.ErrBadFrames, n)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		loop.Step()

		fn := filepath.Join(dir, fmt.Sprintf("frame-%04d.%s", i, format))
		if err := writeFrame(fn, format, c.Frame()); err != nil {
			return paths, err
		}
		paths = append(paths, fn)
		if i%50 == 0 || i == n {
			anim.Logger().Info("export progress", "frames", i, "of", n, "dir", dir)
		}
	}
	return paths, nil
}

func writeFrame(fn, format string, fr *scene.Frame) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "svg":
		s := render.NewSVG(f, fr.Width, fr.Height, config.Background)
		fr.Draw(s)
		s.End()
		return nil
	default:
		r := render.NewRaster(fr.Width, fr.Height)
		defer r.Close()
		r.Clear(config.Background)
		fr.Draw(r)
		if err := r.EncodePNG(f); err != nil {
			return fmt.Errorf("export: encode %s: %w", fn, err)
		}
		return nil
	}
}
