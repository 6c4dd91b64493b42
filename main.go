package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/iburimskiy/face-animation/internal/anim"
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/export"
	"github.com/iburimskiy/face-animation/internal/face"
	"github.com/iburimskiy/face-animation/internal/game"
	"github.com/iburimskiy/face-animation/internal/scene"
	"github.com/iburimskiy/face-animation/internal/sound"
	"github.com/iburimskiy/face-animation/internal/term"
)

func main() {
	conf, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("configuration", "err", err)
		os.Exit(2)
	}

	logger := setupLogging(os.Stderr, conf.Verbose)

	if err := run(conf, logger); err != nil {
		logger.Error("exit", "err", err)
		os.Exit(1)
	}
}

// setupLogging builds the text logger and installs it for the animation
// packages.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	anim.SetLogger(logger)
	return logger
}

func run(conf config.Config, logger *slog.Logger) error {
	policy, err := anim.ParsePolicy(conf.Policy)
	if err != nil {
		return err
	}

	canvas := scene.New(conf.Width, conf.Height)
	opts := anim.Options{
		Delay:       conf.Delay,
		Policy:      policy,
		FlashFrames: config.FlashFrames,
	}

	if conf.Sound && len(conf.ExportDir) == 0 {
		player, err := sound.Open(config.SoundSampleRate, config.ClickDuration, config.ClickFrequency)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.OnBounce = func(f *face.Face) {
				// Smaller faces click higher.
				player.Click(float64(config.DefaultFaceWidth) / float64(f.Width()))
			}
		}
	}

	loop := anim.NewLoop(canvas, opts)
	for _, f := range face.AllFromConfig(conf.Faces) {
		canvas.AddFace(f)
	}
	logger.Info("scene ready", "faces", canvas.Len(), "width", conf.Width, "height", conf.Height, "policy", policy)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case len(conf.ExportDir) > 0:
		paths, err := export.Frames(ctx, loop, canvas, conf.ExportDir, conf.ExportFormat, conf.ExportFrames)
		if err != nil {
			return err
		}
		logger.Info("export done", "frames", len(paths), "dir", conf.ExportDir)
		return nil

	case conf.Terminal:
		host, err := term.Open(canvas)
		if err != nil {
			return err
		}
		return animate(ctx, cancel, loop, func() error {
			return host.Run(ctx, cancel)
		})

	default:
		g := game.New(canvas, loop, conf.HUD)
		return animate(ctx, cancel, loop, func() error {
			return game.Run(ctx, g, conf.Width, conf.Height)
		})
	}
}

// animate runs the loop on its own goroutine while host blocks, then stops
// the loop and waits for it.
func animate(ctx context.Context, cancel context.CancelFunc, loop *anim.Loop, host func() error) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = loop.Run(ctx)
	}()

	err := host()
	cancel()
	wg.Wait()
	return err
}
