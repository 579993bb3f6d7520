package app

import (
	"context"
	"fmt"
	"time"

	"fortio.org/log"

	"github.com/squeezetools/nowscreen/internal/clockface"
	"github.com/squeezetools/nowscreen/internal/config"
	"github.com/squeezetools/nowscreen/internal/datetime"
	"github.com/squeezetools/nowscreen/internal/palette"
	"github.com/squeezetools/nowscreen/internal/render"
)

type App struct {
	Config config.Config
	Clock  Clock
	Faces  []render.Face
	Sinks  []render.Sink
	Logger render.Logger
}

// New wires the faces and sinks selected by cfg.
func New(cfg config.Config, logger render.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NoopLogger{}
	}
	app := &App{Config: cfg, Clock: SystemClock{}, Logger: logger}
	for _, name := range cfg.Faces {
		switch name {
		case config.FaceClock:
			app.Faces = append(app.Faces, clockface.Face{Width: cfg.Width})
		case config.FaceDateTime:
			face, err := datetime.NewFace(datetime.Options{
				Width:    cfg.Width,
				FontPath: cfg.FontPath,
				Lang:     cfg.Lang,
				Logger:   logger,
			})
			if err != nil {
				return nil, err
			}
			app.Faces = append(app.Faces, face)
		default:
			return nil, fmt.Errorf("unknown face %q", name)
		}
	}
	app.Sinks = append(app.Sinks, render.PNGSink{Dir: cfg.OutputDir, Logger: logger})
	if cfg.Framebuffer != "" {
		app.Sinks = append(app.Sinks, render.FramebufferSink{Path: cfg.Framebuffer, Gray: cfg.Gray, Only: cfg.Faces[0], Logger: logger})
	}
	return app, nil
}

// Mode returns the palette mode for now under the app's configuration.
func (app *App) Mode(now time.Time) palette.Mode {
	if app.Config.ForceDay && !app.Config.ForceNight {
		return palette.Day
	}
	return palette.ModeAt(now, app.Config.ForceNight, app.Config.Schedule)
}

// Run renders every face once for the current time and hands each image to
// every sink. The first failure stops the run.
func (app *App) Run(ctx context.Context) error {
	now := app.Clock.Now()
	mode := app.Mode(now)
	app.Logger.Infof("app", "rendering %d face(s) at %s, mode=%s", len(app.Faces), now.Format("15:04"), mode)

	for _, face := range app.Faces {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := face.Render(now, mode)
		if err != nil {
			app.Logger.Errorf("app", "render %s failed: %v", face.Name(), err)
			return fmt.Errorf("render %s: %w", face.Name(), err)
		}
		for _, sink := range app.Sinks {
			if err := sink.Write(ctx, face, img); err != nil {
				app.Logger.Errorf("app", "write %s failed: %v", face.Name(), err)
				return fmt.Errorf("write %s: %w", face.Name(), err)
			}
		}
	}
	return nil
}

// Clock abstracts time.Now so runs can be replayed at a fixed time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// NoopLogger and FortioLogger implement render.Logger.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FortioLogger forwards to fortio.org/log, prefixing the component.
type FortioLogger struct{}

func (FortioLogger) Infof(component string, format string, args ...interface{}) {
	log.Infof(component+": "+format, args...)
}

func (FortioLogger) Errorf(component string, format string, args ...interface{}) {
	log.Errf(component+": "+format, args...)
}
