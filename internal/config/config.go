// Package config resolves runtime settings from defaults and the environment.
// Command line flags are layered on top by main.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/squeezetools/nowscreen/internal/palette"
	"github.com/squeezetools/nowscreen/internal/render"
)

const (
	EnvOutputDir   = "NOWSCREEN_OUTPUT_DIR"
	EnvWidth       = "NOWSCREEN_WIDTH"
	EnvNightMode   = "NOWSCREEN_NIGHT_MODE"
	EnvMode        = "NOWSCREEN_MODE" // day|night, wins over EnvNightMode
	EnvFont        = "NOWSCREEN_FONT"
	EnvLang        = "NOWSCREEN_LANG"
	EnvFramebuffer = "NOWSCREEN_FRAMEBUFFER"
	EnvGray        = "NOWSCREEN_FRAMEBUFFER_GRAY"
	EnvStdioLog    = "NOWSCREEN_STDIO_LOG"
	EnvNightStart  = "NOWSCREEN_NIGHT_START"
	EnvNightEnd    = "NOWSCREEN_NIGHT_END"
)

// Faces that can be selected on the command line.
const (
	FaceClock    = "clock"
	FaceDateTime = "datetime"
	FaceAll      = "all"
)

type Config struct {
	OutputDir   string
	Width       int
	ForceNight  bool
	ForceDay    bool // ignore the night schedule
	FontPath    string
	Lang        string
	Framebuffer string // device path, empty disables the framebuffer sink
	Gray        bool   // framebuffer takes one luminance byte per pixel
	StdioLog    string
	Schedule    palette.Schedule
	Faces       []string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir: "./output",
		Width:     render.DefaultWidth,
		Lang:      "en",
		Schedule:  palette.DefaultSchedule,
		Faces:     []string{FaceClock, FaceDateTime},
	}
}

// DefaultFromEnv applies environment overrides to Default.
func DefaultFromEnv() (Config, error) {
	return FromEnv(Default(), os.Getenv)
}

// FromEnv applies overrides read through getenv to cfg.
func FromEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv(EnvFont); v != "" {
		cfg.FontPath = v
	}
	if v := getenv(EnvLang); v != "" {
		cfg.Lang = v
	}
	if v := getenv(EnvFramebuffer); v != "" {
		cfg.Framebuffer = v
	}
	if v := getenv(EnvStdioLog); v != "" {
		cfg.StdioLog = v
	}
	var err error
	if cfg.ForceNight, err = boolFromEnv(getenv, EnvNightMode, cfg.ForceNight); err != nil {
		return Config{}, err
	}
	if raw := getenv(EnvMode); raw != "" {
		mode, err := palette.ParseMode(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMode, err)
		}
		cfg.ForceNight = mode == palette.Night
		cfg.ForceDay = mode == palette.Day
	}
	if cfg.Gray, err = boolFromEnv(getenv, EnvGray, cfg.Gray); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intFromEnv(getenv, EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Schedule.Start, err = intFromEnv(getenv, EnvNightStart, cfg.Schedule.Start); err != nil {
		return Config{}, err
	}
	if cfg.Schedule.End, err = intFromEnv(getenv, EnvNightEnd, cfg.Schedule.End); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func boolFromEnv(getenv func(string) string, key string, def bool) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q): %w", key, raw, err)
	}
	return v, nil
}

func intFromEnv(getenv func(string) string, key string, def int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q): %w", key, raw, err)
	}
	return v, nil
}

// ParseFaces expands a face argument ("clock", "datetime" or "all").
func ParseFaces(arg string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", FaceAll:
		return []string{FaceClock, FaceDateTime}, nil
	case FaceClock:
		return []string{FaceClock}, nil
	case FaceDateTime, "date", "date-time":
		return []string{FaceDateTime}, nil
	default:
		return nil, fmt.Errorf("unknown face %q (want %s, %s or %s)", arg, FaceClock, FaceDateTime, FaceAll)
	}
}

// Validate checks ranges that the renderers rely on.
func (c Config) Validate() error {
	if c.Width < render.MinWidth || c.Width > render.MaxWidth {
		return fmt.Errorf("%w: width must be %d-%d (got %d)", render.ErrInvalidSize, render.MinWidth, render.MaxWidth, c.Width)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	for _, h := range []int{c.Schedule.Start, c.Schedule.End} {
		if h < 0 || h > 23 {
			return fmt.Errorf("night schedule hours must be 0-23 (got %d-%d)", c.Schedule.Start, c.Schedule.End)
		}
	}
	if len(c.Faces) == 0 {
		return fmt.Errorf("no face selected")
	}
	return nil
}
