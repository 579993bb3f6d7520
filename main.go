// nowscreen renders the now-playing screen saver images for a Squeezebox:
// an analog Swiss railway clock and a digital date/time card.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/squeezetools/nowscreen/internal/app"
	"github.com/squeezetools/nowscreen/internal/config"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	cfg, envErr := config.DefaultFromEnv()

	nightMode := flag.Bool("night-mode", cfg.ForceNight, "force the night palette regardless of the time (also "+config.EnvNightMode+")")
	outputDir := flag.String("output-dir", cfg.OutputDir, "`directory` the PNG files are written to")
	width := flag.Int("width", cfg.Width, "output width in pixels, height follows the face's aspect ratio")
	fontPath := flag.String("font", cfg.FontPath, "TrueType/OpenType `file` for the date/time card, empty uses the embedded Go font")
	lang := flag.String("lang", cfg.Lang, "language for weekday and month names (en, fr, de, nl)")
	nightStart := flag.Int("night-start", cfg.Schedule.Start, "hour the night palette starts")
	nightEnd := flag.Int("night-end", cfg.Schedule.End, "hour the night palette ends")
	fbPath := flag.String("fb", cfg.Framebuffer, "also show the first selected face on this framebuffer `device`, e.g. /dev/fb0")
	fbGray := flag.Bool("fb-gray", cfg.Gray, "framebuffer is 8 bit grayscale")
	stdioLog := flag.String("stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this `file`")
	cli.ArgsHelp = " [clock|datetime|all]"
	cli.MinArgs = 0
	cli.MaxArgs = 1
	cli.Main()

	// Best-effort: when run from cron or the player's init scripts there is no
	// console, so keep crashes diagnosable.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}
	if envErr != nil {
		return log.FErrf("Invalid environment: %v", envErr)
	}

	faces, err := config.ParseFaces(flag.Arg(0))
	if err != nil {
		return log.FErrf("%v", err)
	}
	cfg.Faces = faces
	cfg.ForceNight = *nightMode
	cfg.OutputDir = *outputDir
	cfg.Width = *width
	cfg.FontPath = *fontPath
	cfg.Lang = *lang
	cfg.Schedule.Start = *nightStart
	cfg.Schedule.End = *nightEnd
	cfg.Framebuffer = *fbPath
	cfg.Gray = *fbGray
	cfg.StdioLog = *stdioLog

	a, err := app.New(cfg, app.FortioLogger{})
	if err != nil {
		return log.FErrf("Invalid configuration: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		return log.FErrf("Rendering failed: %v", err)
	}
	return 0
}
