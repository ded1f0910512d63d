package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"io"
	"os"
)

const logLevelFlag = "log-level"

// GetLogFlag return the CLI flag parameter used to setup application log level
func GetLogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  logLevelFlag,
		Usage: "Set the application log level",
		Value: "info",
	}
}

// ConfigureLogger configure the logger using given log level (read from cli context)
func ConfigureLogger(ctx *cli.Context) {
	SetupLogger(os.Stderr, ctx.String(logLevelFlag))
}

// SetupLogger make the global logger write human friendly output to w
// unknown levels fallback to info
func SetupLogger(w io.Writer, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	zerolog.SetGlobalLevel(ParseLevel(level))

	log.Debug().Stringer("lvl", zerolog.GlobalLevel()).Msg("Setting log level")
}

// ParseLevel return the zerolog level matching given name, or info if invalid
func ParseLevel(level string) zerolog.Level {
	// ParseLevel("") succeed with NoLevel, which would log everything
	if level == "" {
		return zerolog.InfoLevel
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}
