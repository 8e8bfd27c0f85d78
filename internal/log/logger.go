package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/thirdweb-dev/grants-insight/configs"
)

func InitLogger() {
	// overrides zerolog global logger
	log.Logger = NewLogger("grants-insight")
}

func NewLogger(name string) zerolog.Logger {
	return newLogger(name, os.Stderr, config.Cfg.Log)
}

func newLogger(name string, out io.Writer, cfg config.LogConfig) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Prettify {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).With().Timestamp().Str("component", name).Caller().Logger()
}
