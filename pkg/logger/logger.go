// Package logger centraliza la construcción del zerolog.Logger del API y del CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env     string    // "development" escribe en consola con colores; cualquier otro valor, JSON por línea
	Level   string    // nivel mínimo; vacío o desconocido = info
	Service string    // valor del campo "service"; vacío = sin campo
	Out     io.Writer // nil = os.Stdout
}

// Logger envuelve el zerolog.Logger raíz; cada capa recibe un sublogger vía Component.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger raíz y lo instala también como logger global de zerolog.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}

	ctx := zerolog.New(out).Level(levelOf(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop descarta todo; lo usan los tests y el CLI sin -v.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func levelOf(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component sublogger con "component" fijo (filestore, cfdi, http...).
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}
