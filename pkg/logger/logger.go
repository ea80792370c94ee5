// Package logger construye el zerolog raíz de la aplicación. Los
// repositorios derivan subloggers con campos fijos a partir de Zerolog().
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger raíz.
type Config struct {
	Env   string // development -> consola legible; cualquier otro -> JSON
	Level string // trace, debug, info, warn, error; inválido cae a info
}

// Logger expone los niveles que la aplicación usa sobre el zerolog raíz.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y redirige el logger global de zerolog para las
// librerías que lo usen.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	nivel, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(nivel).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger raíz para derivar subloggers por componente
// (los repositorios fijan su campo "repo" sobre él).
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
