package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/adso2925889/Avicola-api/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, log.Zerolog().GetLevel())
}

// Un nivel desconocido o vacío no debe tumbar el arranque: cae a info.
func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	for _, nivel := range []string{"", "verboso", "INFO"} {
		log := logger.New(logger.Config{Env: "development", Level: nivel})
		assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel(), "nivel: %q", nivel)
	}
}
