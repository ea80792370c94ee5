package postgres

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/adso2925889/Avicola-api/internal/domain"
)

// Una columna fuera del conjunto permitido debe reportarse como error de
// persistencia sin tocar la base: el pool nulo garantiza que ninguna
// sentencia llegó a ejecutarse.
func TestFincaRepoUpdateByID_ColumnaDesconocida(t *testing.T) {
	repo := NewFincaRepository(nil, zerolog.Nop())

	changed, err := repo.UpdateByID(context.Background(), 1, []domain.Cambio{
		{Columna: "id_finca; DROP TABLE fincas", Valor: "x"},
	})
	assert.False(t, changed)
	assert.ErrorIs(t, err, domain.ErrPersistencia)
}
