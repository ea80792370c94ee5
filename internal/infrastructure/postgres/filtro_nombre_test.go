package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/pkg/texto"
)

// El filtro de nombre debe plegar la columna del lado SQL: minúsculas y sin
// tildes, igual que llega el patrón desde la capa de aplicación.
func TestFiltroNombre_PliegaColumna(t *testing.T) {
	got := filtroNombre("nombre_finca", 1)
	assert.Equal(t,
		"translate(lower(nombre_finca), 'áéíóúüñ', 'aeiouun') LIKE '%' || $1 || '%'",
		got)
}

// El mapeo de translate() debe producir exactamente lo mismo que
// texto.Normalizar, o un nombre guardado con tildes no casaría con el
// filtro ya normalizado ("la cabana" debe encontrar "La Cabaña").
func TestFiltroNombre_PlegadoCoincideConNormalizar(t *testing.T) {
	conTilde := []rune(letrasConTilde)
	sinTilde := []rune(letrasSinTilde)
	require.Equal(t, len(conTilde), len(sinTilde),
		"cada letra con tilde necesita su equivalente plano")

	for i, r := range conTilde {
		assert.Equal(t, string(sinTilde[i]), texto.Normalizar(string(r)),
			"la letra %q debe plegarse igual en SQL y en la aplicación", r)
	}
}
