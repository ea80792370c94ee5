package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/internal/domain"
)

func builderFincas() UpdateBuilder {
	return UpdateBuilder{
		Tabla:     "fincas",
		ColumnaID: "id_finca",
		Columnas: map[string]bool{
			"nombre_finca": true,
			"longitud":     true,
			"latitud":      true,
			"estado_finca": true,
		},
	}
}

func builderUsuarios() UpdateBuilder {
	return UpdateBuilder{
		Tabla:     "usuarios",
		ColumnaID: "id_usuario",
		Columnas: map[string]bool{
			"nombre":   true,
			"email":    true,
			"telefono": true,
		},
		DescartarTextoSentinela: true,
	}
}

// Sin cambios no debe emitirse sentencia alguna.
func TestConstruir_SinCambios_NoEmiteSentencia(t *testing.T) {
	b := builderFincas()
	sentencia, args, ok, err := b.Construir(7, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sentencia)
	assert.Nil(t, args)
}

// Un solo campo produce un SET de una sola cláusula con el id al final.
func TestConstruir_UnCampo(t *testing.T) {
	b := builderFincas()
	sentencia, args, ok, err := b.Construir(7, []domain.Cambio{
		{Columna: "nombre_finca", Valor: "La Esperanza"},
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UPDATE fincas SET nombre_finca = $1 WHERE id_finca = $2", sentencia)
	assert.Equal(t, []any{"La Esperanza", int64(7)}, args)
}

// Varios campos conservan el orden de entrada y numeran los argumentos
// consecutivamente; el id siempre viaja como último argumento.
func TestConstruir_VariosCampos_OrdenEstable(t *testing.T) {
	b := builderFincas()
	lon := decimal.RequireFromString("-75.5")
	sentencia, args, ok, err := b.Construir(3, []domain.Cambio{
		{Columna: "longitud", Valor: lon},
		{Columna: "nombre_finca", Valor: "El Roble"},
		{Columna: "estado_finca", Valor: true},
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t,
		"UPDATE fincas SET longitud = $1, nombre_finca = $2, estado_finca = $3 WHERE id_finca = $4",
		sentencia)
	assert.Equal(t, []any{lon, "El Roble", true, int64(3)}, args)
}

// Los centinelas cero se descartan: 0, 0.0, decimal cero y false.
func TestConstruir_DescartaCentinelasCero(t *testing.T) {
	b := builderFincas()
	sentencia, args, ok, err := b.Construir(3, []domain.Cambio{
		{Columna: "longitud", Valor: decimal.Zero},
		{Columna: "latitud", Valor: float64(0)},
		{Columna: "estado_finca", Valor: false},
		{Columna: "nombre_finca", Valor: "Bellavista"},
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UPDATE fincas SET nombre_finca = $1 WHERE id_finca = $2", sentencia)
	assert.Equal(t, []any{"Bellavista", int64(3)}, args)
}

// Si todos los valores son centinela el resultado es el mismo que sin cambios.
func TestConstruir_SoloCentinelas_NoEmiteSentencia(t *testing.T) {
	b := builderFincas()
	_, _, ok, err := b.Construir(3, []domain.Cambio{
		{Columna: "longitud", Valor: decimal.Zero},
		{Columna: "estado_finca", Valor: false},
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

// Con DescartarTextoSentinela la cadena vacía y el placeholder "string"
// también se descartan; sin el flag las cadenas pasan siempre.
func TestConstruir_TextoSentinela(t *testing.T) {
	usuarios := builderUsuarios()
	_, _, ok, err := usuarios.Construir(1, []domain.Cambio{
		{Columna: "nombre", Valor: ""},
		{Columna: "telefono", Valor: "string"},
	})
	require.NoError(t, err)
	assert.False(t, ok, "cadenas centinela deben descartarse en usuarios")

	fincas := builderFincas()
	sentencia, args, ok, err := fincas.Construir(1, []domain.Cambio{
		{Columna: "nombre_finca", Valor: ""},
	})
	require.NoError(t, err)
	require.True(t, ok, "sin el flag la cadena vacía es un valor legítimo")
	assert.Equal(t, "UPDATE fincas SET nombre_finca = $1 WHERE id_finca = $2", sentencia)
	assert.Equal(t, []any{"", int64(1)}, args)
}

// Una columna fuera del conjunto permitido es un error, nunca una sentencia.
func TestConstruir_ColumnaNoPermitida(t *testing.T) {
	b := builderFincas()
	sentencia, _, ok, err := b.Construir(1, []domain.Cambio{
		{Columna: "id_finca; DROP TABLE fincas", Valor: "x"},
	})
	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, sentencia)
}

// Construir es puro: la misma entrada produce la misma salida.
func TestConstruir_Idempotente(t *testing.T) {
	b := builderUsuarios()
	cambios := []domain.Cambio{
		{Columna: "nombre", Valor: "Ana"},
		{Columna: "email", Valor: "ana@example.com"},
	}
	s1, a1, ok1, err1 := b.Construir(9, cambios)
	s2, a2, ok2, err2 := b.Construir(9, cambios)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, ok1, ok2)
}
