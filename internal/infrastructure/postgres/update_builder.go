package postgres

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adso2925889/Avicola-api/internal/domain"
)

// UpdateBuilder construye la sentencia UPDATE parcial de una tabla a partir
// de los cambios que el cliente sí envió. Cada repositorio instancia el suyo
// con la tabla, la columna identificadora y el conjunto cerrado de columnas
// actualizables; los nombres de columna salen únicamente de ese conjunto,
// nunca de la entrada del cliente.
type UpdateBuilder struct {
	Tabla     string
	ColumnaID string
	Columnas  map[string]bool

	// DescartarTextoSentinela extiende el descarte de centinelas a las
	// cadenas: "" y el placeholder "string" del ejemplo autogenerado del
	// esquema. Solo usuarios lo activa; el resto de entidades descarta
	// únicamente ceros numéricos y false.
	DescartarTextoSentinela bool
}

// Construir filtra los cambios y arma la sentencia parametrizada.
//
// Se descarta todo valor igual al centinela cero de su tipo (0, 0.0, decimal
// cero, false y, con DescartarTextoSentinela, "" y "string"). Consecuencia
// conocida y deliberadamente conservada: por esta vía no se puede poner un
// numérico en 0, un estado en false ni vaciar una cadena.
//
// Si no sobrevive ningún cambio, ok es false y el repositorio no debe emitir
// sentencia alguna. Nunca se construye un UPDATE con cero cláusulas SET; el
// identificador viaja siempre como último argumento posicional.
func (b UpdateBuilder) Construir(id int64, cambios []domain.Cambio) (sentencia string, args []any, ok bool, err error) {
	var sets []string
	for _, c := range cambios {
		if !b.Columnas[c.Columna] {
			return "", nil, false, fmt.Errorf("columna no permitida: %q", c.Columna)
		}
		if b.esSentinela(c.Valor) {
			continue
		}
		args = append(args, c.Valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Columna, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false, nil
	}
	args = append(args, id)
	sentencia = fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		b.Tabla, strings.Join(sets, ", "), b.ColumnaID, len(args),
	)
	return sentencia, args, true, nil
}

func (b UpdateBuilder) esSentinela(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case int:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case float32:
		return x == 0
	case float64:
		return x == 0
	case decimal.Decimal:
		return x.IsZero()
	case string:
		if !b.DescartarTextoSentinela {
			return false
		}
		return x == "" || x == "string"
	}
	return false
}
