package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adso2925889/Avicola-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Galpón", "galpon"},
		{"  La Cabaña ", "la cabana"},
		{"FINCA EL ROBLE", "finca el roble"},
		{"ñandú", "nandu"},
		{"", ""},
		{"sin tildes", "sin tildes"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, texto.Normalizar(c.entrada), "entrada: %q", c.entrada)
	}
}
