// Package texto normaliza cadenas para filtros de búsqueda: los nombres de
// fincas y galpones llegan con tildes ("Galpón", "La Cabaña") y el filtro
// debe encontrarlos aunque el cliente escriba sin ellas.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var sinAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar devuelve la cadena en minúsculas, sin espacios sobrantes y sin
// marcas diacríticas.
func Normalizar(s string) string {
	limpio, _, err := transform.String(sinAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}
