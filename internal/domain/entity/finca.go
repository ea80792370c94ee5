package entity

import "github.com/shopspring/decimal"

// Finca es una granja registrada por un usuario. Las coordenadas se guardan
// como NUMERIC(9,6) para no arrastrar ruido binario de float64.
type Finca struct {
	IDFinca     int64
	NombreFinca string
	Longitud    decimal.Decimal
	Latitud     decimal.Decimal
	IDUsuario   int64
	EstadoFinca bool
}
