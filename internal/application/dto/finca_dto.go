package dto

import "github.com/shopspring/decimal"

// CreateFincaRequest entrada para crear una finca. Todos los campos son
// obligatorios: no existe creación parcial.
type CreateFincaRequest struct {
	NombreFinca string          `json:"nombre_finca" validate:"required,min=3,max=100"`
	Longitud    decimal.Decimal `json:"longitud"`
	Latitud     decimal.Decimal `json:"latitud"`
	IDUsuario   int64           `json:"id_usuario" validate:"required"`
	EstadoFinca bool            `json:"estado_finca"`
}

// UpdateFincaRequest actualización parcial de la finca.
type UpdateFincaRequest struct {
	NombreFinca *string          `json:"nombre_finca"`
	Longitud    *decimal.Decimal `json:"longitud"`
	Latitud     *decimal.Decimal `json:"latitud"`
	EstadoFinca *bool            `json:"estado_finca"`
}

// FincaResponse salida de una finca.
type FincaResponse struct {
	IDFinca     int64           `json:"id_finca"`
	NombreFinca string          `json:"nombre_finca"`
	Longitud    decimal.Decimal `json:"longitud"`
	Latitud     decimal.Decimal `json:"latitud"`
	IDUsuario   int64           `json:"id_usuario"`
	EstadoFinca bool            `json:"estado_finca"`
}

// FincaListResponse página de fincas con el total del filtro.
type FincaListResponse struct {
	Total int             `json:"total"`
	Items []FincaResponse `json:"items"`
}
