package dto

// CreateIngresoRequest entrada para registrar un ingreso de gallinas.
// Fecha en formato YYYY-MM-DD.
type CreateIngresoRequest struct {
	IDGalpon         int64  `json:"id_galpon" validate:"required"`
	Fecha            string `json:"fecha" validate:"required"`
	IDTipoGallina    int64  `json:"id_tipo_gallina" validate:"required"`
	CantidadGallinas int    `json:"cantidad_gallinas" validate:"min=0"`
}

// UpdateIngresoRequest actualización parcial del ingreso.
type UpdateIngresoRequest struct {
	IDGalpon         *int64  `json:"id_galpon"`
	Fecha            *string `json:"fecha"`
	IDTipoGallina    *int64  `json:"id_tipo_gallina"`
	CantidadGallinas *int    `json:"cantidad_gallinas"`
}

// IngresoResponse salida con los nombres referenciados resueltos.
type IngresoResponse struct {
	IDIngreso         int64  `json:"id_ingreso"`
	IDGalpon          int64  `json:"id_galpon"`
	Fecha             string `json:"fecha"`
	IDTipoGallina     int64  `json:"id_tipo_gallina"`
	CantidadGallinas  int    `json:"cantidad_gallinas"`
	NombreGalpon      string `json:"nombre_galpon"`
	NombreTipoGallina string `json:"nombre_tipo_gallina"`
}

// IngresoListResponse página de ingresos.
type IngresoListResponse struct {
	Total int               `json:"total"`
	Items []IngresoResponse `json:"items"`
}
