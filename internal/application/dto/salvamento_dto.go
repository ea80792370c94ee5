package dto

// CreateSalvamentoRequest entrada para registrar un salvamento.
// Fecha en formato YYYY-MM-DD.
type CreateSalvamentoRequest struct {
	IDGalpon         int64  `json:"id_galpon" validate:"required"`
	Fecha            string `json:"fecha" validate:"required"`
	IDTipoGallina    int64  `json:"id_tipo_gallina" validate:"required"`
	CantidadGallinas int    `json:"cantidad_gallinas" validate:"min=0"`
}

// UpdateSalvamentoRequest actualización parcial del salvamento.
type UpdateSalvamentoRequest struct {
	IDGalpon         *int64  `json:"id_galpon"`
	Fecha            *string `json:"fecha"`
	IDTipoGallina    *int64  `json:"id_tipo_gallina"`
	CantidadGallinas *int    `json:"cantidad_gallinas"`
}

// SalvamentoResponse salida con los nombres referenciados resueltos.
type SalvamentoResponse struct {
	IDSalvamento      int64  `json:"id_salvamento"`
	IDGalpon          int64  `json:"id_galpon"`
	Fecha             string `json:"fecha"`
	IDTipoGallina     int64  `json:"id_tipo_gallina"`
	CantidadGallinas  int    `json:"cantidad_gallinas"`
	NombreGalpon      string `json:"nombre_galpon"`
	NombreTipoGallina string `json:"nombre_tipo_gallina"`
}

// SalvamentoListResponse página de salvamentos.
type SalvamentoListResponse struct {
	Total int                  `json:"total"`
	Items []SalvamentoResponse `json:"items"`
}
