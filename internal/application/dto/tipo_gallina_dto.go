package dto

// CreateTipoGallinaRequest entrada para crear un tipo de gallina.
type CreateTipoGallinaRequest struct {
	NombreTipoGallina string `json:"nombre_tipo_gallina" validate:"required,min=3,max=100"`
	Raza              string `json:"raza" validate:"required,max=100"`
}

// UpdateTipoGallinaRequest actualización parcial del tipo de gallina.
type UpdateTipoGallinaRequest struct {
	NombreTipoGallina *string `json:"nombre_tipo_gallina"`
	Raza              *string `json:"raza"`
}

// TipoGallinaResponse salida de un tipo de gallina.
type TipoGallinaResponse struct {
	IDTipoGallina     int64  `json:"id_tipo_gallina"`
	NombreTipoGallina string `json:"nombre_tipo_gallina"`
	Raza              string `json:"raza"`
}

// TipoGallinaListResponse página de tipos de gallina.
type TipoGallinaListResponse struct {
	Total int                   `json:"total"`
	Items []TipoGallinaResponse `json:"items"`
}
