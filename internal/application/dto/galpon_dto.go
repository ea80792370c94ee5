package dto

// CreateGalponRequest entrada para crear un galpón.
type CreateGalponRequest struct {
	NombreGalpon string `json:"nombre_galpon" validate:"required,min=3,max=100"`
	IDFinca      int64  `json:"id_finca" validate:"required"`
	Capacidad    int    `json:"capacidad" validate:"min=0"`
	EstadoGalpon bool   `json:"estado_galpon"`
}

// UpdateGalponRequest actualización parcial del galpón.
type UpdateGalponRequest struct {
	NombreGalpon *string `json:"nombre_galpon"`
	IDFinca      *int64  `json:"id_finca"`
	Capacidad    *int    `json:"capacidad"`
	EstadoGalpon *bool   `json:"estado_galpon"`
}

// GalponResponse salida de un galpón.
type GalponResponse struct {
	IDGalpon     int64  `json:"id_galpon"`
	NombreGalpon string `json:"nombre_galpon"`
	IDFinca      int64  `json:"id_finca"`
	Capacidad    int    `json:"capacidad"`
	EstadoGalpon bool   `json:"estado_galpon"`
}

// GalponListResponse página de galpones.
type GalponListResponse struct {
	Total int              `json:"total"`
	Items []GalponResponse `json:"items"`
}
