package entity

import "time"

// Salvamento registra el rescate de gallinas hacia un galpón.
// CantidadGallinas nunca es negativa.
type Salvamento struct {
	IDSalvamento     int64
	IDGalpon         int64
	Fecha            time.Time
	IDTipoGallina    int64
	CantidadGallinas int
}

// SalvamentoDetalle es la vista de lectura: el registro más los nombres de
// las tablas referenciadas, para mostrar sin una segunda consulta.
type SalvamentoDetalle struct {
	Salvamento
	NombreGalpon      string
	NombreTipoGallina string
}
