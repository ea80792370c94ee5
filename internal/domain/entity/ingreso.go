package entity

import "time"

// Ingreso registra la entrada de gallinas compradas a un galpón.
type Ingreso struct {
	IDIngreso        int64
	IDGalpon         int64
	Fecha            time.Time
	IDTipoGallina    int64
	CantidadGallinas int
}

// IngresoDetalle es la vista de lectura con los nombres referenciados.
type IngresoDetalle struct {
	Ingreso
	NombreGalpon      string
	NombreTipoGallina string
}
