package entity

// Galpon es una unidad de alojamiento dentro de una finca; lo referencian los
// salvamentos y los ingresos de gallinas.
type Galpon struct {
	IDGalpon     int64
	NombreGalpon string
	IDFinca      int64
	Capacidad    int
	EstadoGalpon bool
}
