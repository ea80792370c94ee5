package entity

// TipoGallina cataloga las razas que maneja la granja.
type TipoGallina struct {
	IDTipoGallina     int64
	NombreTipoGallina string
	Raza              string
}
