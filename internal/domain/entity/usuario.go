package entity

// Usuario representa una persona con acceso al sistema. Nunca se borra de
// forma física: Estado en false lo deja inactivo.
type Usuario struct {
	IDUsuario int64
	Nombre    string
	Documento string
	IDRol     int
	Email     string
	PassHash  string // hash bcrypt, nunca el texto plano después de persistir
	Telefono  string
	Estado    bool
	NombreRol string // denormalizado desde roles en las lecturas
}
