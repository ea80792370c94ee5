package entity

// Acciones válidas sobre un módulo. La existencia de la fila
// (rol, módulo, acción) en permisos es la única señal de autorización.
const (
	AccionInsertar    = "insertar"
	AccionSeleccionar = "seleccionar"
	AccionActualizar  = "actualizar"
	AccionEliminar    = "eliminar"
)

// Rol agrupa permisos; los usuarios referencian exactamente uno.
type Rol struct {
	IDRol     int
	NombreRol string
}

// Modulo nombra un área funcional (usuarios, fincas, salvamento, ...).
type Modulo struct {
	IDModulo     int
	NombreModulo string
}

// Permiso concede una acción de un módulo a un rol.
type Permiso struct {
	IDPermiso int64
	IDRol     int
	IDModulo  int
	Accion    string
}
