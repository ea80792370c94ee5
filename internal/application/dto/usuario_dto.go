package dto

// CreateUsuarioRequest entrada para crear un usuario. El campo pass_hash
// llega en texto plano (así lo nombra el esquema histórico) y se hashea con
// bcrypt en el caso de uso antes de persistir.
type CreateUsuarioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=3,max=100"`
	Documento string `json:"documento" validate:"required,max=20"`
	IDRol     int    `json:"id_rol" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	PassHash  string `json:"pass_hash" validate:"required,min=8"`
	Telefono  string `json:"telefono" validate:"omitempty,max=20"`
	Estado    bool   `json:"estado"`
}

// UpdateUsuarioRequest actualización parcial: todo campo es opcional y un
// campo ausente o null no se toca.
type UpdateUsuarioRequest struct {
	Nombre    *string `json:"nombre"`
	Documento *string `json:"documento"`
	IDRol     *int    `json:"id_rol"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	IDUsuario int64  `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	IDRol     int    `json:"id_rol"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Estado    bool   `json:"estado"`
	NombreRol string `json:"nombre_rol"`
}

// UsuarioListResponse página de usuarios con el total de filas del filtro.
type UsuarioListResponse struct {
	Total int               `json:"total"`
	Items []UsuarioResponse `json:"items"`
}

// CambiarEstadoRequest entrada para activar/desactivar una entidad.
type CambiarEstadoRequest struct {
	Estado bool `json:"estado"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
