package repository

import "context"

// PermisoRepository responde si un rol puede ejecutar una acción sobre un
// módulo. La ausencia de la fila de permiso y un rol o módulo inexistentes
// producen por igual (false, nil): el chequeo no revela cuál de los tres
// valores falló. Un fallo del almacén se propaga como error, nunca se
// traduce a permitir ni a denegar.
type PermisoRepository interface {
	TienePermiso(ctx context.Context, idRol, idModulo int, accion string) (bool, error)
}
