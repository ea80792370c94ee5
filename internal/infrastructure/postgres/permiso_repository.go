package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

// PermisoRepo implementación del puerto PermisoRepository sobre PostgreSQL.
type PermisoRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewPermisoRepository construye el adaptador de consulta de permisos.
func NewPermisoRepository(pool *pgxpool.Pool, log zerolog.Logger) *PermisoRepo {
	return &PermisoRepo{pool: pool, log: log.With().Str("repo", "permisos").Logger()}
}

// TienePermiso consulta la existencia del permiso (rol, módulo, acción).
// Un rol o módulo inexistente simplemente no tiene filas: (false, nil).
func (r *PermisoRepo) TienePermiso(ctx context.Context, idRol, idModulo int, accion string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM permisos
			WHERE id_rol = $1 AND id_modulo = $2 AND accion = $3
		)`
	var permitido bool
	if err := r.pool.QueryRow(ctx, query, idRol, idModulo, accion).Scan(&permitido); err != nil {
		r.log.Error().Err(err).
			Int("id_rol", idRol).
			Int("id_modulo", idModulo).
			Str("accion", accion).
			Msg("verificar permiso")
		return false, domain.ErrPersistencia
	}
	return permitido, nil
}
