package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

var _ repository.GalponRepository = (*GalponRepo)(nil)

// GalponRepo implementación del puerto GalponRepository sobre PostgreSQL.
type GalponRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewGalponRepository construye el adaptador de persistencia para galpones.
func NewGalponRepository(pool *pgxpool.Pool, log zerolog.Logger) *GalponRepo {
	return &GalponRepo{
		pool: pool,
		log:  log.With().Str("repo", "galpones").Logger(),
		upd: UpdateBuilder{
			Tabla:     "galpones",
			ColumnaID: "id_galpon",
			Columnas: map[string]bool{
				"nombre_galpon": true,
				"id_finca":      true,
				"capacidad":     true,
				"estado_galpon": true,
			},
		},
	}
}

// Create persiste un nuevo galpón.
func (r *GalponRepo) Create(ctx context.Context, g *entity.Galpon) error {
	query := `
		INSERT INTO galpones (nombre_galpon, id_finca, capacidad, estado_galpon)
		VALUES ($1, $2, $3, $4)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, g.NombreGalpon, g.IDFinca, g.Capacidad, g.EstadoGalpon)
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Str("nombre_galpon", g.NombreGalpon).Msg("crear galpón")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene un galpón por id.
func (r *GalponRepo) GetByID(ctx context.Context, id int64) (*entity.Galpon, error) {
	query := `
		SELECT id_galpon, nombre_galpon, id_finca, capacidad, estado_galpon
		FROM galpones
		WHERE id_galpon = $1`
	var g entity.Galpon
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&g.IDGalpon, &g.NombreGalpon, &g.IDFinca, &g.Capacidad, &g.EstadoGalpon,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("id_galpon", id).Msg("obtener galpón por id")
		return nil, domain.ErrPersistencia
	}
	return &g, nil
}

// List pagina los galpones por id ascendente con filtro opcional por nombre.
func (r *GalponRepo) List(ctx context.Context, nombre string, limit, skip int) ([]entity.Galpon, int, error) {
	countQuery := `SELECT COUNT(*) FROM galpones`
	pageQuery := `
		SELECT id_galpon, nombre_galpon, id_finca, capacidad, estado_galpon
		FROM galpones`
	var countArgs, pageArgs []any
	if nombre != "" {
		countQuery += ` WHERE ` + filtroNombre("nombre_galpon", 1)
		pageQuery += ` WHERE ` + filtroNombre("nombre_galpon", 1) + ` ORDER BY id_galpon ASC LIMIT $2 OFFSET $3`
		countArgs = []any{nombre}
		pageArgs = []any{nombre, limit, skip}
	} else {
		pageQuery += ` ORDER BY id_galpon ASC LIMIT $1 OFFSET $2`
		pageArgs = []any{limit, skip}
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.Error().Err(err).Msg("contar galpones")
		return nil, 0, domain.ErrPersistencia
	}

	rows, err := r.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		r.log.Error().Err(err).Msg("listar galpones")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	var list []entity.Galpon
	for rows.Next() {
		var g entity.Galpon
		if err := rows.Scan(&g.IDGalpon, &g.NombreGalpon, &g.IDFinca, &g.Capacidad, &g.EstadoGalpon); err != nil {
			r.log.Error().Err(err).Msg("scan galpón")
			return nil, 0, domain.ErrPersistencia
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar galpones")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// UpdateByID aplica una actualización parcial sobre el galpón.
func (r *GalponRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_galpon", id).Msg("construir update de galpón")
		return false, domain.ErrPersistencia
	}
	if !ok {
		return false, nil
	}

	var afectadas int64
	err = enTx(ctx, r.pool, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, sentencia, args...)
		afectadas = ct.RowsAffected()
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_galpon", id).Msg("actualizar galpón")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}

// CambiarEstado activa o desactiva el galpón.
func (r *GalponRepo) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	var afectadas int64
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE galpones SET estado_galpon = $1 WHERE id_galpon = $2`, estado, id)
		afectadas = ct.RowsAffected()
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_galpon", id).Msg("cambiar estado de galpón")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
