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

var _ repository.IngresoRepository = (*IngresoRepo)(nil)

// IngresoRepo implementación del puerto IngresoRepository sobre PostgreSQL.
type IngresoRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewIngresoRepository construye el adaptador de persistencia para ingresos de gallinas.
func NewIngresoRepository(pool *pgxpool.Pool, log zerolog.Logger) *IngresoRepo {
	return &IngresoRepo{
		pool: pool,
		log:  log.With().Str("repo", "ingresos").Logger(),
		upd: UpdateBuilder{
			Tabla:     "ingreso_gallinas",
			ColumnaID: "id_ingreso",
			Columnas: map[string]bool{
				"id_galpon":         true,
				"fecha":             true,
				"id_tipo_gallina":   true,
				"cantidad_gallinas": true,
			},
		},
	}
}

const ingresoDetalleSelect = `
	SELECT id_ingreso, ingreso_gallinas.id_galpon, fecha, ingreso_gallinas.id_tipo_gallina,
	       cantidad_gallinas, nombre_galpon, nombre_tipo_gallina
	FROM ingreso_gallinas
	JOIN galpones ON ingreso_gallinas.id_galpon = galpones.id_galpon
	JOIN tipo_gallinas ON ingreso_gallinas.id_tipo_gallina = tipo_gallinas.id_tipo_gallina`

// Create persiste un nuevo ingreso.
func (r *IngresoRepo) Create(ctx context.Context, i *entity.Ingreso) error {
	query := `
		INSERT INTO ingreso_gallinas (id_galpon, fecha, id_tipo_gallina, cantidad_gallinas)
		VALUES ($1, $2, $3, $4)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, i.IDGalpon, i.Fecha, i.IDTipoGallina, i.CantidadGallinas)
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_galpon", i.IDGalpon).Msg("crear ingreso")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene un ingreso con los nombres referenciados resueltos.
func (r *IngresoRepo) GetByID(ctx context.Context, id int64) (*entity.IngresoDetalle, error) {
	var d entity.IngresoDetalle
	err := r.pool.QueryRow(ctx, ingresoDetalleSelect+` WHERE id_ingreso = $1`, id).Scan(
		&d.IDIngreso, &d.IDGalpon, &d.Fecha, &d.IDTipoGallina,
		&d.CantidadGallinas, &d.NombreGalpon, &d.NombreTipoGallina,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("id_ingreso", id).Msg("obtener ingreso por id")
		return nil, domain.ErrPersistencia
	}
	return &d, nil
}

// List pagina los ingresos por id ascendente.
func (r *IngresoRepo) List(ctx context.Context, limit, skip int) ([]entity.IngresoDetalle, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ingreso_gallinas`).Scan(&total); err != nil {
		r.log.Error().Err(err).Msg("contar ingresos")
		return nil, 0, domain.ErrPersistencia
	}

	rows, err := r.pool.Query(ctx,
		ingresoDetalleSelect+` ORDER BY id_ingreso ASC LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		r.log.Error().Err(err).Msg("listar ingresos")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	var list []entity.IngresoDetalle
	for rows.Next() {
		var d entity.IngresoDetalle
		if err := rows.Scan(
			&d.IDIngreso, &d.IDGalpon, &d.Fecha, &d.IDTipoGallina,
			&d.CantidadGallinas, &d.NombreGalpon, &d.NombreTipoGallina,
		); err != nil {
			r.log.Error().Err(err).Msg("scan ingreso")
			return nil, 0, domain.ErrPersistencia
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar ingresos")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// UpdateByID aplica una actualización parcial sobre el ingreso.
func (r *IngresoRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_ingreso", id).Msg("construir update de ingreso")
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
		r.log.Error().Err(err).Int64("id_ingreso", id).Msg("actualizar ingreso")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
