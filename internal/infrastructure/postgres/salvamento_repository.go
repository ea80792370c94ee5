package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

var _ repository.SalvamentoRepository = (*SalvamentoRepo)(nil)

// SalvamentoRepo implementación del puerto SalvamentoRepository sobre PostgreSQL.
type SalvamentoRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewSalvamentoRepository construye el adaptador de persistencia para salvamentos.
func NewSalvamentoRepository(pool *pgxpool.Pool, log zerolog.Logger) *SalvamentoRepo {
	return &SalvamentoRepo{
		pool: pool,
		log:  log.With().Str("repo", "salvamento").Logger(),
		upd: UpdateBuilder{
			Tabla:     "salvamento",
			ColumnaID: "id_salvamento",
			Columnas: map[string]bool{
				"id_galpon":         true,
				"fecha":             true,
				"id_tipo_gallina":   true,
				"cantidad_gallinas": true,
			},
		},
	}
}

const salvamentoDetalleSelect = `
	SELECT id_salvamento, salvamento.id_galpon, fecha, salvamento.id_tipo_gallina,
	       cantidad_gallinas, nombre_galpon, nombre_tipo_gallina
	FROM salvamento
	JOIN galpones ON salvamento.id_galpon = galpones.id_galpon
	JOIN tipo_gallinas ON salvamento.id_tipo_gallina = tipo_gallinas.id_tipo_gallina`

// Create persiste un nuevo salvamento.
func (r *SalvamentoRepo) Create(ctx context.Context, s *entity.Salvamento) error {
	query := `
		INSERT INTO salvamento (id_galpon, fecha, id_tipo_gallina, cantidad_gallinas)
		VALUES ($1, $2, $3, $4)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, s.IDGalpon, s.Fecha, s.IDTipoGallina, s.CantidadGallinas)
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_galpon", s.IDGalpon).Msg("crear salvamento")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene un salvamento con los nombres de galpón y tipo resueltos.
func (r *SalvamentoRepo) GetByID(ctx context.Context, id int64) (*entity.SalvamentoDetalle, error) {
	var d entity.SalvamentoDetalle
	err := r.pool.QueryRow(ctx, salvamentoDetalleSelect+` WHERE id_salvamento = $1`, id).Scan(
		&d.IDSalvamento, &d.IDGalpon, &d.Fecha, &d.IDTipoGallina,
		&d.CantidadGallinas, &d.NombreGalpon, &d.NombreTipoGallina,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("id_salvamento", id).Msg("obtener salvamento por id")
		return nil, domain.ErrPersistencia
	}
	return &d, nil
}

// List pagina los salvamentos por id ascendente con los nombres resueltos.
func (r *SalvamentoRepo) List(ctx context.Context, limit, skip int) ([]entity.SalvamentoDetalle, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM salvamento`).Scan(&total); err != nil {
		r.log.Error().Err(err).Msg("contar salvamentos")
		return nil, 0, domain.ErrPersistencia
	}

	rows, err := r.pool.Query(ctx,
		salvamentoDetalleSelect+` ORDER BY id_salvamento ASC LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		r.log.Error().Err(err).Msg("listar salvamentos")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	list, err := r.scanDetalles(rows)
	if err != nil {
		r.log.Error().Err(err).Msg("listar salvamentos")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// ListPorFechas devuelve los salvamentos del rango para el reporte PDF.
func (r *SalvamentoRepo) ListPorFechas(ctx context.Context, desde, hasta time.Time) ([]entity.SalvamentoDetalle, error) {
	rows, err := r.pool.Query(ctx,
		salvamentoDetalleSelect+` WHERE fecha BETWEEN $1 AND $2 ORDER BY fecha ASC, id_salvamento ASC`,
		desde, hasta)
	if err != nil {
		r.log.Error().Err(err).Msg("listar salvamentos por fechas")
		return nil, domain.ErrPersistencia
	}
	defer rows.Close()

	list, err := r.scanDetalles(rows)
	if err != nil {
		r.log.Error().Err(err).Msg("listar salvamentos por fechas")
		return nil, domain.ErrPersistencia
	}
	return list, nil
}

func (r *SalvamentoRepo) scanDetalles(rows pgx.Rows) ([]entity.SalvamentoDetalle, error) {
	var list []entity.SalvamentoDetalle
	for rows.Next() {
		var d entity.SalvamentoDetalle
		if err := rows.Scan(
			&d.IDSalvamento, &d.IDGalpon, &d.Fecha, &d.IDTipoGallina,
			&d.CantidadGallinas, &d.NombreGalpon, &d.NombreTipoGallina,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// UpdateByID aplica una actualización parcial sobre el salvamento.
func (r *SalvamentoRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_salvamento", id).Msg("construir update de salvamento")
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
		r.log.Error().Err(err).Int64("id_salvamento", id).Msg("actualizar salvamento")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
