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

var _ repository.TipoGallinaRepository = (*TipoGallinaRepo)(nil)

// TipoGallinaRepo implementación del puerto TipoGallinaRepository sobre PostgreSQL.
type TipoGallinaRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewTipoGallinaRepository construye el adaptador de persistencia para tipos de gallina.
func NewTipoGallinaRepository(pool *pgxpool.Pool, log zerolog.Logger) *TipoGallinaRepo {
	return &TipoGallinaRepo{
		pool: pool,
		log:  log.With().Str("repo", "tipo_gallinas").Logger(),
		upd: UpdateBuilder{
			Tabla:     "tipo_gallinas",
			ColumnaID: "id_tipo_gallina",
			Columnas: map[string]bool{
				"nombre_tipo_gallina": true,
				"raza":                true,
			},
		},
	}
}

// Create persiste un nuevo tipo de gallina.
func (r *TipoGallinaRepo) Create(ctx context.Context, t *entity.TipoGallina) error {
	query := `
		INSERT INTO tipo_gallinas (nombre_tipo_gallina, raza)
		VALUES ($1, $2)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, t.NombreTipoGallina, t.Raza)
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Str("nombre", t.NombreTipoGallina).Msg("crear tipo de gallina")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene un tipo de gallina por id.
func (r *TipoGallinaRepo) GetByID(ctx context.Context, id int64) (*entity.TipoGallina, error) {
	query := `
		SELECT id_tipo_gallina, nombre_tipo_gallina, raza
		FROM tipo_gallinas
		WHERE id_tipo_gallina = $1`
	var t entity.TipoGallina
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.IDTipoGallina, &t.NombreTipoGallina, &t.Raza)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("id_tipo_gallina", id).Msg("obtener tipo de gallina por id")
		return nil, domain.ErrPersistencia
	}
	return &t, nil
}

// List pagina los tipos de gallina por id ascendente.
func (r *TipoGallinaRepo) List(ctx context.Context, limit, skip int) ([]entity.TipoGallina, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tipo_gallinas`).Scan(&total); err != nil {
		r.log.Error().Err(err).Msg("contar tipos de gallina")
		return nil, 0, domain.ErrPersistencia
	}

	query := `
		SELECT id_tipo_gallina, nombre_tipo_gallina, raza
		FROM tipo_gallinas
		ORDER BY id_tipo_gallina ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		r.log.Error().Err(err).Msg("listar tipos de gallina")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	var list []entity.TipoGallina
	for rows.Next() {
		var t entity.TipoGallina
		if err := rows.Scan(&t.IDTipoGallina, &t.NombreTipoGallina, &t.Raza); err != nil {
			r.log.Error().Err(err).Msg("scan tipo de gallina")
			return nil, 0, domain.ErrPersistencia
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar tipos de gallina")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// UpdateByID aplica una actualización parcial sobre el tipo de gallina.
func (r *TipoGallinaRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_tipo_gallina", id).Msg("construir update de tipo de gallina")
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
		r.log.Error().Err(err).Int64("id_tipo_gallina", id).Msg("actualizar tipo de gallina")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
