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

var _ repository.FincaRepository = (*FincaRepo)(nil)

// FincaRepo implementación del puerto FincaRepository sobre PostgreSQL.
type FincaRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewFincaRepository construye el adaptador de persistencia para fincas.
func NewFincaRepository(pool *pgxpool.Pool, log zerolog.Logger) *FincaRepo {
	return &FincaRepo{
		pool: pool,
		log:  log.With().Str("repo", "fincas").Logger(),
		upd: UpdateBuilder{
			Tabla:     "fincas",
			ColumnaID: "id_finca",
			Columnas: map[string]bool{
				"nombre_finca": true,
				"longitud":     true,
				"latitud":      true,
				"estado_finca": true,
			},
		},
	}
}

// Create persiste una nueva finca.
func (r *FincaRepo) Create(ctx context.Context, f *entity.Finca) error {
	query := `
		INSERT INTO fincas (nombre_finca, longitud, latitud, id_usuario, estado_finca)
		VALUES ($1, $2, $3, $4, $5)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			f.NombreFinca, f.Longitud, f.Latitud, f.IDUsuario, f.EstadoFinca,
		)
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Str("nombre_finca", f.NombreFinca).Msg("crear finca")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene una finca por id.
func (r *FincaRepo) GetByID(ctx context.Context, id int64) (*entity.Finca, error) {
	query := `
		SELECT id_finca, nombre_finca, longitud, latitud, id_usuario, estado_finca
		FROM fincas
		WHERE id_finca = $1`
	var f entity.Finca
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.IDFinca, &f.NombreFinca, &f.Longitud, &f.Latitud, &f.IDUsuario, &f.EstadoFinca,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("id_finca", id).Msg("obtener finca por id")
		return nil, domain.ErrPersistencia
	}
	return &f, nil
}

// List pagina las fincas por id ascendente, con filtro opcional por nombre.
// El total se calcula con una sentencia independiente de la página.
func (r *FincaRepo) List(ctx context.Context, nombre string, limit, skip int) ([]entity.Finca, int, error) {
	countQuery := `SELECT COUNT(*) FROM fincas`
	pageQuery := `
		SELECT id_finca, nombre_finca, longitud, latitud, id_usuario, estado_finca
		FROM fincas`
	var countArgs, pageArgs []any
	if nombre != "" {
		countQuery += ` WHERE ` + filtroNombre("nombre_finca", 1)
		pageQuery += ` WHERE ` + filtroNombre("nombre_finca", 1) + ` ORDER BY id_finca ASC LIMIT $2 OFFSET $3`
		countArgs = []any{nombre}
		pageArgs = []any{nombre, limit, skip}
	} else {
		pageQuery += ` ORDER BY id_finca ASC LIMIT $1 OFFSET $2`
		pageArgs = []any{limit, skip}
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.Error().Err(err).Msg("contar fincas")
		return nil, 0, domain.ErrPersistencia
	}

	rows, err := r.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		r.log.Error().Err(err).Msg("listar fincas")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	var list []entity.Finca
	for rows.Next() {
		var f entity.Finca
		if err := rows.Scan(
			&f.IDFinca, &f.NombreFinca, &f.Longitud, &f.Latitud, &f.IDUsuario, &f.EstadoFinca,
		); err != nil {
			r.log.Error().Err(err).Msg("scan finca")
			return nil, 0, domain.ErrPersistencia
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar fincas")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// UpdateByID aplica una actualización parcial sobre la finca.
func (r *FincaRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_finca", id).Msg("construir update de finca")
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
		r.log.Error().Err(err).Int64("id_finca", id).Msg("actualizar finca")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}

// CambiarEstado activa o desactiva la finca.
func (r *FincaRepo) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	var afectadas int64
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE fincas SET estado_finca = $1 WHERE id_finca = $2`, estado, id)
		afectadas = ct.RowsAffected()
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_finca", id).Msg("cambiar estado de finca")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
