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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	upd  UpdateBuilder
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool, log zerolog.Logger) *UsuarioRepo {
	return &UsuarioRepo{
		pool: pool,
		log:  log.With().Str("repo", "usuarios").Logger(),
		upd: UpdateBuilder{
			Tabla:     "usuarios",
			ColumnaID: "id_usuario",
			Columnas: map[string]bool{
				"nombre":    true,
				"documento": true,
				"id_rol":    true,
				"email":     true,
				"telefono":  true,
			},
			DescartarTextoSentinela: true,
		},
	}
}

// Create persiste un nuevo usuario con la contraseña ya hasheada.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, documento, id_rol, email, pass_hash, telefono, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			u.Nombre, u.Documento, u.IDRol, u.Email, u.PassHash, u.Telefono, u.Estado,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaExiste
		}
		r.log.Error().Err(err).Str("email", u.Email).Msg("crear usuario")
		return domain.ErrPersistencia
	}
	return nil
}

// GetByID obtiene un usuario por id con el nombre del rol resuelto.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, documento, usuarios.id_rol, email, pass_hash, telefono, estado, nombre_rol
		FROM usuarios
		JOIN roles ON usuarios.id_rol = roles.id_rol
		WHERE id_usuario = $1`
	u, err := r.scanUno(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error().Err(err).Int64("id_usuario", id).Msg("obtener usuario por id")
		return nil, domain.ErrPersistencia
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email; lo usa el login.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, documento, usuarios.id_rol, email, pass_hash, telefono, estado, nombre_rol
		FROM usuarios
		JOIN roles ON usuarios.id_rol = roles.id_rol
		WHERE email = $1`
	u, err := r.scanUno(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		r.log.Error().Err(err).Str("email", email).Msg("obtener usuario por email")
		return nil, domain.ErrPersistencia
	}
	return u, nil
}

func (r *UsuarioRepo) scanUno(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.IDUsuario, &u.Nombre, &u.Documento, &u.IDRol,
		&u.Email, &u.PassHash, &u.Telefono, &u.Estado, &u.NombreRol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// List pagina los usuarios excluyendo los roles administrativos (1 y 2),
// igual que la pantalla de administración que lo consume. El COUNT y la
// página son sentencias independientes.
func (r *UsuarioRepo) List(ctx context.Context, limit, skip int) ([]entity.Usuario, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuarios WHERE id_rol NOT IN (1, 2)`,
	).Scan(&total)
	if err != nil {
		r.log.Error().Err(err).Msg("contar usuarios")
		return nil, 0, domain.ErrPersistencia
	}

	query := `
		SELECT id_usuario, nombre, documento, usuarios.id_rol, email, pass_hash, telefono, estado, nombre_rol
		FROM usuarios
		JOIN roles ON usuarios.id_rol = roles.id_rol
		WHERE usuarios.id_rol NOT IN (1, 2)
		ORDER BY id_usuario ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		r.log.Error().Err(err).Msg("listar usuarios")
		return nil, 0, domain.ErrPersistencia
	}
	defer rows.Close()

	var list []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.IDUsuario, &u.Nombre, &u.Documento, &u.IDRol,
			&u.Email, &u.PassHash, &u.Telefono, &u.Estado, &u.NombreRol,
		); err != nil {
			r.log.Error().Err(err).Msg("scan usuario")
			return nil, 0, domain.ErrPersistencia
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("listar usuarios")
		return nil, 0, domain.ErrPersistencia
	}
	return list, total, nil
}

// UpdateByID aplica una actualización parcial. Sin cambios efectivos no se
// emite sentencia y se responde (false, nil).
func (r *UsuarioRepo) UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	sentencia, args, ok, err := r.upd.Construir(id, cambios)
	if err != nil {
		r.log.Error().Err(err).Int64("id_usuario", id).Msg("construir update de usuario")
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
		if isUniqueViolation(err) {
			return false, domain.ErrEmailYaExiste
		}
		r.log.Error().Err(err).Int64("id_usuario", id).Msg("actualizar usuario")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}

// CambiarEstado activa o desactiva el usuario sin pasar por el builder: el
// estado siempre viene explícito y nunca se omite.
func (r *UsuarioRepo) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	var afectadas int64
	err := enTx(ctx, r.pool, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE usuarios SET estado = $1 WHERE id_usuario = $2`, estado, id)
		afectadas = ct.RowsAffected()
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("id_usuario", id).Msg("cambiar estado de usuario")
		return false, domain.ErrPersistencia
	}
	return afectadas > 0, nil
}
