package repository

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
// GetByID y GetByEmail devuelven (nil, nil) cuando no hay fila: ausencia es
// un resultado normal, no un error.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	// List pagina los usuarios que no son administradores, ordenados por id
	// ascendente, y devuelve además el total de filas que cumplen el filtro.
	List(ctx context.Context, limit, skip int) ([]entity.Usuario, int, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
	CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error)
}
