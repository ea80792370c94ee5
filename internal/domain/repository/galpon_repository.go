package repository

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// GalponRepository define el puerto de persistencia para Galpon.
type GalponRepository interface {
	Create(ctx context.Context, g *entity.Galpon) error
	GetByID(ctx context.Context, id int64) (*entity.Galpon, error)
	List(ctx context.Context, nombre string, limit, skip int) ([]entity.Galpon, int, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
	CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error)
}
