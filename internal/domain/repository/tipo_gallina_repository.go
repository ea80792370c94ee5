package repository

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// TipoGallinaRepository define el puerto de persistencia para TipoGallina.
type TipoGallinaRepository interface {
	Create(ctx context.Context, t *entity.TipoGallina) error
	GetByID(ctx context.Context, id int64) (*entity.TipoGallina, error)
	List(ctx context.Context, limit, skip int) ([]entity.TipoGallina, int, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
}
