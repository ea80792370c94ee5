package repository

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// IngresoRepository define el puerto de persistencia para Ingreso.
type IngresoRepository interface {
	Create(ctx context.Context, i *entity.Ingreso) error
	GetByID(ctx context.Context, id int64) (*entity.IngresoDetalle, error)
	List(ctx context.Context, limit, skip int) ([]entity.IngresoDetalle, int, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
}
