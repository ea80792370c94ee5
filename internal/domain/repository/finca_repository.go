package repository

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// FincaRepository define el puerto de persistencia para Finca.
type FincaRepository interface {
	Create(ctx context.Context, f *entity.Finca) error
	GetByID(ctx context.Context, id int64) (*entity.Finca, error)
	// List pagina ordenando por id_finca ascendente; nombre filtra por
	// coincidencia parcial cuando no está vacío. Devuelve (items, total).
	List(ctx context.Context, nombre string, limit, skip int) ([]entity.Finca, int, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
	CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error)
}
