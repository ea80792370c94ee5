package repository

import (
	"context"
	"time"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// SalvamentoRepository define el puerto de persistencia para Salvamento.
// Las lecturas devuelven el detalle con los nombres de galpón y tipo de
// gallina ya resueltos.
type SalvamentoRepository interface {
	Create(ctx context.Context, s *entity.Salvamento) error
	GetByID(ctx context.Context, id int64) (*entity.SalvamentoDetalle, error)
	List(ctx context.Context, limit, skip int) ([]entity.SalvamentoDetalle, int, error)
	// ListPorFechas devuelve todos los salvamentos del rango [desde, hasta],
	// ordenados por fecha e id; alimenta el reporte PDF.
	ListPorFechas(ctx context.Context, desde, hasta time.Time) ([]entity.SalvamentoDetalle, error)
	UpdateByID(ctx context.Context, id int64, cambios []domain.Cambio) (bool, error)
}
