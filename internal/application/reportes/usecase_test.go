package reportes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/internal/application/reportes"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

type salvamentoRepoFijo struct {
	registros []entity.SalvamentoDetalle
	gotDesde  time.Time
	gotHasta  time.Time
}

func (r *salvamentoRepoFijo) Create(context.Context, *entity.Salvamento) error { return nil }

func (r *salvamentoRepoFijo) GetByID(context.Context, int64) (*entity.SalvamentoDetalle, error) {
	return nil, nil
}

func (r *salvamentoRepoFijo) List(context.Context, int, int) ([]entity.SalvamentoDetalle, int, error) {
	return nil, 0, nil
}

func (r *salvamentoRepoFijo) ListPorFechas(_ context.Context, desde, hasta time.Time) ([]entity.SalvamentoDetalle, error) {
	r.gotDesde = desde
	r.gotHasta = hasta
	return r.registros, nil
}

func (r *salvamentoRepoFijo) UpdateByID(context.Context, int64, []domain.Cambio) (bool, error) {
	return false, nil
}

type generadorSpy struct {
	llamado      bool
	gotRegistros []entity.SalvamentoDetalle
}

func (g *generadorSpy) GenerarReporteSalvamentos(_ context.Context, _, _ time.Time, registros []entity.SalvamentoDetalle) ([]byte, error) {
	g.llamado = true
	g.gotRegistros = registros
	return []byte("%PDF-fake"), nil
}

func TestReporteSalvamentos_Generar(t *testing.T) {
	repo := &salvamentoRepoFijo{registros: []entity.SalvamentoDetalle{
		{Salvamento: entity.Salvamento{IDSalvamento: 1, CantidadGallinas: 10}},
		{Salvamento: entity.Salvamento{IDSalvamento: 2, CantidadGallinas: 5}},
	}}
	gen := &generadorSpy{}
	uc := reportes.NewSalvamentosUseCase(repo, gen)

	pdf, filename, err := uc.Generar(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "salvamentos_2026-01-01_2026-01-31.pdf", filename)
	assert.True(t, gen.llamado)
	assert.Len(t, gen.gotRegistros, 2)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), repo.gotDesde)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), repo.gotHasta)
}

func TestReporteSalvamentos_FechaMalFormada(t *testing.T) {
	uc := reportes.NewSalvamentosUseCase(&salvamentoRepoFijo{}, &generadorSpy{})

	_, _, err := uc.Generar(context.Background(), "01-01-2026", "2026-01-31")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestReporteSalvamentos_RangoInvertido(t *testing.T) {
	repo := &salvamentoRepoFijo{}
	gen := &generadorSpy{}
	uc := reportes.NewSalvamentosUseCase(repo, gen)

	_, _, err := uc.Generar(context.Background(), "2026-02-01", "2026-01-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.False(t, gen.llamado, "un rango inválido no debe generar PDF")
}
