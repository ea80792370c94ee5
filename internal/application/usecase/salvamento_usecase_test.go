package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// salvamentoRepoSpy captura lo que el caso de uso baja al puerto.
type salvamentoRepoSpy struct {
	creado     *entity.Salvamento
	gotCambios []domain.Cambio
}

func (r *salvamentoRepoSpy) Create(_ context.Context, s *entity.Salvamento) error {
	r.creado = s
	return nil
}

func (r *salvamentoRepoSpy) GetByID(context.Context, int64) (*entity.SalvamentoDetalle, error) {
	return nil, nil
}

func (r *salvamentoRepoSpy) List(context.Context, int, int) ([]entity.SalvamentoDetalle, int, error) {
	return nil, 0, nil
}

func (r *salvamentoRepoSpy) ListPorFechas(context.Context, time.Time, time.Time) ([]entity.SalvamentoDetalle, error) {
	return nil, nil
}

func (r *salvamentoRepoSpy) UpdateByID(_ context.Context, _ int64, cambios []domain.Cambio) (bool, error) {
	r.gotCambios = cambios
	return true, nil
}

// La fecha YYYY-MM-DD se parsea antes de persistir.
func TestSalvamentoCreate_ParseaFecha(t *testing.T) {
	repo := &salvamentoRepoSpy{}
	uc := usecase.NewSalvamentoUseCase(repo)

	err := uc.Create(context.Background(), dto.CreateSalvamentoRequest{
		IDGalpon:         2,
		Fecha:            "2026-03-15",
		IDTipoGallina:    1,
		CantidadGallinas: 40,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.creado)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), repo.creado.Fecha)
	assert.Equal(t, 40, repo.creado.CantidadGallinas)
}

// Una fecha fuera de formato es entrada inválida y no llega al almacén.
func TestSalvamentoCreate_FechaInvalida(t *testing.T) {
	repo := &salvamentoRepoSpy{}
	uc := usecase.NewSalvamentoUseCase(repo)

	err := uc.Create(context.Background(), dto.CreateSalvamentoRequest{
		IDGalpon:      2,
		Fecha:         "15/03/2026",
		IDTipoGallina: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Nil(t, repo.creado)
}

// En el update solo bajan los campos enviados; la fecha viaja ya parseada.
func TestSalvamentoUpdate_SoloCamposEnviados(t *testing.T) {
	repo := &salvamentoRepoSpy{}
	uc := usecase.NewSalvamentoUseCase(repo)

	fecha := "2026-04-01"
	cantidad := 12
	changed, err := uc.Update(context.Background(), 5, dto.UpdateSalvamentoRequest{
		Fecha:            &fecha,
		CantidadGallinas: &cantidad,
	})
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, repo.gotCambios, 2)
	assert.Equal(t, "fecha", repo.gotCambios[0].Columna)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), repo.gotCambios[0].Valor)
	assert.Equal(t, "cantidad_gallinas", repo.gotCambios[1].Columna)
	assert.Equal(t, 12, repo.gotCambios[1].Valor)
}

// Una fecha inválida en el update corta antes de tocar el puerto.
func TestSalvamentoUpdate_FechaInvalida(t *testing.T) {
	repo := &salvamentoRepoSpy{}
	uc := usecase.NewSalvamentoUseCase(repo)

	fecha := "ayer"
	changed, err := uc.Update(context.Background(), 5, dto.UpdateSalvamentoRequest{Fecha: &fecha})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.False(t, changed)
	assert.Nil(t, repo.gotCambios)
}
