package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// fincaRepoPaginado sirve páginas sobre un listado fijo y registra el filtro
// que recibió.
type fincaRepoPaginado struct {
	fincas    []entity.Finca
	gotNombre string
	gotLimit  int
	gotSkip   int
}

func (r *fincaRepoPaginado) Create(context.Context, *entity.Finca) error { return nil }

func (r *fincaRepoPaginado) GetByID(context.Context, int64) (*entity.Finca, error) {
	return nil, nil
}

func (r *fincaRepoPaginado) List(_ context.Context, nombre string, limit, skip int) ([]entity.Finca, int, error) {
	r.gotNombre = nombre
	r.gotLimit = limit
	r.gotSkip = skip
	total := len(r.fincas)
	if skip >= total {
		return nil, total, nil
	}
	page := r.fincas[skip:]
	if limit < len(page) {
		page = page[:limit]
	}
	return page, total, nil
}

func (r *fincaRepoPaginado) UpdateByID(context.Context, int64, []domain.Cambio) (bool, error) {
	return false, nil
}

func (r *fincaRepoPaginado) CambiarEstado(context.Context, int64, bool) (bool, error) {
	return false, nil
}

func fincasDePrueba(n int) []entity.Finca {
	fincas := make([]entity.Finca, 0, n)
	for i := 1; i <= n; i++ {
		fincas = append(fincas, entity.Finca{
			IDFinca:     int64(i),
			NombreFinca: fmt.Sprintf("Finca %d", i),
		})
	}
	return fincas
}

// Recorrer todas las páginas debe devolver exactamente N elementos y cada
// página debe reportar el mismo total N.
func TestFincaList_InvarianteDePaginacion(t *testing.T) {
	const n, limite = 23, 10
	repo := &fincaRepoPaginado{fincas: fincasDePrueba(n)}
	uc := usecase.NewFincaUseCase(repo)

	vistos := 0
	for skip := 0; skip < n; skip += limite {
		out, err := uc.List(context.Background(), "", limite, skip)
		require.NoError(t, err)
		assert.Equal(t, n, out.Total, "cada página debe reportar el total completo")
		vistos += len(out.Items)
	}
	assert.Equal(t, n, vistos, "la suma de las páginas debe cubrir la colección exacta")
}

// Valores de página fuera de rango caen a los valores por defecto.
func TestFincaList_NormalizaPagina(t *testing.T) {
	repo := &fincaRepoPaginado{fincas: fincasDePrueba(5)}
	uc := usecase.NewFincaUseCase(repo)

	_, err := uc.List(context.Background(), "", -1, -10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 0, repo.gotSkip)

	_, err = uc.List(context.Background(), "", 10_000, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.gotLimit, "el límite debe acotarse al tope")
}

// El filtro por nombre baja al repositorio en minúsculas y sin tildes.
func TestFincaList_NormalizaFiltro(t *testing.T) {
	repo := &fincaRepoPaginado{}
	uc := usecase.NewFincaUseCase(repo)

	_, err := uc.List(context.Background(), "  La Cabaña ", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "la cabana", repo.gotNombre)
}
