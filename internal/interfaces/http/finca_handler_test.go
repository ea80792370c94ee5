package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/infrastructure/postgres"
	apphttp "github.com/adso2925889/Avicola-api/internal/interfaces/http"
)

// fakeFincaRepo guarda fincas en memoria y reutiliza el UpdateBuilder real
// para que la semántica de centinelas del update parcial sea la misma que en
// producción.
type fakeFincaRepo struct {
	seq       int64
	fincas    map[int64]*entity.Finca
	creates   int
	errCreate error
	upd       postgres.UpdateBuilder
}

func newFakeFincaRepo() *fakeFincaRepo {
	return &fakeFincaRepo{
		fincas: make(map[int64]*entity.Finca),
		upd: postgres.UpdateBuilder{
			Tabla:     "fincas",
			ColumnaID: "id_finca",
			Columnas: map[string]bool{
				"nombre_finca": true,
				"longitud":     true,
				"latitud":      true,
				"estado_finca": true,
			},
		},
	}
}

func (f *fakeFincaRepo) Create(_ context.Context, finca *entity.Finca) error {
	if f.errCreate != nil {
		return f.errCreate
	}
	f.creates++
	f.seq++
	copia := *finca
	copia.IDFinca = f.seq
	f.fincas[f.seq] = &copia
	return nil
}

func (f *fakeFincaRepo) GetByID(_ context.Context, id int64) (*entity.Finca, error) {
	finca, ok := f.fincas[id]
	if !ok {
		return nil, nil
	}
	copia := *finca
	return &copia, nil
}

func (f *fakeFincaRepo) List(_ context.Context, _ string, limit, skip int) ([]entity.Finca, int, error) {
	var list []entity.Finca
	for id := int64(1); id <= f.seq; id++ {
		if finca, ok := f.fincas[id]; ok {
			list = append(list, *finca)
		}
	}
	total := len(list)
	if skip >= total {
		return nil, total, nil
	}
	list = list[skip:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, total, nil
}

func (f *fakeFincaRepo) UpdateByID(_ context.Context, id int64, cambios []domain.Cambio) (bool, error) {
	_, _, ok, err := f.upd.Construir(id, cambios)
	if err != nil {
		return false, domain.ErrPersistencia
	}
	if !ok {
		return false, nil
	}
	finca, existe := f.fincas[id]
	if !existe {
		return false, nil
	}
	for _, c := range cambios {
		// Se aplica solo lo que el builder dejaría en el SET.
		if _, _, sobrevive, _ := f.upd.Construir(id, []domain.Cambio{c}); !sobrevive {
			continue
		}
		switch c.Columna {
		case "nombre_finca":
			finca.NombreFinca = c.Valor.(string)
		case "longitud":
			finca.Longitud = c.Valor.(decimal.Decimal)
		case "latitud":
			finca.Latitud = c.Valor.(decimal.Decimal)
		case "estado_finca":
			finca.EstadoFinca = c.Valor.(bool)
		}
	}
	return true, nil
}

func (f *fakeFincaRepo) CambiarEstado(_ context.Context, id int64, estado bool) (bool, error) {
	finca, ok := f.fincas[id]
	if !ok {
		return false, nil
	}
	finca.EstadoFinca = estado
	return true, nil
}

// buildFincaApp arma las rutas de fincas con el middleware real de auth y
// permisos sobre el repositorio falso.
func buildFincaApp(repo *fakeFincaRepo, checker *fakeChecker) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewFincaHandler(usecase.NewFincaUseCase(repo))

	fincas := app.Group("/fincas", apphttp.AuthMiddleware(testJWTSecret))
	permiso := func(accion string) fiber.Handler {
		return apphttp.RequirePermiso(3, accion, checker)
	}
	fincas.Post("/crear", permiso(entity.AccionInsertar), handler.Create)
	fincas.Get("/", permiso(entity.AccionSeleccionar), handler.List)
	fincas.Get("/by-id/:id", permiso(entity.AccionSeleccionar), handler.GetByID)
	fincas.Put("/by-id/:id", permiso(entity.AccionActualizar), handler.Update)
	fincas.Patch("/estado/:id", permiso(entity.AccionActualizar), handler.CambiarEstado)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenParaRol(t, 3))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Crear una finca y recuperarla por id debe devolver los mismos valores.
func TestFinca_CrearYObtener(t *testing.T) {
	repo := newFakeFincaRepo()
	app := buildFincaApp(repo, &fakeChecker{puede: true})

	resp := doJSON(t, app, http.MethodPost, "/fincas/crear",
		`{"nombre_finca":"La Esperanza","longitud":-75.5,"latitud":4.6,"id_usuario":1,"estado_finca":true}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, repo.creates)

	resp = doJSON(t, app, http.MethodGet, "/fincas/by-id/1", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.FincaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.IDFinca)
	assert.Equal(t, "La Esperanza", out.NombreFinca)
	assert.True(t, out.Longitud.Equal(decimal.RequireFromString("-75.5")))
	assert.True(t, out.Latitud.Equal(decimal.RequireFromString("4.6")))
	assert.Equal(t, int64(1), out.IDUsuario)
	assert.True(t, out.EstadoFinca)
}

// Un update cuyo único valor es el centinela cero no aplica cambio alguno y
// la respuesta lo indica; la finca queda intacta.
func TestFinca_UpdateConCentinelaCero_NoCambiaNada(t *testing.T) {
	repo := newFakeFincaRepo()
	app := buildFincaApp(repo, &fakeChecker{puede: true})

	resp := doJSON(t, app, http.MethodPost, "/fincas/crear",
		`{"nombre_finca":"La Esperanza","longitud":-75.5,"latitud":4.6,"id_usuario":1,"estado_finca":true}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/fincas/by-id/1", `{"longitud":0}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un update sin cambios efectivos debe indicarlo")

	guardada, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, guardada.Longitud.Equal(decimal.RequireFromString("-75.5")),
		"la longitud original no debe tocarse")
}

// Un update con valores efectivos cambia solo las columnas enviadas.
func TestFinca_UpdateParcial_SoloColumnasEnviadas(t *testing.T) {
	repo := newFakeFincaRepo()
	app := buildFincaApp(repo, &fakeChecker{puede: true})

	resp := doJSON(t, app, http.MethodPost, "/fincas/crear",
		`{"nombre_finca":"La Esperanza","longitud":-75.5,"latitud":4.6,"id_usuario":1,"estado_finca":true}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/fincas/by-id/1", `{"nombre_finca":"El Roble"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	guardada, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "El Roble", guardada.NombreFinca)
	assert.True(t, guardada.Longitud.Equal(decimal.RequireFromString("-75.5")))
	assert.True(t, guardada.Latitud.Equal(decimal.RequireFromString("4.6")))
}

// Pedir una finca inexistente responde 404 sin tocar el almacén.
func TestFinca_GetInexistente_Retorna404(t *testing.T) {
	repo := newFakeFincaRepo()
	app := buildFincaApp(repo, &fakeChecker{puede: true})

	resp := doJSON(t, app, http.MethodGet, "/fincas/by-id/99", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, repo.creates)
}

// Un fallo del almacén en una ruta de mutación responde 500 con el mensaje
// genérico estable y no deja fila a medias.
func TestFinca_CrearConFalloDeAlmacen_Retorna500(t *testing.T) {
	repo := newFakeFincaRepo()
	repo.errCreate = domain.ErrPersistencia
	app := buildFincaApp(repo, &fakeChecker{puede: true})

	resp := doJSON(t, app, http.MethodPost, "/fincas/crear",
		`{"nombre_finca":"La Esperanza","longitud":-75.5,"latitud":4.6,"id_usuario":1,"estado_finca":true}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno", out.Message, "el detalle del fallo no debe filtrarse")
	assert.Empty(t, repo.fincas, "el fallo no debe dejar escritura parcial")
}

// Sin permiso de insertar la creación se rechaza con 401 y no se persiste fila.
func TestFinca_CrearSinPermiso_Retorna401(t *testing.T) {
	repo := newFakeFincaRepo()
	app := buildFincaApp(repo, &fakeChecker{puede: false})

	resp := doJSON(t, app, http.MethodPost, "/fincas/crear",
		`{"nombre_finca":"La Esperanza","longitud":-75.5,"latitud":4.6,"id_usuario":1,"estado_finca":true}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, repo.creates, "la denegación no debe crear filas")
}
