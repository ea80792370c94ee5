package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/adso2925889/Avicola-api/internal/interfaces/http"
)

// fakeChecker responde el permiso fijado y cuenta las consultas.
type fakeChecker struct {
	puede    bool
	err      error
	llamadas int

	gotIDRol    int
	gotIDModulo int
	gotAccion   string
}

func (f *fakeChecker) Puede(_ context.Context, idRol, idModulo int, accion string) (bool, error) {
	f.llamadas++
	f.gotIDRol = idRol
	f.gotIDModulo = idModulo
	f.gotAccion = accion
	return f.puede, f.err
}

// buildPermisoApp arma una ruta protegida por auth + permiso con un handler
// que marca si llegó a ejecutarse.
func buildPermisoApp(checker *fakeChecker, ejecutado *bool) *fiber.App {
	app := fiber.New()
	app.Get("/protegido",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermiso(3, "seleccionar", checker),
		func(c *fiber.Ctx) error {
			*ejecutado = true
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// Rol con permiso → el handler se ejecuta.
func TestRequirePermiso_Concedido(t *testing.T) {
	checker := &fakeChecker{puede: true}
	var ejecutado bool
	app := buildPermisoApp(checker, &ejecutado)

	resp := doRequest(t, app, http.MethodGet, "/protegido", tokenParaRol(t, 3))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, ejecutado, "el handler debe ejecutarse con permiso concedido")
	assert.Equal(t, 1, checker.llamadas)
	assert.Equal(t, 3, checker.gotIDRol, "el rol debe salir del token")
	assert.Equal(t, 3, checker.gotIDModulo)
	assert.Equal(t, "seleccionar", checker.gotAccion)
}

// Rol sin permiso → 401 y el handler nunca se ejecuta. La respuesta no
// distingue si falló el rol, el módulo o la acción.
func TestRequirePermiso_Denegado_Retorna401(t *testing.T) {
	checker := &fakeChecker{puede: false}
	var ejecutado bool
	app := buildPermisoApp(checker, &ejecutado)

	resp := doRequest(t, app, http.MethodGet, "/protegido", tokenParaRol(t, 5))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ejecutado, "el handler no debe ejecutarse sin permiso")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SIN_PERMISO")
	assert.NotContains(t, string(body), "seleccionar",
		"la denegación no debe revelar la acción consultada")
}

// Fallo del almacén al consultar el permiso → 500, nunca un permiso implícito.
func TestRequirePermiso_ErrorDelChecker_Retorna500(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db caída")}
	var ejecutado bool
	app := buildPermisoApp(checker, &ejecutado)

	resp := doRequest(t, app, http.MethodGet, "/protegido", tokenParaRol(t, 3))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, ejecutado)
}

// Sin token el middleware de auth corta antes: el checker nunca se consulta.
func TestRequirePermiso_SinToken_NoConsultaChecker(t *testing.T) {
	checker := &fakeChecker{puede: true}
	var ejecutado bool
	app := buildPermisoApp(checker, &ejecutado)

	resp := doRequest(t, app, http.MethodGet, "/protegido", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, checker.llamadas, "sin autenticación no debe tocarse el almacén de permisos")
	assert.False(t, ejecutado)
}
