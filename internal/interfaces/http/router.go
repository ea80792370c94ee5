package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/auth"
	"github.com/adso2925889/Avicola-api/internal/application/reportes"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UsuarioUC     *usecase.UsuarioUseCase
	FincaUC       *usecase.FincaUseCase
	GalponUC      *usecase.GalponUseCase
	TipoGallinaUC *usecase.TipoGallinaUseCase
	SalvamentoUC  *usecase.SalvamentoUseCase
	ReporteUC     *reportes.SalvamentosUseCase
	IngresoUC     *usecase.IngresoUseCase
	Permisos      *usecase.PermisoService
	JWTSecret     string
	Modulos       config.ModulosConfig
}

// Router registra las rutas de la API. Cada grupo protegido pasa por
// AuthMiddleware y por RequirePermiso con el módulo que le asigna la
// configuración y la acción que corresponde al verbo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())

	// Acceso (público)
	access := app.Group("/access")
	authHandler := NewAuthHandler(deps.AuthUC)
	access.Post("/login", authHandler.Login)

	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	permiso := func(idModulo int, accion string) fiber.Handler {
		return RequirePermiso(idModulo, accion, deps.Permisos)
	}

	// Usuarios (protegido)
	users := protected.Group("/users")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	users.Post("/crear", permiso(deps.Modulos.Usuarios, entity.AccionInsertar), usuarioHandler.Create)
	users.Get("/", permiso(deps.Modulos.Usuarios, entity.AccionSeleccionar), usuarioHandler.List)
	users.Get("/by-id/:id", permiso(deps.Modulos.Usuarios, entity.AccionSeleccionar), usuarioHandler.GetByID)
	users.Put("/by-id/:id", permiso(deps.Modulos.Usuarios, entity.AccionActualizar), usuarioHandler.Update)
	users.Patch("/estado/:id", permiso(deps.Modulos.Usuarios, entity.AccionActualizar), usuarioHandler.CambiarEstado)

	// Fincas (protegido)
	fincas := protected.Group("/fincas")
	fincaHandler := NewFincaHandler(deps.FincaUC)
	fincas.Post("/crear", permiso(deps.Modulos.Fincas, entity.AccionInsertar), fincaHandler.Create)
	fincas.Get("/", permiso(deps.Modulos.Fincas, entity.AccionSeleccionar), fincaHandler.List)
	fincas.Get("/by-id/:id", permiso(deps.Modulos.Fincas, entity.AccionSeleccionar), fincaHandler.GetByID)
	fincas.Put("/by-id/:id", permiso(deps.Modulos.Fincas, entity.AccionActualizar), fincaHandler.Update)
	fincas.Patch("/estado/:id", permiso(deps.Modulos.Fincas, entity.AccionActualizar), fincaHandler.CambiarEstado)

	// Galpones (protegido)
	galpones := protected.Group("/galpones")
	galponHandler := NewGalponHandler(deps.GalponUC)
	galpones.Post("/crear", permiso(deps.Modulos.Galpones, entity.AccionInsertar), galponHandler.Create)
	galpones.Get("/", permiso(deps.Modulos.Galpones, entity.AccionSeleccionar), galponHandler.List)
	galpones.Get("/by-id/:id", permiso(deps.Modulos.Galpones, entity.AccionSeleccionar), galponHandler.GetByID)
	galpones.Put("/by-id/:id", permiso(deps.Modulos.Galpones, entity.AccionActualizar), galponHandler.Update)
	galpones.Patch("/estado/:id", permiso(deps.Modulos.Galpones, entity.AccionActualizar), galponHandler.CambiarEstado)

	// Tipos de gallina (protegido)
	tipos := protected.Group("/tipo-gallinas")
	tipoHandler := NewTipoGallinaHandler(deps.TipoGallinaUC)
	tipos.Post("/crear", permiso(deps.Modulos.TiposGallina, entity.AccionInsertar), tipoHandler.Create)
	tipos.Get("/", permiso(deps.Modulos.TiposGallina, entity.AccionSeleccionar), tipoHandler.List)
	tipos.Get("/by-id/:id", permiso(deps.Modulos.TiposGallina, entity.AccionSeleccionar), tipoHandler.GetByID)
	tipos.Put("/by-id/:id", permiso(deps.Modulos.TiposGallina, entity.AccionActualizar), tipoHandler.Update)

	// Salvamentos (protegido)
	rescue := protected.Group("/rescue")
	salvamentoHandler := NewSalvamentoHandler(deps.SalvamentoUC, deps.ReporteUC)
	rescue.Post("/crear", permiso(deps.Modulos.Salvamento, entity.AccionInsertar), salvamentoHandler.Create)
	rescue.Get("/", permiso(deps.Modulos.Salvamento, entity.AccionSeleccionar), salvamentoHandler.List)
	rescue.Get("/reporte", permiso(deps.Modulos.Salvamento, entity.AccionSeleccionar), salvamentoHandler.Reporte)
	rescue.Get("/by-id/:id", permiso(deps.Modulos.Salvamento, entity.AccionSeleccionar), salvamentoHandler.GetByID)
	rescue.Put("/by-id/:id", permiso(deps.Modulos.Salvamento, entity.AccionActualizar), salvamentoHandler.Update)

	// Ingresos (protegido)
	ingresos := protected.Group("/ingresos")
	ingresoHandler := NewIngresoHandler(deps.IngresoUC)
	ingresos.Post("/crear", permiso(deps.Modulos.Ingresos, entity.AccionInsertar), ingresoHandler.Create)
	ingresos.Get("/", permiso(deps.Modulos.Ingresos, entity.AccionSeleccionar), ingresoHandler.List)
	ingresos.Get("/by-id/:id", permiso(deps.Modulos.Ingresos, entity.AccionSeleccionar), ingresoHandler.GetByID)
	ingresos.Put("/by-id/:id", permiso(deps.Modulos.Ingresos, entity.AccionActualizar), ingresoHandler.Update)
}
