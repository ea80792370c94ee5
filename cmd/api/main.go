package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/adso2925889/Avicola-api/docs"
	"github.com/adso2925889/Avicola-api/internal/application/auth"
	"github.com/adso2925889/Avicola-api/internal/application/reportes"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	infrapdf "github.com/adso2925889/Avicola-api/internal/infrastructure/pdf"
	"github.com/adso2925889/Avicola-api/internal/infrastructure/postgres"
	httpRouter "github.com/adso2925889/Avicola-api/internal/interfaces/http"
	"github.com/adso2925889/Avicola-api/pkg/config"
	"github.com/adso2925889/Avicola-api/pkg/logger"
)

// @title        Avícola API
// @version      1.0
// @description  Backend de gestión avícola: usuarios, fincas, galpones, tipos de gallina, salvamentos e ingresos.
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool, log.Zerolog())
	fincaRepo := postgres.NewFincaRepository(pool, log.Zerolog())
	galponRepo := postgres.NewGalponRepository(pool, log.Zerolog())
	tipoGallinaRepo := postgres.NewTipoGallinaRepository(pool, log.Zerolog())
	salvamentoRepo := postgres.NewSalvamentoRepository(pool, log.Zerolog())
	ingresoRepo := postgres.NewIngresoRepository(pool, log.Zerolog())
	permisoRepo := postgres.NewPermisoRepository(pool, log.Zerolog())

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	fincaUC := usecase.NewFincaUseCase(fincaRepo)
	galponUC := usecase.NewGalponUseCase(galponRepo)
	tipoGallinaUC := usecase.NewTipoGallinaUseCase(tipoGallinaRepo)
	salvamentoUC := usecase.NewSalvamentoUseCase(salvamentoRepo)
	ingresoUC := usecase.NewIngresoUseCase(ingresoRepo)
	permisoSvc := usecase.NewPermisoService(permisoRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

	// Reporte PDF de salvamentos
	pdfGenerator := infrapdf.NewMarotoSalvamentoGenerator()
	reporteUC := reportes.NewSalvamentosUseCase(salvamentoRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Avícola API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UsuarioUC:     usuarioUC,
		FincaUC:       fincaUC,
		GalponUC:      galponUC,
		TipoGallinaUC: tipoGallinaUC,
		SalvamentoUC:  salvamentoUC,
		ReporteUC:     reporteUC,
		IngresoUC:     ingresoUC,
		Permisos:      permisoSvc,
		JWTSecret:     cfg.JWT.Secret,
		Modulos:       cfg.Modulos,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
