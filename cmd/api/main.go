package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/swaggo/swag"

	"github.com/jhoicas/mvp-cfdi-api/docs"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/auth"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/accounts"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/mvp-cfdi-api/internal/interfaces/http"
	"github.com/jhoicas/mvp-cfdi-api/pkg/config"
	"github.com/jhoicas/mvp-cfdi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_file", cfg.Data.FilePath).
		Msg("iniciando aplicación")

	seeds := accounts.DefaultAccounts()
	if cfg.Auth.DemoAccountsFile != "" {
		seeds, err = accounts.LoadYAML(cfg.Auth.DemoAccountsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("cuentas demo")
		}
	}
	directory, err := accounts.NewDirectory(seeds, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("cuentas demo")
	}
	log.Info().Int("accounts", directory.Len()).Msg("cuentas demo cargadas")

	docStore := filestore.NewDocumentStore(cfg.Data.FilePath, log.Component("filestore"))
	reportGen := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	queryUC := cfdi.NewQueryUseCase(docStore, reportGen, cfdi.Config{Version: cfg.App.Version}, log.Component("cfdi"))
	authUC := auth.NewAuthUseCase(directory, auth.SessionConfig{
		TokenSalt:  cfg.Auth.TokenSalt,
		SessionTTL: cfg.Auth.SessionTTL(),
	})

	docs.SwaggerInfo.Version = cfg.App.Version
	docs.SwaggerInfo.Title = "MVP CFDI API"

	middleware := []fiber.Handler{
		cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.HTTP.AllowOrigins, ","),
			AllowCredentials: true,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "*",
		}),
	}
	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		middleware = append(middleware, swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "MVP CFDI API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		QueryUC: queryUC,
		AuthUC:  authUC,
		Info: httpRouter.ServiceInfo{
			Name:        cfg.App.Name,
			Version:     cfg.App.Version,
			FrontendURL: cfg.App.FrontendURL,
		},
		OpenAPIDoc: func() (string, error) { return swag.ReadDoc() },
	}, log.Component("http"), fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}, middleware...)

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
