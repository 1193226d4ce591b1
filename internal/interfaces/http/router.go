package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/auth"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
)

// Endpoints listado publicado en /api/health y en las respuestas 404.
var Endpoints = []string{
	"/api/health",
	"/api/auth/login",
	"/api/auth/logout",
	"/api/cfdis/download",
	"/api/cfdis/validate",
	"/api/cfdis/generate",
	"/api/cfdis/generate/pdf",
	"/api/catalogos",
	"/api/stats/general",
	"/docs",
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QueryUC *cfdi.QueryUseCase
	AuthUC  *auth.AuthUseCase
	Info    ServiceInfo
	// OpenAPIDoc devuelve el documento OpenAPI registrado; nil = no se expone /api/openapi.json.
	OpenAPIDoc func() (string, error)
}

// Router registra las rutas de la API. Todas son públicas: no hay sesiones que validar.
func Router(app *fiber.App, deps RouterDeps) {
	utilHandler := NewUtilHandler(deps.QueryUC, deps.Info, Endpoints)
	app.Get("/", utilHandler.Root)

	api := app.Group("/api")
	api.Get("/health", utilHandler.Health)
	api.Get("/catalogos", utilHandler.Catalogs)
	api.Get("/stats/general", utilHandler.Stats)

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, validator.New())
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	cfdis := api.Group("/cfdis")
	cfdiHandler := NewCFDIHandler(deps.QueryUC)
	cfdis.Get("/download", cfdiHandler.Download)
	cfdis.Get("/validate", cfdiHandler.Validate)
	cfdis.Get("/generate", cfdiHandler.Generate)
	cfdis.Get("/generate/pdf", cfdiHandler.GeneratePDF)

	if deps.OpenAPIDoc != nil {
		api.Get("/openapi.json", func(c *fiber.Ctx) error {
			doc, err := deps.OpenAPIDoc()
			if err != nil {
				return newAPIError(fiber.StatusInternalServerError, "documento OpenAPI no disponible: "+err.Error())
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}
}

// NewApp crea la aplicación Fiber con el ErrorHandler de envelopes, el log de peticiones,
// recover, los middlewares extra (CORS, Swagger) y las rutas.
func NewApp(deps RouterDeps, log zerolog.Logger, fc fiber.Config, middleware ...fiber.Handler) *fiber.App {
	fc.ErrorHandler = ErrorHandler(log, Endpoints)
	app := fiber.New(fc)
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	for _, mw := range middleware {
		app.Use(mw)
	}
	Router(app, deps)
	return app
}
