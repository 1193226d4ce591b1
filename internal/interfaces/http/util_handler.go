package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
)

// timeNow reemplazable en tests.
var timeNow = time.Now

// ServiceInfo metadatos del servicio reportados en / y /api/health.
type ServiceInfo struct {
	Name        string
	Version     string
	FrontendURL string
}

// UtilHandler health check, catálogos, estadísticas y raíz.
type UtilHandler struct {
	uc        *cfdi.QueryUseCase
	info      ServiceInfo
	endpoints []string
}

// NewUtilHandler construye el handler de utilidades.
func NewUtilHandler(uc *cfdi.QueryUseCase, info ServiceInfo, endpoints []string) *UtilHandler {
	return &UtilHandler{uc: uc, info: info, endpoints: endpoints}
}

// Health godoc
// @Summary      Estado del servicio y del archivo de datos
// @Tags         utilidades
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/health [get]
func (h *UtilHandler) Health(c *fiber.Ctx) error {
	out, err := h.uc.Health(c.UserContext())
	if err != nil {
		return newAPIError(fiber.StatusServiceUnavailable, err.Error())
	}
	out.EndpointsAvailable = h.endpoints
	return c.JSON(out)
}

// Catalogs godoc
// @Summary      Catálogos del SAT
// @Tags         utilidades
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/catalogos [get]
func (h *UtilHandler) Catalogs(c *fiber.Ctx) error {
	out, err := h.uc.ListCatalogs(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas generales de todas las colecciones
// @Tags         utilidades
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/general [get]
func (h *UtilHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GeneralStats(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(out)
}

// Root godoc
// @Summary      Información del servicio
// @Tags         utilidades
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *UtilHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message: "MVP CFDI API - Sistema de Gestión Fiscal",
		Version: h.info.Version,
		Status:  "running",
		Endpoints: map[string]string{
			"docs":   "/docs",
			"health": "/api/health",
			"auth":   "/api/auth/*",
			"cfdis":  "/api/cfdis/*",
			"stats":  "/api/stats/general",
		},
		FrontendURL: h.info.FrontendURL,
		Timestamp:   dto.Timestamp(timeNow()),
	})
}
