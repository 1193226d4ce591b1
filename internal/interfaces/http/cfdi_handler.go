package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
)

// CFDIHandler expone las consultas sobre las colecciones de CFDIs.
type CFDIHandler struct {
	uc *cfdi.QueryUseCase
}

// NewCFDIHandler construye el handler inyectando el caso de uso.
func NewCFDIHandler(uc *cfdi.QueryUseCase) *CFDIHandler {
	return &CFDIHandler{uc: uc}
}

// Download godoc
// @Summary      CFDIs descargados
// @Tags         cfdis
// @Produce      json
// @Success      200  {object}  dto.DownloadResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cfdis/download [get]
func (h *CFDIHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.ListDownloaded(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      CFDIs en validación con conteo por estado
// @Tags         cfdis
// @Produce      json
// @Success      200  {object}  dto.ValidateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cfdis/validate [get]
func (h *CFDIHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.ListValidated(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      CFDIs generados con monto total
// @Tags         cfdis
// @Produce      json
// @Success      200  {object}  dto.GenerateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cfdis/generate [get]
func (h *CFDIHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.ListGenerated(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Reporte PDF de CFDIs generados
// @Tags         cfdis
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cfdis/generate/pdf [get]
func (h *CFDIHandler) GeneratePDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.GeneratedReport(c.UserContext())
	if err != nil {
		return fromDomain(err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
