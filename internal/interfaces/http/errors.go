package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain"
)

// APIError error con status HTTP y mensaje para el envelope de fallo.
// Los handlers lo devuelven y ErrorHandler lo renderiza.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string { return e.Message }

func newAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func validationError(err error) *APIError {
	return &APIError{
		Status:  fiber.StatusUnprocessableEntity,
		Message: "Error de validación en los datos enviados",
		Details: err.Error(),
	}
}

// fromDomain traduce errores de casos de uso a status HTTP.
func fromDomain(err error) *APIError {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return newAPIError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return newAPIError(fiber.StatusUnauthorized, err.Error())
	default:
		return newAPIError(fiber.StatusInternalServerError, err.Error())
	}
}

func statusLabel(status int) string {
	if status == fiber.StatusUnprocessableEntity {
		return "422 Validation Error"
	}
	return fmt.Sprintf("%d %s", status, utils.StatusMessage(status))
}

// ErrorHandler renderiza cualquier error como envelope JSON con success:false.
//   - *APIError: status y mensaje del handler.
//   - 404 del router: lista de endpoints disponibles.
//   - otros *fiber.Error (405, 422 del body parser...): su status y mensaje.
//   - cualquier otro error (incluidos panics recuperados): 500 genérico.
func ErrorHandler(log zerolog.Logger, endpoints []string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		now := dto.Timestamp(time.Now())

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.Status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Int("status", apiErr.Status).Msg("petición fallida")
			}
			return c.Status(apiErr.Status).JSON(dto.ErrorResponse{
				Success:   false,
				Message:   apiErr.Message,
				Error:     statusLabel(apiErr.Status),
				Details:   apiErr.Details,
				Timestamp: now,
			})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Success:            false,
					Message:            "Endpoint no encontrado",
					Error:              statusLabel(fiber.StatusNotFound),
					AvailableEndpoints: endpoints,
					Timestamp:          now,
				})
			case fiber.StatusUnprocessableEntity:
				return c.Status(fe.Code).JSON(dto.ErrorResponse{
					Success:   false,
					Message:   "Error de validación en los datos enviados",
					Error:     statusLabel(fe.Code),
					Details:   fe.Message,
					Timestamp: now,
				})
			case fiber.StatusInternalServerError:
				// cae al 500 genérico
			default:
				return c.Status(fe.Code).JSON(dto.ErrorResponse{
					Success:   false,
					Message:   fe.Message,
					Error:     statusLabel(fe.Code),
					Timestamp: now,
				})
			}
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success:   false,
			Message:   "Error interno del servidor",
			Error:     statusLabel(fiber.StatusInternalServerError),
			Note:      "Revisa los logs del servidor para más detalles",
			Timestamp: now,
		})
	}
}
