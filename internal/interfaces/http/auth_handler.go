package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/auth"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
)

// AuthHandler maneja login y logout de demostración.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *validator.Validate
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validate}
}

// Login godoc
// @Summary      Iniciar sesión (demo)
// @Description  Acepta las cuentas demo y, además, cualquier par username/password no vacío con rol "demo".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(err)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(err)
	}
	session, err := h.uc.Login(c.UserContext(), *in.Username, *in.Password)
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(dto.LoginResponse{
		Envelope: dto.NewEnvelope("Login exitoso", session.IssuedAt),
		User:     session.User,
		Token:    session.Token,
	})
}

// Logout godoc
// @Summary      Cerrar sesión (demo)
// @Description  Solo verifica que se envíe un token no vacío; no hay sesión en servidor.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogoutRequest  true  "token"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.LogoutRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(err)
	}
	if err := h.uc.Logout(c.UserContext(), in.Token); err != nil {
		return fromDomain(err)
	}
	return c.JSON(dto.NewEnvelope("Logout exitoso", timeNow()))
}
