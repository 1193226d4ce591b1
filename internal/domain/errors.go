package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingInput       = errors.New("entrada requerida ausente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDataUnavailable    = errors.New("archivo de datos no encontrado")
	ErrDataCorrupt        = errors.New("error al leer el archivo de datos")
)

// ErrMissingCredentials y ErrMissingToken son casos de ErrMissingInput:
// errors.Is(ErrMissingToken, ErrMissingInput) == true.
var (
	ErrMissingCredentials = fmt.Errorf("%w: username y password son requeridos", ErrMissingInput)
	ErrMissingToken       = fmt.Errorf("%w: token requerido", ErrMissingInput)
)

// IsDataError indica si err proviene del acceso al archivo de datos.
func IsDataError(err error) bool {
	return errors.Is(err, ErrDataUnavailable) || errors.Is(err, ErrDataCorrupt)
}
