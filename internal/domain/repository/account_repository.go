package repository

import (
	"context"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

// AccountDirectory tabla de cuentas demo inyectable (DIP).
type AccountDirectory interface {
	// Find devuelve (nil, nil) si el usuario no está en la tabla.
	Find(ctx context.Context, username string) (*entity.DemoAccount, error)
	// Verify compara password contra el hash de la cuenta.
	Verify(account *entity.DemoAccount, password string) bool
}
