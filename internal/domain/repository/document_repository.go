package repository

import (
	"context"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

// DocumentRepository define el puerto de acceso al archivo de datos de CFDIs.
type DocumentRepository interface {
	// Load lee el documento completo; se invoca en cada petición, sin caché.
	// Devuelve domain.ErrDataUnavailable o domain.ErrDataCorrupt.
	Load(ctx context.Context) (entity.Document, error)
	// Save escribe el documento y reporta éxito; nunca devuelve error.
	Save(ctx context.Context, doc entity.Document) bool
}
