// Package filestore implementa el acceso al archivo JSON que actúa como único almacén de datos.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

// DocumentStore implementa repository.DocumentRepository sobre un archivo JSON.
// No hay bloqueo: las lecturas son concurrentes y una escritura simultánea gana la última.
type DocumentStore struct {
	path string
	log  zerolog.Logger
}

// NewDocumentStore construye el store para el archivo indicado.
func NewDocumentStore(path string, log zerolog.Logger) *DocumentStore {
	return &DocumentStore{path: path, log: log}
}

// Path ruta del archivo de datos.
func (s *DocumentStore) Path() string { return s.path }

// Load lee y decodifica el archivo completo en cada llamada.
func (s *DocumentStore) Load(_ context.Context) (entity.Document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDataUnavailable
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber() // conserva los números tal cual al volver a guardar
	var doc entity.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataCorrupt, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: contenido adicional tras el documento JSON", domain.ErrDataCorrupt)
	}
	if doc == nil {
		// "null" es JSON válido; se trata como documento vacío.
		doc = entity.Document{}
	}
	return doc, nil
}

// Save escribe el documento con sangría de 2 espacios y caracteres no ASCII literales.
// Cualquier fallo se registra y se reporta como false.
func (s *DocumentStore) Save(_ context.Context, doc entity.Document) bool {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("serializar documento")
		return false
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("crear archivo temporal")
		return false
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		s.log.Warn().Err(err).Str("path", tmpPath).Msg("permisos del archivo temporal")
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		s.log.Error().Err(err).Str("path", s.path).Msg("escribir archivo temporal")
		return false
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		s.log.Error().Err(err).Str("path", s.path).Msg("cerrar archivo temporal")
		return false
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		s.log.Error().Err(err).Str("path", s.path).Msg("reemplazar archivo de datos")
		return false
	}
	return true
}
