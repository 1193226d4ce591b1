package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

func TestDocument_ClavesAusentesDevuelvenColeccionesVacias(t *testing.T) {
	doc := entity.Document{}

	assert.NotNil(t, doc.Records(entity.KeyDescargados))
	assert.Empty(t, doc.Records(entity.KeyDescargados))
	assert.NotNil(t, doc.Raw(entity.KeyGenerados))
	assert.Empty(t, doc.Catalogs())
}

func TestDocument_TipoIncorrectoSeDegradaAVacio(t *testing.T) {
	doc := entity.Document{
		entity.KeyValidacion: "no es arreglo",
		entity.KeyCatalogos:  []any{1, 2},
	}
	assert.Empty(t, doc.Records(entity.KeyValidacion))
	assert.Empty(t, doc.Catalogs())
}

func TestDocument_ElementosNoObjetoConservanElConteo(t *testing.T) {
	doc := entity.Document{entity.KeyValidacion: []any{map[string]any{"estado": "Válido"}, "basura", nil}}
	recs := doc.Records(entity.KeyValidacion)
	assert.Len(t, recs, 3)
	assert.Equal(t, "válido", recs[0].Estado())
	assert.Equal(t, "", recs[1].Estado())
}

func TestRecord_ValoresPorDefecto(t *testing.T) {
	r := entity.Record{"estado": nil}

	assert.Equal(t, entity.DefaultField, r.Str("id", entity.DefaultField))
	assert.Equal(t, entity.DefaultTotal, r.Total())
	assert.Equal(t, "", r.Estado())
	assert.False(t, r.Bool("sello_valido"))
}

func TestRecord_NumerosJSONSeLeenComoTexto(t *testing.T) {
	r := entity.Record{"id": json.Number("42"), "total": json.Number("1500.5")}
	assert.Equal(t, "42", r.Str("id", entity.DefaultField))
	assert.Equal(t, "1500.5", r.Total())
}

func TestRecord_Bool(t *testing.T) {
	assert.True(t, entity.Record{"v": true}.Bool("v"))
	assert.False(t, entity.Record{"v": false}.Bool("v"))
	assert.True(t, entity.Record{"v": "sí"}.Bool("v"))
	assert.False(t, entity.Record{"v": ""}.Bool("v"))
	assert.False(t, entity.Record{"v": json.Number("0")}.Bool("v"))
	assert.True(t, entity.Record{"v": json.Number("1")}.Bool("v"))
}

func TestRecord_EstadoEnMinusculas(t *testing.T) {
	assert.Equal(t, entity.EstadoValido, entity.Record{"estado": "VÁLIDO"}.Estado())
	assert.Equal(t, entity.EstadoCancelado, entity.Record{"estado": "Cancelado"}.Estado())
}
