package entity

import "strings"

// Claves de nivel superior del archivo de datos.
const (
	KeyDescargados = "cfdis_descargados"
	KeyValidacion  = "cfdis_validacion"
	KeyGenerados   = "cfdis_generados"
	KeyCatalogos   = "catalogos_sat"
)

// Estados reconocidos en cfdis_validacion (se comparan en minúsculas).
const (
	EstadoValido    = "válido"
	EstadoCancelado = "cancelado"
)

// Valores por defecto para campos ausentes.
const (
	DefaultField = "N/A"
	DefaultTotal = "$0.00"
)

// Document es el contenido completo del archivo de datos. Se mantiene como mapa
// genérico para que los registros viajen sin alterar hacia el cliente.
type Document map[string]any

// Record es un CFDI tal como aparece en el archivo; su forma varía por colección.
type Record map[string]any

// Records devuelve la colección key. Si falta o no es un arreglo devuelve una
// colección vacía (nunca nil, para que serialice como []).
func (d Document) Records(key string) []Record {
	raw, ok := d[key].([]any)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, Record(v))
		case Record:
			out = append(out, v)
		default:
			// Elementos que no son objeto se conservan como registro vacío para
			// que el conteo coincida con la longitud de la colección.
			out = append(out, Record{})
		}
	}
	return out
}

// Raw devuelve la colección key sin convertir, o un arreglo vacío.
func (d Document) Raw(key string) []any {
	raw, ok := d[key].([]any)
	if !ok {
		return []any{}
	}
	return raw
}

// Catalogs devuelve el mapeo de catálogos SAT (passthrough, sin validar).
func (d Document) Catalogs() map[string]any {
	c, ok := d[KeyCatalogos].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return c
}

// Str devuelve el campo key como texto, o def si falta o es nulo.
// Valores no textuales (números json.Number incluidos) se devuelven con su forma literal.
func (r Record) Str(key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case interface{ String() string }:
		return s.String()
	default:
		return def
	}
}

// Bool interpreta el campo key con la veracidad habitual de JSON: false, "", 0 y null son falsos.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case interface{ String() string }:
		s := v.String()
		return s != "" && s != "0"
	default:
		return true
	}
}

// Estado devuelve el estado normalizado en minúsculas ("" si falta).
func (r Record) Estado() string {
	return strings.ToLower(r.Str("estado", ""))
}

// Total devuelve el total como texto monetario, "$0.00" si falta.
func (r Record) Total() string {
	return r.Str("total", DefaultTotal)
}
