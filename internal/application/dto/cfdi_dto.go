package dto

// Acciones reportadas en el campo "action".
const (
	ActionDownload = "download"
	ActionValidate = "validate"
	ActionGenerate = "generate"
)

// DownloadResponse GET /api/cfdis/download.
type DownloadResponse struct {
	Envelope
	Action     string `json:"action"`
	TotalCFDIs int    `json:"total_cfdis"`
	Data       []any  `json:"data"`
}

// ValidationStats conteo por estado; validos + cancelados + errores == total_cfdis.
type ValidationStats struct {
	Validos    int `json:"validos"`
	Cancelados int `json:"cancelados"`
	Errores    int `json:"errores"`
}

// Total suma de los tres contadores.
func (s ValidationStats) Total() int { return s.Validos + s.Cancelados + s.Errores }

// ValidateResponse GET /api/cfdis/validate.
type ValidateResponse struct {
	Envelope
	Action       string          `json:"action"`
	TotalCFDIs   int             `json:"total_cfdis"`
	Estadisticas ValidationStats `json:"estadisticas"`
	Data         []any           `json:"data"`
}

// GenerateResponse GET /api/cfdis/generate.
type GenerateResponse struct {
	Envelope
	Action      string `json:"action"`
	TotalCFDIs  int    `json:"total_cfdis"`
	TotalAmount string `json:"total_amount"` // "$1,234.56"
	Data        []any  `json:"data"`
}

// CatalogResponse GET /api/catalogos.
type CatalogResponse struct {
	Envelope
	Catalogos      map[string]any `json:"catalogos"`
	TotalCatalogos int            `json:"total_catalogos"`
}

// CollectionCounts número de registros por colección.
type CollectionCounts struct {
	Descargados int `json:"descargados"`
	Validacion  int `json:"validacion"`
	Generados   int `json:"generados"`
}

// GeneralStats resumen de todas las colecciones.
type GeneralStats struct {
	Colecciones    CollectionCounts `json:"colecciones"`
	TotalCFDIs     int              `json:"total_cfdis"`
	Validacion     ValidationStats  `json:"validacion"`
	TotalGenerado  string           `json:"total_generado"`
	TotalCatalogos int              `json:"total_catalogos"`
}

// StatsResponse GET /api/stats/general.
type StatsResponse struct {
	Envelope
	Stats GeneralStats `json:"stats"`
}
