package cfdi

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/repository"
	"github.com/jhoicas/mvp-cfdi-api/pkg/money"
)

// Mensajes de error por operación; la causa se agrega tras ": ".
const (
	msgDownloadFailed = "Error al obtener CFDIs descargados"
	msgValidateFailed = "Error al validar CFDIs"
	msgGenerateFailed = "Error al obtener CFDIs generados"
	msgCatalogsFailed = "Error al obtener catálogos"
	msgStatsFailed    = "Error al obtener estadísticas"
	msgReportFailed   = "Error al generar el reporte de CFDIs"
	msgHealthFailed   = "Health check failed"
)

// Config parámetros del servicio de consulta.
type Config struct {
	Version string
	Now     func() time.Time // nil = time.Now
}

// QueryUseCase consultas de solo lectura sobre el archivo de datos.
// Cada operación lee el archivo de nuevo; no hay estado compartido entre peticiones.
type QueryUseCase struct {
	docs   repository.DocumentRepository
	report ReportGenerator
	cfg    Config
	log    zerolog.Logger
}

// NewQueryUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewQueryUseCase(docs repository.DocumentRepository, report ReportGenerator, cfg Config, log zerolog.Logger) *QueryUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &QueryUseCase{docs: docs, report: report, cfg: cfg, log: log}
}

func (uc *QueryUseCase) load(ctx context.Context, op string) (entity.Document, error) {
	doc, err := uc.docs.Load(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", op).Msg("cargar archivo de datos")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}

// ListDownloaded devuelve cfdis_descargados tal cual.
func (uc *QueryUseCase) ListDownloaded(ctx context.Context) (*dto.DownloadResponse, error) {
	doc, err := uc.load(ctx, msgDownloadFailed)
	if err != nil {
		return nil, err
	}
	data := doc.Raw(entity.KeyDescargados)
	return &dto.DownloadResponse{
		Envelope:   dto.NewEnvelope(fmt.Sprintf("Se obtuvieron %d CFDIs descargados", len(data)), uc.cfg.Now()),
		Action:     dto.ActionDownload,
		TotalCFDIs: len(data),
		Data:       data,
	}, nil
}

// ListValidated devuelve cfdis_validacion con el conteo por estado.
func (uc *QueryUseCase) ListValidated(ctx context.Context) (*dto.ValidateResponse, error) {
	doc, err := uc.load(ctx, msgValidateFailed)
	if err != nil {
		return nil, err
	}
	data := doc.Raw(entity.KeyValidacion)
	return &dto.ValidateResponse{
		Envelope:     dto.NewEnvelope(fmt.Sprintf("Se validaron %d CFDIs", len(data)), uc.cfg.Now()),
		Action:       dto.ActionValidate,
		TotalCFDIs:   len(data),
		Estadisticas: Tally(doc.Records(entity.KeyValidacion)),
		Data:         data,
	}, nil
}

// ListGenerated devuelve cfdis_generados con la suma de sus totales.
func (uc *QueryUseCase) ListGenerated(ctx context.Context) (*dto.GenerateResponse, error) {
	doc, err := uc.load(ctx, msgGenerateFailed)
	if err != nil {
		return nil, err
	}
	data := doc.Raw(entity.KeyGenerados)
	total, skipped := SumTotals(doc.Records(entity.KeyGenerados))
	if skipped > 0 {
		uc.log.Debug().Int("skipped", skipped).Msg("totales no numéricos omitidos")
	}
	return &dto.GenerateResponse{
		Envelope:    dto.NewEnvelope(fmt.Sprintf("Se generaron %d facturas exitosamente", len(data)), uc.cfg.Now()),
		Action:      dto.ActionGenerate,
		TotalCFDIs:  len(data),
		TotalAmount: money.Format(total),
		Data:        data,
	}, nil
}

// ListCatalogs devuelve el mapeo catalogos_sat sin validar.
func (uc *QueryUseCase) ListCatalogs(ctx context.Context) (*dto.CatalogResponse, error) {
	doc, err := uc.load(ctx, msgCatalogsFailed)
	if err != nil {
		return nil, err
	}
	catalogs := doc.Catalogs()
	return &dto.CatalogResponse{
		Envelope:       dto.NewEnvelope("Catálogos del SAT obtenidos correctamente", uc.cfg.Now()),
		Catalogos:      catalogs,
		TotalCatalogos: len(catalogs),
	}, nil
}

// GeneralStats resume las tres colecciones y los catálogos en una sola lectura.
func (uc *QueryUseCase) GeneralStats(ctx context.Context) (*dto.StatsResponse, error) {
	doc, err := uc.load(ctx, msgStatsFailed)
	if err != nil {
		return nil, err
	}
	counts := dto.CollectionCounts{
		Descargados: len(doc.Raw(entity.KeyDescargados)),
		Validacion:  len(doc.Raw(entity.KeyValidacion)),
		Generados:   len(doc.Raw(entity.KeyGenerados)),
	}
	total, _ := SumTotals(doc.Records(entity.KeyGenerados))
	return &dto.StatsResponse{
		Envelope: dto.NewEnvelope("Estadísticas generales obtenidas correctamente", uc.cfg.Now()),
		Stats: dto.GeneralStats{
			Colecciones:    counts,
			TotalCFDIs:     counts.Descargados + counts.Validacion + counts.Generados,
			Validacion:     Tally(doc.Records(entity.KeyValidacion)),
			TotalGenerado:  money.Format(total),
			TotalCatalogos: len(doc.Catalogs()),
		},
	}, nil
}

// GeneratedReport genera el PDF de cfdis_generados y devuelve sus bytes y el nombre sugerido.
func (uc *QueryUseCase) GeneratedReport(ctx context.Context) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("%s: generador de reportes no configurado", msgReportFailed)
	}
	doc, err := uc.load(ctx, msgReportFailed)
	if err != nil {
		return nil, "", err
	}
	records := doc.Records(entity.KeyGenerados)
	total, _ := SumTotals(records)
	now := uc.cfg.Now()
	pdf, err := uc.report.GenerateCFDIReport(ctx, records, money.Format(total), now)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", msgReportFailed, err)
	}
	return pdf, fmt.Sprintf("cfdis_generados_%s.pdf", now.Format("20060102_150405")), nil
}

// Health verifica que el archivo de datos se pueda leer.
// data_file_status es "OK" si el documento tiene al menos una clave.
func (uc *QueryUseCase) Health(ctx context.Context) (*dto.HealthResponse, error) {
	doc, err := uc.load(ctx, msgHealthFailed)
	if err != nil {
		return nil, err
	}
	status := dto.DataFileOK
	if len(doc) == 0 {
		status = dto.DataFileError
	}
	return &dto.HealthResponse{
		Envelope:       dto.NewEnvelope("MVP CFDI API funcionando correctamente", uc.cfg.Now()),
		Status:         "healthy",
		Version:        uc.cfg.Version,
		DataFileStatus: status,
	}, nil
}
