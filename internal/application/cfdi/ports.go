package cfdi

import (
	"context"
	"time"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

// ReportGenerator genera la representación impresa (PDF) de los CFDIs generados.
type ReportGenerator interface {
	GenerateCFDIReport(ctx context.Context, records []entity.Record, totalAmount string, generatedAt time.Time) ([]byte, error)
}
