package cfdi

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
	"github.com/jhoicas/mvp-cfdi-api/pkg/money"
)

// Tally clasifica cada registro en exactamente un contador según su estado en minúsculas:
// "válido" → validos, "cancelado" → cancelados, cualquier otro (incluido vacío) → errores.
func Tally(records []entity.Record) dto.ValidationStats {
	var s dto.ValidationStats
	for _, r := range records {
		switch r.Estado() {
		case entity.EstadoValido:
			s.Validos++
		case entity.EstadoCancelado:
			s.Cancelados++
		default:
			s.Errores++
		}
	}
	return s
}

// SumTotals suma el campo total de cada registro. Los importes no parseables se omiten
// sin error; skipped indica cuántos fueron.
func SumTotals(records []entity.Record) (total decimal.Decimal, skipped int) {
	totals := make([]string, 0, len(records))
	for _, r := range records {
		totals = append(totals, r.Total())
	}
	return money.Sum(totals)
}
