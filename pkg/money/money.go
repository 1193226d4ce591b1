// Package money convierte importes con formato "$1,234.56" hacia y desde decimal.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var stripper = strings.NewReplacer("$", "", ",", "")

// Parse quita todos los "$" y "," y parsea el resto como decimal.
// Ej: "$12,500.00" → 12500.00; "N/A" → error.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(stripper.Replace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: importe inválido %q: %w", s, err)
	}
	return d, nil
}

// Format devuelve "$" + el importe con coma de miles y exactamente dos decimales.
// Redondea al par en el medio centavo (0.125 → "0.12").
// Ej: 1234567.891 → "$1,234,567.89"; -5 → "$-5.00".
func Format(d decimal.Decimal) string {
	fixed := d.StringFixedBank(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return "$" + sign + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas de miles en un string de dígitos.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Sum suma los importes parseables y devuelve además cuántos se omitieron.
func Sum(values []string) (total decimal.Decimal, skipped int) {
	total = decimal.Zero
	for _, v := range values {
		d, err := Parse(v)
		if err != nil {
			skipped++
			continue
		}
		total = total.Add(d)
	}
	return total, skipped
}
