package usecase

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var decimalZero = decimal.Zero

// foldAccents quita tildes y diacríticos ("Martínez" -> "Martinez") para que
// la búsqueda de contratos no dependa de cómo escribió el usuario.
func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeEmail trim + minúsculas; los emails se comparan y persisten así.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// trimmed devuelve un puntero al valor con trim, o nil si no viene.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// loweredEmail como trimmed pero en minúsculas.
func loweredEmail(p *string) *string {
	if p == nil {
		return nil
	}
	v := normalizeEmail(*p)
	return &v
}
