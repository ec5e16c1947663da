// Package searchtext normaliza texto para búsquedas del catálogo PDV:
// insensible a mayúsculas y a tildes ("café" y "CAFE" coinciden).
package searchtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas y sin marcas diacríticas.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// La transformación NFD nunca debería fallar sobre UTF-8 válido;
		// ante entrada corrupta se degrada a lower-case simple.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches reporta si query aparece dentro de s, comparando en forma plegada.
// Query vacío coincide con todo.
func Matches(s, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(query))
}
