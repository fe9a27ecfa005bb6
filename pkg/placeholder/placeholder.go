// Package placeholder genera URLs de imágenes de relleno para productos y negocios sin foto.
package placeholder

import (
	"fmt"
	"net/url"
	"strings"
)

// Size tamaño de la imagen cuadrada.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// DefaultBaseURL servicio de placeholders por defecto.
const DefaultBaseURL = "https://via.placeholder.com"

const (
	background = "f3f4f6"
	foreground = "6b7280"
	emptyLabel = "Product"
)

// Pixels lado en píxeles; un tamaño desconocido equivale a Medium.
func (s Size) Pixels() int {
	switch s {
	case Small:
		return 40
	case Large:
		return 400
	default:
		return 200
	}
}

// Resolver construye URLs sobre un servicio de placeholders.
type Resolver struct {
	base string
}

// New crea un Resolver; base vacía usa DefaultBaseURL.
func New(base string) Resolver {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return Resolver{base: base}
}

// URL devuelve la imagen de relleno para label en el tamaño dado.
func (r Resolver) URL(label string, size Size) string {
	px := size.Pixels()
	text := emptyLabel
	if label != "" {
		text = strings.ReplaceAll(url.QueryEscape(label), "+", "%20")
	}
	return fmt.Sprintf("%s/%dx%d/%s/%s?text=%s", r.base, px, px, background, foreground, text)
}

// URL usa el servicio por defecto.
func URL(label string, size Size) string {
	return New("").URL(label, size)
}
