package entity

import "time"

// Category representa una categoría del directorio (Horeca, Winkels, ...).
// Inmutable una vez creada.
type Category struct {
	ID          string
	Name        string  // etiqueta única
	Description *string // opcional
	Icon        *string // glifo opcional (emoji)
	CreatedAt   time.Time
}
