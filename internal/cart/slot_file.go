package cart

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot guarda cada clave en un archivo del directorio dir. El nombre del archivo
// es la clave en base64url, así cualquier clave es un nombre válido.
type FileSlot struct {
	dir string
}

// NewFileSlot crea el directorio si no existe.
func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio del carrito: %w", err)
	}
	return &FileSlot{dir: dir}, nil
}

func (f *FileSlot) path(key string) string {
	return filepath.Join(f.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+".json")
}

// Get devuelve ok=false si el archivo no existe.
func (f *FileSlot) Get(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leer carrito: %w", err)
	}
	return string(b), true, nil
}

// Set escribe en un temporal y lo renombra: un lector nunca ve un archivo a medias.
func (f *FileSlot) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(f.dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir carrito: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("renombrar carrito: %w", err)
	}
	return nil
}
