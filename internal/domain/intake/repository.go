package intake

import (
	"context"
	"io"
)

// Repository es el registro append-only de presentaciones. No hay update ni delete.
type Repository interface {
	Append(ctx context.Context, r Record) error
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}

type ListFilter struct {
	CustomerNo string // vacío = todos
	Limit      int    // <= 0 = sin límite
}

// Imager normaliza fotos. Lo implementa adapters/imaging.
type Imager interface {
	// Check confirma que la foto existe, tiene extensión soportada y decodifica.
	Check(path string) error
	// Encode decodifica src y escribe en w la versión normalizada según ext (".jpg", ".png", ...).
	Encode(src string, w io.Writer, ext string) error
}
