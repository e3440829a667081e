// Package documentstore abstrae la base documental donde se guardan las
// semanas y sus datos. Sobre ella solo existen operaciones de documento:
// leer, escribir con merge, listar, agregar con ID generado y borrar.
package documentstore

import "context"

// Document es el contenido de un documento, con semántica JSON.
type Document map[string]any

// Entry es un documento junto con su ID dentro de la colección.
type Entry struct {
	ID   string
	Data Document
}

// Store es la interfaz de la base documental. Una escritura con merge
// reemplaza solo las claves de primer nivel presentes en el parche; el resto
// del documento queda intacto.
type Store interface {
	// GetDocument devuelve el documento o nil si no existe.
	GetDocument(ctx context.Context, collection, id string) (Document, error)

	// SetDocument escribe el documento. Con merge=true aplica el parche sobre
	// el contenido existente; con merge=false lo reemplaza completo.
	SetDocument(ctx context.Context, collection, id string, patch Document, merge bool) error

	// ListDocuments devuelve todos los documentos de la colección en orden de
	// creación.
	ListDocuments(ctx context.Context, collection string) ([]Entry, error)

	// AddDocument agrega un documento con un ID generado y lo devuelve.
	AddDocument(ctx context.Context, collection string, doc Document) (string, error)

	// DeleteDocument borra el documento. Borrar un documento inexistente no
	// es un error.
	DeleteDocument(ctx context.Context, collection, id string) error
}
