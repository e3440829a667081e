package documentstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/database/postgres"
	"github.com/tiempos-pupi/tiempos-api/pkg/utils"
)

const documentsTable = "documents"

// PostgresStore implementa Store sobre una tabla única de documentos JSONB.
type PostgresStore struct {
	conn *postgres.Connection
}

func NewPostgresStore(conn *postgres.Connection) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// EnsureSchema crea la tabla de documentos si todavía no existe.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("error al crear la tabla de documentos: %w", err)
	}

	return nil
}

func (s *PostgresStore) GetDocument(ctx context.Context, collection, id string) (Document, error) {
	query, args, err := squirrel.
		Select("data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var raw []byte
	err = s.conn.QueryRow(query, args...).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al leer el documento %s/%s: %w", collection, id, err)
	}

	doc := make(Document)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error al deserializar el documento %s/%s: %w", collection, id, err)
	}

	return doc, nil
}

func (s *PostgresStore) SetDocument(ctx context.Context, collection, id string, patch Document, merge bool) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("error al serializar el documento: %w", err)
	}

	// Con merge, el operador || de JSONB reemplaza solo las claves de primer
	// nivel presentes en el parche
	conflictUpdate := "data = EXCLUDED.data"
	if merge {
		conflictUpdate = "data = documents.data || EXCLUDED.data"
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, raw).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (collection, id) DO UPDATE SET
				%s,
				updated_at = NOW()
		`, conflictUpdate)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = s.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al escribir el documento %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *PostgresStore) ListDocuments(ctx context.Context, collection string) ([]Entry, error) {
	query, args, err := squirrel.
		Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar la colección %s: %w", collection, err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("error al escanear el documento: %w", err)
		}

		doc := make(Document)
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("error al deserializar el documento %s/%s: %w", collection, id, err)
		}

		entries = append(entries, Entry{ID: id, Data: doc})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return entries, nil
}

func (s *PostgresStore) AddDocument(ctx context.Context, collection string, doc Document) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("error al generar el ID del documento: %w", err)
	}

	if err := s.SetDocument(ctx, collection, id, doc, false); err != nil {
		return "", err
	}

	return id, nil
}

func (s *PostgresStore) DeleteDocument(ctx context.Context, collection, id string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	if _, err := s.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al borrar el documento %s/%s: %w", collection, id, err)
	}

	return nil
}
