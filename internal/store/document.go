package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mentorai/internal/document"
)

// documentRepo implements DocumentRepo on the documents table.
type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) SaveDocument(ctx context.Context, doc *document.Document) error {
	query, args := builder().
		Insert(documentTable.Name).
		Columns("name", "type", "text", "word_count", "char_count", "page_count", "uploaded_at").
		Values(doc.Name, doc.Type, doc.Text, doc.WordCount, doc.CharCount, doc.PageCount, doc.UploadedAt.UTC()).
		OnConflict(entsql.ConflictColumns("name"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save document %q: %w", doc.Name, err)
	}
	return nil
}

func (r *documentRepo) GetDocument(ctx context.Context, name string) (*document.Document, error) {
	query, args := builder().
		Select("name", "type", "text", "word_count", "char_count", "page_count", "uploaded_at").
		From(entsql.Table(documentTable.Name)).
		Where(entsql.EQ("name", name)).
		Query()

	var d document.Document
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&d.Name, &d.Type, &d.Text, &d.WordCount, &d.CharCount, &d.PageCount, &d.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document %q: %w", name, err)
	}
	return &d, nil
}

func (r *documentRepo) ListDocuments(ctx context.Context) ([]document.Document, error) {
	query, args := builder().
		Select("name", "type", "word_count", "char_count", "page_count", "uploaded_at").
		From(entsql.Table(documentTable.Name)).
		OrderBy("uploaded_at", "id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []document.Document
	for rows.Next() {
		var d document.Document
		if err := rows.Scan(&d.Name, &d.Type, &d.WordCount, &d.CharCount, &d.PageCount, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentRepo) DeleteDocument(ctx context.Context, name string) (bool, error) {
	query, args := builder().
		Delete(documentTable.Name).
		Where(entsql.EQ("name", name)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete document %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
