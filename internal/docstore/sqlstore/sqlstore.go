// Package sqlstore implements docstore.Collection on top of a SQL database.
// Every collection shares one documents table; fields are stored as JSON.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/notes-app/internal/docstore"
)

type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time

	stmtInsert *sql.Stmt
	stmtList   *sql.Stmt
	stmtUpdate *sql.Stmt
	stmtDelete *sql.Stmt
}

// New creates the documents table if needed and prepares the statements.
func New(ctx context.Context, db *sql.DB, d Dialect) (*Store, error) {
	if err := Migrate(ctx, db, d); err != nil {
		return nil, err
	}

	s := &Store{db: db, dialect: d, now: time.Now}

	var err error
	if s.stmtInsert, err = db.PrepareContext(ctx, d.insert); err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	if s.stmtList, err = db.PrepareContext(ctx, d.list); err != nil {
		s.Close()
		return nil, fmt.Errorf("prepare list: %w", err)
	}
	if s.stmtUpdate, err = db.PrepareContext(ctx, d.update); err != nil {
		s.Close()
		return nil, fmt.Errorf("prepare update: %w", err)
	}
	if s.stmtDelete, err = db.PrepareContext(ctx, d.delete); err != nil {
		s.Close()
		return nil, fmt.Errorf("prepare delete: %w", err)
	}
	return s, nil
}

// Migrate creates the documents table. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		return fmt.Errorf("%s: create documents table: %w", d.Name, err)
	}
	return nil
}

func (s *Store) Close() error {
	for _, st := range []*sql.Stmt{s.stmtInsert, s.stmtList, s.stmtUpdate, s.stmtDelete} {
		if st != nil {
			_ = st.Close()
		}
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, fields docstore.Fields) (docstore.Document, error) {
	if collection == "" {
		return docstore.Document{}, docstore.ErrNoCollection
	}
	if fields == nil {
		fields = docstore.Fields{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("encode fields: %w", err)
	}

	id := uuid.NewString()
	createdAt := s.now().UTC().Truncate(time.Microsecond)

	if _, err := s.stmtInsert.ExecContext(ctx, collection, id, string(raw), createdAt.UnixMicro()); err != nil {
		return docstore.Document{}, err
	}

	// Echo what was stored, decoded the same way ListAll decodes it.
	var echoed docstore.Fields
	if err := json.Unmarshal(raw, &echoed); err != nil {
		return docstore.Document{}, fmt.Errorf("decode fields: %w", err)
	}
	return docstore.Document{ID: id, Fields: echoed, CreatedAt: createdAt}, nil
}

func (s *Store) ListAll(ctx context.Context, collection string) ([]docstore.Document, error) {
	if collection == "" {
		return nil, docstore.ErrNoCollection
	}
	rows, err := s.stmtList.QueryContext(ctx, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *Store) UpdateFields(ctx context.Context, collection, id string, fields docstore.Fields) error {
	if collection == "" {
		return docstore.ErrNoCollection
	}
	if fields == nil {
		fields = docstore.Fields{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	res, err := s.stmtUpdate.ExecContext(ctx, string(raw), collection, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (s *Store) DeleteByID(ctx context.Context, collection, id string) error {
	if collection == "" {
		return docstore.ErrNoCollection
	}
	res, err := s.stmtDelete.ExecContext(ctx, collection, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	a, _ := res.RowsAffected()
	if a == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func scanDocuments(rows *sql.Rows) ([]docstore.Document, error) {
	out := make([]docstore.Document, 0, 32)
	for rows.Next() {
		var (
			d   docstore.Document
			raw []byte
			us  int64
		)
		if err := rows.Scan(&d.ID, &raw, &us); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &d.Fields); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", d.ID, err)
		}
		d.CreatedAt = time.UnixMicro(us).UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}
