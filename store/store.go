// Package store indexes reconstructed drawings in a SQLite database so the
// objects of many files can be queried together.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dhamidi/cadkit/cad"
	"github.com/tliron/commonlog"

	_ "modernc.org/sqlite"
)

var log = commonlog.GetLogger("cadkit.store")

type Store struct {
	db *sql.DB
}

// Open opens or creates the index at path. ":memory:" gives a private
// in-memory index.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serialises
	// writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		version TEXT,
		handle_seed TEXT,
		indexed_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS objects (
		document_id INTEGER NOT NULL,
		handle TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT,
		owner TEXT,
		layer TEXT,
		data JSON,
		PRIMARY KEY (document_id, handle),
		FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_objects_kind ON objects(kind);
	CREATE INDEX IF NOT EXISTS idx_objects_name ON objects(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Document is an indexed file.
type Document struct {
	ID         int64
	Path       string
	Version    string
	HandleSeed string
	IndexedAt  time.Time
	Objects    int
}

// Object is one indexed object of a document.
type Object struct {
	Path   string
	Handle string
	Kind   string
	Name   string
	Owner  string
	Layer  string
	Data   map[string]any
}

// Query selects objects. Empty fields match everything; Kind and Name
// compare case-insensitively.
type Query struct {
	Path  string
	Kind  string
	Name  string
	Limit int
}

// SaveDocument replaces the index of path with the objects of doc.
func (s *Store) SaveDocument(ctx context.Context, path string, doc *cad.Document) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path); err != nil {
		return 0, fmt.Errorf("delete previous index of %s: %w", path, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, version, handle_seed, indexed_at) VALUES (?, ?, ?, ?)`,
		path, stringToNull(doc.Header.Version), stringToNull(handleStr(doc.Header.HandleSeed)), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO objects (document_id, handle, kind, name, owner, layer, data) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	objs := doc.Objects()
	for _, o := range objs {
		row := describe(o)
		data, err := marshalToNull(row.Data)
		if err != nil {
			return 0, fmt.Errorf("marshal %s %s: %w", row.Kind, row.Handle, err)
		}
		if _, err := stmt.ExecContext(ctx, id, row.Handle, row.Kind,
			stringToNull(row.Name), stringToNull(row.Owner), stringToNull(row.Layer), data); err != nil {
			return 0, fmt.Errorf("insert %s %s: %w", row.Kind, row.Handle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	log.Infof("indexed %d objects of %s", len(objs), path)
	return id, nil
}

func (s *Store) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.path, d.version, d.handle_seed, d.indexed_at, COUNT(o.handle)
		FROM documents d LEFT JOIN objects o ON o.document_id = d.id
		GROUP BY d.id ORDER BY d.path`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			d             Document
			version, seed sql.NullString
			indexedAt     int64
		)
		if err := rows.Scan(&d.ID, &d.Path, &version, &seed, &indexedAt, &d.Objects); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.IndexedAt = time.Unix(indexedAt, 0)
		d.Version = nullToString(version)
		d.HandleSeed = nullToString(seed)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *Store) ListObjects(ctx context.Context, q Query) ([]Object, error) {
	var (
		where []string
		args  []any
	)
	if q.Path != "" {
		where = append(where, "d.path = ?")
		args = append(args, q.Path)
	}
	if q.Kind != "" {
		where = append(where, "o.kind = ? COLLATE NOCASE")
		args = append(args, q.Kind)
	}
	if q.Name != "" {
		where = append(where, "o.name = ? COLLATE NOCASE")
		args = append(args, q.Name)
	}

	query := `SELECT d.path, o.handle, o.kind, o.name, o.owner, o.layer, o.data
		FROM objects o JOIN documents d ON d.id = o.document_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// Handles are hex strings; order by length first to sort them
	// numerically.
	query += " ORDER BY d.path, length(o.handle), o.handle"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query objects: %w", err)
	}
	defer rows.Close()

	var objs []Object
	for rows.Next() {
		var (
			o                  Object
			name, owner, layer sql.NullString
			data               sql.NullString
		)
		if err := rows.Scan(&o.Path, &o.Handle, &o.Kind, &name, &owner, &layer, &data); err != nil {
			return nil, fmt.Errorf("scan object: %w", err)
		}
		o.Name = nullToString(name)
		o.Owner = nullToString(owner)
		o.Layer = nullToString(layer)
		if err := unmarshalJSONField(data, &o.Data); err != nil {
			return nil, fmt.Errorf("decode data of %s: %w", o.Handle, err)
		}
		objs = append(objs, o)
	}
	return objs, rows.Err()
}

// describe extracts the indexed columns of o.
func describe(o cad.Object) Object {
	row := Object{
		Handle: o.Handle().String(),
		Kind:   o.ObjectName(),
		Owner:  handleStr(cad.OwnerHandle(o)),
		Data:   map[string]any{},
	}
	switch o := o.(type) {
	case cad.TableEntry:
		row.Name = o.Name()
	case cad.AnyTable:
		row.Name = o.Name()
		row.Data["entries"] = o.Len()
	case *cad.BookColor:
		row.Name = o.Name
		row.Data["color"] = o.Color.String()
	}
	switch o := o.(type) {
	case *cad.Block:
		row.Name = o.Name
	case *cad.Insert:
		row.Name = o.BlockName
	case *cad.Layer:
		row.Data["color"] = o.Color.String()
		row.Data["off"] = o.Off
	}
	if e, ok := o.(cad.Entity); ok {
		base := cad.Base(e)
		row.Layer = base.LayerName()
		row.Data["lineType"] = base.LineTypeName()
		row.Data["color"] = base.Color.String()
	}
	return row
}

func handleStr(h cad.Handle) string {
	if h.IsZero() {
		return ""
	}
	return h.String()
}

func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func unmarshalJSONField(ns sql.NullString, target any) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), target)
}

// marshalToNull stores empty maps as NULL.
func marshalToNull(m map[string]any) (sql.NullString, error) {
	if len(m) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
