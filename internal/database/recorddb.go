package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/f1scraper/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "f1scraper.db"

// ErrTableNotFound is returned when no stored table has the requested ID.
var ErrTableNotFound = errors.New("table not found")

// RecordDB provides SQLite-based storage for decoded result tables.
type RecordDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// now returns the scrape timestamp. Replaced in tests.
	now func() time.Time
}

// Options configures RecordDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RecordDB in dbDir.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*RecordDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (run with --save first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RecordDB{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Path returns the database file path.
func (rdb *RecordDB) Path() string {
	return rdb.dbPath
}

// Close closes the database connection.
func (rdb *RecordDB) Close() error {
	return rdb.db.Close()
}

func (rdb *RecordDB) createTables() error {
	schema := `
	-- One row per emitted table
	CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		kind TEXT NOT NULL,
		page TEXT NOT NULL,
		entity_slug TEXT NOT NULL DEFAULT '',
		entity_name TEXT NOT NULL DEFAULT '',
		entity_json TEXT,
		title TEXT NOT NULL,
		header_json TEXT,
		scraped_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_pages_year ON pages(year);
	CREATE INDEX IF NOT EXISTS idx_pages_kind ON pages(kind, page);

	-- Decoded rows of a page, fields kept in column order
	CREATE TABLE IF NOT EXISTS records (
		table_id INTEGER NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
		row_index INTEGER NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		fields_json TEXT NOT NULL,
		PRIMARY KEY (table_id, row_index)
	);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// TableWriter saves every written table under the context it was created
// with. It lets the database sit behind report.MultiWriter next to the
// terminal output.
type TableWriter struct {
	ctx context.Context
	rdb *RecordDB
}

// Writer returns a TableWriter bound to ctx. Once ctx is done every Write
// fails without touching the database.
func (rdb *RecordDB) Writer(ctx context.Context) *TableWriter {
	return &TableWriter{ctx: ctx, rdb: rdb}
}

// Write stores the table and reports the number of records saved.
func (w *TableWriter) Write(table *model.Table) (int, error) {
	if _, err := w.rdb.SaveTable(w.ctx, table); err != nil {
		return 0, err
	}
	return len(table.Records), nil
}

// SaveTable stores the table and its records in one transaction and returns
// the new table ID.
func (rdb *RecordDB) SaveTable(ctx context.Context, table *model.Table) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var slug, name string
	var entityJSON, headerJSON sql.NullString

	if table.Fragment != nil {
		slug = table.Fragment.InternalName()
		name = table.Fragment.Label()
		data, err := json.Marshal(table.Fragment)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize entity: %w", err)
		}
		entityJSON = sql.NullString{String: string(data), Valid: true}
	}
	if len(table.Header) > 0 {
		data, err := json.Marshal(table.Header)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize header: %w", err)
		}
		headerJSON = sql.NullString{String: string(data), Valid: true}
	}

	tx, err := rdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
	INSERT INTO pages (year, kind, page, entity_slug, entity_name, entity_json, title, header_json, scraped_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		table.Year,
		table.Kind.String(),
		table.Page.String(),
		slug,
		name,
		entityJSON,
		table.Title(),
		headerJSON,
		rdb.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert table: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get table id: %w", err)
	}

	for i, rec := range table.Records {
		fieldsJSON, err := json.Marshal(rec.Fields)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize row %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (table_id, row_index, link, fields_json) VALUES (?, ?, ?, ?)`,
			id, i, rec.Link, string(fieldsJSON),
		); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit table: %w", err)
	}

	return id, nil
}

// TableMetadata contains summary information about a stored table.
// This is used for listing history without loading the records.
type TableMetadata struct {
	// ID is the unique identifier of the table in the database.
	ID int64

	Year int
	Kind model.Kind
	Page model.PageType

	// Title is the table title at the time it was stored.
	Title string

	// Rows is the number of stored records.
	Rows int

	// ScrapedAt is when the table was stored.
	ScrapedAt time.Time
}

// Filter narrows ListTables. Zero values match everything.
type Filter struct {
	Year int
	Kind string
	// Entity matches the entity slug or display name exactly.
	Entity string
}

// ListTables returns stored table metadata, newest first.
func (rdb *RecordDB) ListTables(ctx context.Context, filter Filter) ([]TableMetadata, error) {
	query := `
	SELECT t.id, t.year, t.kind, t.page, t.title, t.scraped_at,
		(SELECT COUNT(*) FROM records r WHERE r.table_id = t.id)
	FROM pages t
	WHERE 1=1
	`
	args := make([]any, 0)

	if filter.Year != 0 {
		query += " AND t.year = ?"
		args = append(args, filter.Year)
	}
	if filter.Kind != "" {
		query += " AND t.kind = ?"
		args = append(args, filter.Kind)
	}
	if filter.Entity != "" {
		query += " AND (t.entity_slug = ? OR t.entity_name = ?)"
		args = append(args, filter.Entity, filter.Entity)
	}

	query += " ORDER BY t.id DESC"

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var results []TableMetadata
	for rows.Next() {
		var meta TableMetadata
		var kind, page, scrapedAt string

		if err := rows.Scan(&meta.ID, &meta.Year, &kind, &page, &meta.Title, &scrapedAt, &meta.Rows); err != nil {
			return nil, fmt.Errorf("failed to scan table metadata: %w", err)
		}
		if meta.Kind, err = model.ParseKind(kind); err != nil {
			return nil, err
		}
		if meta.Page, err = model.ParsePageType(page); err != nil {
			return nil, err
		}
		meta.ScrapedAt = parseTimestamp(scrapedAt)

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetTable loads a stored table with its records.
// It returns ErrTableNotFound if no table has the given ID.
func (rdb *RecordDB) GetTable(ctx context.Context, id int64) (*model.Table, error) {
	var kind, page string
	var entityJSON, headerJSON sql.NullString
	table := &model.Table{}

	err := rdb.db.QueryRowContext(ctx,
		`SELECT year, kind, page, entity_json, header_json FROM pages WHERE id = ?`, id,
	).Scan(&table.Year, &kind, &page, &entityJSON, &headerJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTableNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	if table.Kind, err = model.ParseKind(kind); err != nil {
		return nil, err
	}
	if table.Page, err = model.ParsePageType(page); err != nil {
		return nil, err
	}
	if headerJSON.Valid {
		if err := json.Unmarshal([]byte(headerJSON.String), &table.Header); err != nil {
			return nil, fmt.Errorf("failed to parse header: %w", err)
		}
	}
	if entityJSON.Valid {
		if table.Fragment, err = decodeFragment(table.Kind, entityJSON.String); err != nil {
			return nil, err
		}
	}

	rows, err := rdb.db.QueryContext(ctx,
		`SELECT link, fields_json FROM records WHERE table_id = ? ORDER BY row_index`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec := model.Record{
			Year:     table.Year,
			Kind:     table.Kind,
			Page:     table.Page,
			Fragment: table.Fragment,
		}
		var fieldsJSON string
		if err := rows.Scan(&rec.Link, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
			return nil, fmt.Errorf("failed to parse record: %w", err)
		}
		table.Records = append(table.Records, rec)
	}

	return table, rows.Err()
}

// decodeFragment restores the concrete fragment type for kind.
func decodeFragment(kind model.Kind, data string) (model.Fragment, error) {
	var f model.Fragment
	var err error

	switch kind {
	case model.KindRace:
		var c model.Circuit
		err = json.Unmarshal([]byte(data), &c)
		f = c
	case model.KindDriver:
		var d model.Driver
		err = json.Unmarshal([]byte(data), &d)
		f = d
	case model.KindTeam:
		var t model.Team
		err = json.Unmarshal([]byte(data), &t)
		f = t
	default:
		return nil, fmt.Errorf("stored entity for %s table", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse entity: %w", err)
	}

	return f, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
