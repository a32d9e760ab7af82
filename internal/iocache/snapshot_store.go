package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SnapshotStoreImpl handles durable snapshot storage using various database backends.
type SnapshotStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore initializes and returns a new SnapshotStore based on the backend type.
func NewSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite snapshot store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL snapshot store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL snapshot store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SnapshotStoreImpl{
			db:      nil,
			backend: backend,
			connStr: connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", snapshotTable, err)
	}

	return &SnapshotStoreImpl{
		db:      db,
		backend: backend,
		connStr: connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// The payload column is text so one JSON document works across all backends.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dir VARCHAR(255) PRIMARY KEY,
				is_git BOOLEAN NOT NULL,
				branch TEXT,
				git_dirty BOOLEAN,
				payload MEDIUMTEXT NOT NULL,
				recorded_at BIGINT NOT NULL
			);
		`, snapshotTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dir TEXT PRIMARY KEY,
				is_git BOOLEAN NOT NULL,
				branch TEXT,
				git_dirty BOOLEAN,
				payload TEXT NOT NULL,
				recorded_at BIGINT NOT NULL
			);
		`, snapshotTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dir TEXT PRIMARY KEY,
				is_git INTEGER NOT NULL,
				branch TEXT,
				git_dirty INTEGER,
				payload TEXT NOT NULL,
				recorded_at INTEGER NOT NULL
			);
		`, snapshotTable)
	}
}

// Save upserts the latest snapshot for info.Dir.
func (ps *SnapshotStoreImpl) Save(info schema.RepoInfo, recordedAt time.Time) error {
	// Skip for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot for %s: %w", info.Dir, err)
	}

	var dirty *bool
	if info.Status != nil {
		dirty = info.Status.GitDirty
	}

	_, err = ps.db.Exec(ps.getUpsertQuery(),
		info.Dir, info.IsGit, info.Branch, dirty, string(payload), recordedAt.Unix())
	return err
}

// Load returns the stored snapshot row for a directory.
func (ps *SnapshotStoreImpl) Load(dir string) (schema.SnapshotRecord, error) {
	// Return not found error for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return schema.SnapshotRecord{}, sql.ErrNoRows
	}

	query := fmt.Sprintf(`SELECT dir, is_git, branch, git_dirty, payload, recorded_at FROM %s WHERE dir = %s`,
		snapshotTable, ps.getPlaceholder())
	return scanSnapshotRow(ps.db.QueryRow(query, dir))
}

// List returns all stored snapshot rows, most recent first.
func (ps *SnapshotStoreImpl) List() ([]schema.SnapshotRecord, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT dir, is_git, branch, git_dirty, payload, recorded_at FROM %s ORDER BY recorded_at DESC`, snapshotTable)
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []schema.SnapshotRecord
	for rows.Next() {
		rec, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows for a single scan.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSnapshotRow decodes one repo_snapshots row.
func scanSnapshotRow(row rowScanner) (schema.SnapshotRecord, error) {
	var rec schema.SnapshotRecord
	var branch sql.NullString
	var dirty sql.NullBool
	var payload string
	var ts int64

	if err := row.Scan(&rec.Dir, &rec.IsGit, &branch, &dirty, &payload, &ts); err != nil {
		return schema.SnapshotRecord{}, err
	}
	if branch.Valid {
		rec.Branch = &branch.String
	}
	if dirty.Valid {
		rec.GitDirty = &dirty.Bool
	}
	rec.Payload = []byte(payload)
	rec.RecordedAt = time.Unix(ts, 0)
	return rec, nil
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ps *SnapshotStoreImpl) getPlaceholder() string {
	switch ps.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *SnapshotStoreImpl) getUpsertQuery() string {
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dir, is_git, branch, git_dirty, payload, recorded_at) VALUES (?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE is_git = new.is_git, branch = new.branch, git_dirty = new.git_dirty, payload = new.payload, recorded_at = new.recorded_at`, snapshotTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dir, is_git, branch, git_dirty, payload, recorded_at) VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (dir) DO UPDATE SET is_git = EXCLUDED.is_git, branch = EXCLUDED.branch, git_dirty = EXCLUDED.git_dirty, payload = EXCLUDED.payload, recorded_at = EXCLUDED.recorded_at`, snapshotTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (dir, is_git, branch, git_dirty, payload, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`, snapshotTable)
	}
}

// Close closes the underlying DB connection.
func (ps *SnapshotStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the snapshot store.
func (ps *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	// Get total entries
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", snapshotTable)
	if err := ps.db.QueryRow(countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	// Get last entry time
	lastQuery := fmt.Sprintf("SELECT MAX(recorded_at) FROM %s", snapshotTable)
	var lastTs int64
	if err := ps.db.QueryRow(lastQuery).Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last entry time: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)

	// Get oldest entry time
	oldestQuery := fmt.Sprintf("SELECT MIN(recorded_at) FROM %s", snapshotTable)
	var oldestTs int64
	if err := ps.db.QueryRow(oldestQuery).Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest entry time: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	// Estimate table size (approximate)
	switch ps.backend {
	case schema.SQLiteBackend:
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		if err := ps.db.QueryRow(sizeQuery).Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}

	case schema.MySQLBackend:
		// Fallback rough estimate if information_schema query fails
		status.TableSizeBytes = int64(status.TotalEntries) * 1000

		cfg, err := mysql.ParseDSN(ps.connStr)
		if err != nil || cfg.DBName == "" {
			break
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		if err := ps.db.QueryRow(sizeQuery, cfg.DBName, snapshotTable).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = int64(status.TotalEntries) * 1000
		}

	case schema.PostgreSQLBackend:
		sizeQuery := "SELECT pg_total_relation_size($1)"
		if err := ps.db.QueryRow(sizeQuery, snapshotTable).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = int64(status.TotalEntries) * 1000 // Fallback rough estimate
		}

	default:
		status.TableSizeBytes = int64(status.TotalEntries) * 1000 // Rough estimate
	}

	return status, nil
}
