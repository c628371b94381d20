// Package catalog records the commits emitted during a conversion run in a
// SQLite database, for inspection after the fact.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS commits (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	hash      TEXT NOT NULL,
	message   TEXT NOT NULL,
	node_name TEXT NOT NULL,
	author_at DATETIME NOT NULL,
	checksum  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_commits_node ON commits(node_name);
`

// Log defines the interface for commit recording. Consumers should depend on
// this interface rather than the concrete *DB type to facilitate testing.
type Log interface {
	Record(r Row) error
	List() ([]Row, error)
	ByNode(name string) ([]Row, error)
	Close() error
}

// Verify *DB satisfies Log at compile time.
var _ Log = (*DB)(nil)

// DB wraps a sql.DB with catalog-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Row represents one recorded commit.
type Row struct {
	Seq      int64
	Hash     string
	Message  string
	NodeName string
	AuthorAt time.Time
	Checksum string
}

// Record appends one commit row. Rows arrive in commit order, so seq order
// is timeline order.
func (db *DB) Record(r Row) error {
	_, err := db.conn.Exec(`
		INSERT INTO commits (hash, message, node_name, author_at, checksum)
		VALUES (?, ?, ?, ?, ?)
	`, r.Hash, r.Message, r.NodeName, r.AuthorAt, r.Checksum)
	if err != nil {
		return fmt.Errorf("catalog: record commit: %w", err)
	}
	return nil
}

// List returns every recorded commit in emission order.
func (db *DB) List() ([]Row, error) {
	return db.query(`SELECT seq, hash, message, node_name, author_at, checksum FROM commits ORDER BY seq`)
}

// ByNode returns the commits triggered by the named node, in emission order.
func (db *DB) ByNode(name string) ([]Row, error) {
	return db.query(`SELECT seq, hash, message, node_name, author_at, checksum FROM commits WHERE node_name = ? ORDER BY seq`, name)
}

func (db *DB) query(q string, args ...any) ([]Row, error) {
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Seq, &r.Hash, &r.Message, &r.NodeName, &r.AuthorAt, &r.Checksum); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
