// Package ledger persists the relocation bookkeeping in the
// destination directory: one monotone sequence counter per owner and
// the provenance map from every assigned destination path back to its
// origin. The store outlives the process; counters are never reused,
// even across separate runs against the same destination.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Name is the store's filename inside the destination root.
const Name = "paths.db"

type Ledger struct {
	db *sql.DB
}

// Open initializes (or reuses) the ledger under destRoot. A ledger
// that cannot be opened is a fatal setup error for the whole run.
func Open(destRoot string) (*Ledger, error) {
	db, err := sql.Open("sqlite", filepath.Join(destRoot, Name))
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	// One pooled connection: pragmas below then apply to every
	// statement, and concurrent counter updates serialize here
	// instead of surfacing SQLITE_BUSY to callers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	l := &Ledger{db: db}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) initSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS owner_seq (
        uid  INTEGER PRIMARY KEY,
        next INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS provenance (
        uid  INTEGER NOT NULL,
        dest TEXT    NOT NULL,
        orig TEXT    NOT NULL,
        PRIMARY KEY (uid, dest)
);
`
	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("initialize ledger schema: %w", err)
	}
	return nil
}

// NextSeq atomically assigns the next zero-based sequence number for
// uid. This is the single serialization point per owner: the same
// value is never handed out twice for one uid over the lifetime of the
// store, concurrent callers included.
func (l *Ledger) NextSeq(ctx context.Context, uid uint32) (uint32, error) {
	const q = `
INSERT INTO owner_seq (uid, next) VALUES (?, 1)
ON CONFLICT (uid) DO UPDATE SET next = next + 1
RETURNING next - 1`

	var n int64
	if err := l.db.QueryRowContext(ctx, q, int64(uid)).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence for uid %d: %w", uid, err)
	}
	return uint32(n), nil
}

// RecordProvenance stores the mapping from an assigned destination
// path back to the original path, both in their encoded form. Entries
// are written once and never updated.
func (l *Ledger) RecordProvenance(ctx context.Context, uid uint32, destEnc, origEnc string) error {
	const q = `INSERT INTO provenance (uid, dest, orig) VALUES (?, ?, ?)`
	if _, err := l.db.ExecContext(ctx, q, int64(uid), destEnc, origEnc); err != nil {
		return fmt.Errorf("recording provenance for uid %d: %w", uid, err)
	}
	return nil
}

// Owners lists every uid with at least one provenance entry.
func (l *Ledger) Owners(ctx context.Context) ([]uint32, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT DISTINCT uid FROM provenance ORDER BY uid`)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	var uids []uint32
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}
		uids = append(uids, uint32(uid))
	}
	return uids, rows.Err()
}

// ProvenanceFor returns the full encoded-destination to encoded-origin
// map for one owner, across all runs recorded in this store.
func (l *Ledger) ProvenanceFor(ctx context.Context, uid uint32) (map[string]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT dest, orig FROM provenance WHERE uid = ?`, int64(uid))
	if err != nil {
		return nil, fmt.Errorf("loading provenance for uid %d: %w", uid, err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var dest, orig string
		if err := rows.Scan(&dest, &orig); err != nil {
			return nil, fmt.Errorf("scanning provenance for uid %d: %w", uid, err)
		}
		m[dest] = orig
	}
	return m, rows.Err()
}

// Flush forces the write-ahead log into the main database file so the
// run's effects survive a host crash right after exit.
func (l *Ledger) Flush() error {
	if _, err := l.db.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
		return fmt.Errorf("flushing ledger: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
