package vault

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Vault wraps a SQLite connection holding encoded records.
type Vault struct {
	conn *sqlx.DB
}

// row mirrors the records table; IDs and times are stored as text.
type row struct {
	ID        string  `db:"id"`
	Label     string  `db:"label"`
	Real      float64 `db:"re"`
	Imag      float64 `db:"im"`
	Base      int     `db:"base"`
	Count     int     `db:"sym_count"`
	Alphabet  string  `db:"alphabet"`
	CreatedAt string  `db:"created_at"`
}

// timeLayout is fixed-width so that created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = "SELECT id, label, re, im, base, sym_count, alphabet, created_at FROM records"

// Open opens or creates a vault at path.
func Open(path string) (*Vault, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}

	v := &Vault{conn: conn}
	if err := v.migrate(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	return v, nil
}

// Close closes the database connection.
func (v *Vault) Close() error {
	return v.conn.Close()
}

func (v *Vault) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		re REAL NOT NULL,
		im REAL NOT NULL,
		base INTEGER NOT NULL,
		sym_count INTEGER NOT NULL,
		alphabet TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_label ON records(label);
	CREATE INDEX IF NOT EXISTS idx_records_created ON records(created_at);
	`
	_, err := v.conn.Exec(schema)
	return err
}

// Put stores rec. A nil ID gets a fresh UUID and a zero CreatedAt gets the
// current time; the stored record is returned.
func (v *Vault) Put(ctx context.Context, rec Record) (Record, error) {
	if err := rec.validate(); err != nil {
		return Record{}, errors.Wrapf(err, "put %q", rec.Label)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	_, err := v.conn.NamedExecContext(ctx, `INSERT INTO records
		(id, label, re, im, base, sym_count, alphabet, created_at)
		VALUES (:id, :label, :re, :im, :base, :sym_count, :alphabet, :created_at)`,
		toRow(rec),
	)
	if err != nil {
		return Record{}, errors.Wrapf(err, "insert record %s", rec.ID)
	}

	return rec, nil
}

// Get returns the record with the given ID.
func (v *Vault) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var r row
	err := v.conn.GetContext(ctx, &r, selectColumns+" WHERE id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "get record %s", id)
	}

	return r.record()
}

// Find returns the newest record carrying label.
func (v *Vault) Find(ctx context.Context, label string) (Record, error) {
	var r row
	err := v.conn.GetContext(ctx, &r,
		selectColumns+" WHERE label = ? ORDER BY created_at DESC, rowid DESC LIMIT 1", label)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, errors.Wrapf(ErrNotFound, "label %q", label)
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "find record %q", label)
	}

	return r.record()
}

// List returns up to limit records, newest first. limit <= 0 lists all.
func (v *Vault) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}

	var rows []row
	err := v.conn.SelectContext(ctx, &rows,
		selectColumns+" ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// Delete removes the record with the given ID.
func (v *Vault) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := v.conn.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id.String())
	if err != nil {
		return errors.Wrapf(err, "delete record %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete record %s", id)
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}

	return nil
}

func toRow(rec Record) row {
	return row{
		ID:        rec.ID.String(),
		Label:     rec.Label,
		Real:      rec.Real,
		Imag:      rec.Imag,
		Base:      rec.Base,
		Count:     rec.Count,
		Alphabet:  rec.Alphabet,
		CreatedAt: rec.CreatedAt.Format(timeLayout),
	}
}

func (r row) record() (Record, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Record{}, errors.Wrapf(err, "record id %q", r.ID)
	}
	created, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return Record{}, errors.Wrapf(err, "record %s created_at", r.ID)
	}

	return Record{
		ID:        id,
		Label:     r.Label,
		Real:      r.Real,
		Imag:      r.Imag,
		Base:      r.Base,
		Count:     r.Count,
		Alphabet:  r.Alphabet,
		CreatedAt: created,
	}, nil
}
