package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQL stores the snapshot as one row in a snapshot table.  The whole
// booking state travels as a single JSON blob; there is no per-entity
// schema because the in-memory snapshot stays the source of truth.
type MySQL struct {
	db *sql.DB
}

// NewMySQL connects to MySQL, verifies the connection and ensures the
// snapshot table exists.
func NewMySQL(user, pass, host, port, name string) (*MySQL, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	const ddl = `CREATE TABLE IF NOT EXISTS booking_snapshots (
		id TINYINT UNSIGNED NOT NULL PRIMARY KEY,
		data MEDIUMBLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, err
	}
	return &MySQL{db: db}, nil
}

// Load reads the snapshot row.  An empty table maps to ErrNoData.
func (m *MySQL) Load(ctx context.Context) ([]byte, error) {
	const q = `SELECT data FROM booking_snapshots WHERE id = 1`
	var data []byte
	if err := m.db.QueryRowContext(ctx, q).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return data, nil
}

// Save upserts the single snapshot row.
func (m *MySQL) Save(ctx context.Context, data []byte) error {
	const q = `INSERT INTO booking_snapshots (id, data) VALUES (1, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)`
	_, err := m.db.ExecContext(ctx, q, data)
	return err
}
