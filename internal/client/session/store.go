// Package session persists the authenticated identity across client
// restarts: the bearer token and the user record, in a small sqlite
// key-value table. Absence of either means the client starts
// unauthenticated.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/paperdock/paperdock/internal/client/models"
	"github.com/paperdock/paperdock/internal/dbx"

	_ "modernc.org/sqlite"
)

// Fixed storage keys. The user record is stored as JSON.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the durable session storage used by the controller.
type Store interface {
	// Load returns the persisted session. ok is false when no complete
	// session (token and user) is stored.
	Load(ctx context.Context) (s models.Session, ok bool, err error)

	// Save persists the session atomically, replacing any previous one.
	Save(ctx context.Context, s models.Session) error

	// Clear removes all persisted session state.
	Clear(ctx context.Context) error

	Close() error
}

// SQLiteStore keeps session state in a metadata(key, value) table.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at dsn and ensures
// the schema exists.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Session, bool, error) {
	var sess models.Session

	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return sess, false, err
	}
	userRaw, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return sess, false, err
	}
	if len(token) == 0 || len(userRaw) == 0 {
		return sess, false, nil
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		// A corrupt user record is treated as no session; the user can
		// log in again.
		return sess, false, nil
	}

	sess = models.Session{Token: string(token), User: user}
	return sess, sess.Valid(), nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, userRaw)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
