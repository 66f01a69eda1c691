package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (st *Storage) GetDictEntry(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	row := st.db.QueryRowContext(ctx, "SELECT value FROM dictionary WHERE key = ?", key)
	err := row.Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get dict entry %s: %w", key, err)
	}
	return v, true, nil
}

func (st *Storage) DeleteDictEntry(ctx context.Context, key string) error {
	_, err := st.db.ExecContext(ctx, "DELETE FROM dictionary WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete dict entry %s: %w", key, err)
	}
	return nil
}

func (st *Storage) SetDictEntry(ctx context.Context, key string, bb []byte) error {
	_, err := st.db.ExecContext(
		ctx,
		"INSERT INTO dictionary (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = ?",
		key, bb, bb,
	)
	if err != nil {
		return fmt.Errorf("set dict entry %s: %w", key, err)
	}
	return nil
}
