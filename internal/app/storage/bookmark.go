package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alfurqan/alfurqan/internal/app"
)

// CreateBookmark stores a new bookmark.
// Storing a bookmark with an existing id is an error.
func (st *Storage) CreateBookmark(ctx context.Context, b app.Bookmark) error {
	_, err := st.db.ExecContext(
		ctx,
		"INSERT INTO bookmarks (id, surah_id, ayah_id, surah_name, created_at) VALUES (?, ?, ?, ?, ?)",
		b.ID(), b.SurahID, b.AyahID, b.SurahName, b.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create bookmark %s: %w", b.ID(), err)
	}
	return nil
}

// DeleteBookmark removes a bookmark by id.
// Deleting a bookmark which does not exist is not an error.
func (st *Storage) DeleteBookmark(ctx context.Context, id string) error {
	_, err := st.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete bookmark %s: %w", id, err)
	}
	return nil
}

// GetBookmark returns a bookmark by id.
func (st *Storage) GetBookmark(ctx context.Context, id string) (app.Bookmark, error) {
	var b app.Bookmark
	row := st.db.QueryRowContext(
		ctx,
		"SELECT surah_id, ayah_id, surah_name, created_at FROM bookmarks WHERE id = ?",
		id,
	)
	err := row.Scan(&b.SurahID, &b.AyahID, &b.SurahName, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return b, fmt.Errorf("get bookmark %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return b, fmt.Errorf("get bookmark %s: %w", id, err)
	}
	return b, nil
}

// ListBookmarks returns all bookmarks in insertion order.
func (st *Storage) ListBookmarks(ctx context.Context) ([]app.Bookmark, error) {
	rows, err := st.db.QueryContext(
		ctx,
		"SELECT surah_id, ayah_id, surah_name, created_at FROM bookmarks ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()
	bb := make([]app.Bookmark, 0)
	for rows.Next() {
		var b app.Bookmark
		if err := rows.Scan(&b.SurahID, &b.AyahID, &b.SurahName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("list bookmarks: %w", err)
		}
		bb = append(bb, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bb, nil
}
