// Package userdata is the store for user created state,
// i.e. bookmarks and the recently opened surah.
//
// Every mutation persists its slice of state before the in-memory copy
// is updated, so both copies can not diverge after a mutation returns.
// Views subscribe to change signals instead of polling.
package userdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/maniartech/signals"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/storage"
)

const keyRecentSurah = "recent-surah"

// UserData is the store for user created state.
type UserData struct {
	// BookmarksChanged fires with the full collection after every
	// bookmark mutation.
	BookmarksChanged signals.Signal[[]app.Bookmark]
	// RecentChanged fires when the remembered surah is replaced.
	RecentChanged signals.Signal[app.RecentSurah]

	st *storage.Storage

	mu        sync.RWMutex
	bookmarks []app.Bookmark // insertion order
	recent    app.RecentSurah
	hasRecent bool
}

// New creates a new UserData store, loads the persisted state and returns it.
func New(ctx context.Context, st *storage.Storage) (*UserData, error) {
	u := &UserData{
		BookmarksChanged: signals.New[[]app.Bookmark](),
		RecentChanged:    signals.New[app.RecentSurah](),
		st:               st,
	}
	bb, err := st.ListBookmarks(ctx)
	if err != nil {
		return nil, err
	}
	u.bookmarks = bb
	v, ok, err := st.GetDictEntry(ctx, keyRecentSurah)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(v, &u.recent); err != nil {
			slog.Warn("Discarding unreadable recent surah entry", "error", err)
		} else {
			u.hasRecent = true
		}
	}
	return u, nil
}

// ToggleBookmark adds the bookmark when absent and removes it when present.
// Applying it twice with the same id restores the previous collection.
func (u *UserData) ToggleBookmark(ctx context.Context, b app.Bookmark) {
	u.mu.Lock()
	i := slices.IndexFunc(u.bookmarks, func(x app.Bookmark) bool {
		return x.ID() == b.ID()
	})
	if i >= 0 {
		if err := u.st.DeleteBookmark(ctx, b.ID()); err != nil {
			slog.Error("Failed to delete bookmark", "id", b.ID(), "error", err)
			u.mu.Unlock()
			return
		}
		u.bookmarks = slices.Delete(u.bookmarks, i, i+1)
	} else {
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
		if err := u.st.CreateBookmark(ctx, b); err != nil {
			slog.Error("Failed to create bookmark", "id", b.ID(), "error", err)
			u.mu.Unlock()
			return
		}
		u.bookmarks = append(u.bookmarks, b)
	}
	bb := slices.Clone(u.bookmarks)
	u.mu.Unlock()
	u.BookmarksChanged.Emit(ctx, bb)
}

// ListBookmarks returns all bookmarks in insertion order.
func (u *UserData) ListBookmarks() []app.Bookmark {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.bookmarks)
}

// IsBookmarked reports whether an ayah is bookmarked.
func (u *UserData) IsBookmarked(surahID, ayahID int) bool {
	id := app.Bookmark{SurahID: surahID, AyahID: ayahID}.ID()
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.ContainsFunc(u.bookmarks, func(x app.Bookmark) bool {
		return x.ID() == id
	})
}

// SetRecentSurah replaces the single remembered surah.
func (u *UserData) SetRecentSurah(ctx context.Context, r app.RecentSurah) {
	if r.OpenedAt.IsZero() {
		r.OpenedAt = time.Now().UTC()
	}
	v, err := json.Marshal(r)
	if err != nil {
		slog.Error("Failed to marshal recent surah", "error", err)
		return
	}
	u.mu.Lock()
	if err := u.st.SetDictEntry(ctx, keyRecentSurah, v); err != nil {
		slog.Error("Failed to persist recent surah", "error", err)
		u.mu.Unlock()
		return
	}
	u.recent = r
	u.hasRecent = true
	u.mu.Unlock()
	u.RecentChanged.Emit(ctx, r)
}

// SetLastPlayedAyah remembers the last played ayah of the remembered
// surah. Playing an ayah of another surah is ignored.
func (u *UserData) SetLastPlayedAyah(ctx context.Context, surahID, ayahID int) {
	u.mu.RLock()
	r, ok := u.recent, u.hasRecent
	u.mu.RUnlock()
	if !ok || r.SurahID != surahID {
		return
	}
	r.LastAyah = ayahID
	u.SetRecentSurah(ctx, r)
}

// RecentSurah returns the remembered surah and reports whether one exists.
func (u *UserData) RecentSurah() (app.RecentSurah, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.recent, u.hasRecent
}
