package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/storage"
	"github.com/alfurqan/alfurqan/internal/app/storage/testutil"
)

func TestBookmark(t *testing.T) {
	db, st, factory := testutil.New()
	defer db.Close()
	ctx := context.Background()
	t.Run("can create and get a bookmark", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		b := app.Bookmark{
			SurahID:   2,
			AyahID:    255,
			SurahName: "Al-Baqarah",
			CreatedAt: time.Now().UTC(),
		}
		// when
		err := st.CreateBookmark(ctx, b)
		// then
		if assert.NoError(t, err) {
			got, err := st.GetBookmark(ctx, "2:255")
			if assert.NoError(t, err) {
				assert.Equal(t, 2, got.SurahID)
				assert.Equal(t, 255, got.AyahID)
				assert.Equal(t, "Al-Baqarah", got.SurahName)
			}
		}
	})
	t.Run("creating a duplicate id is an error", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		b := factory.CreateBookmark()
		// when
		err := st.CreateBookmark(ctx, b)
		// then
		assert.Error(t, err)
	})
	t.Run("can delete a bookmark", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		b := factory.CreateBookmark()
		// when
		err := st.DeleteBookmark(ctx, b.ID())
		// then
		if assert.NoError(t, err) {
			_, err := st.GetBookmark(ctx, b.ID())
			assert.ErrorIs(t, err, storage.ErrNotFound)
		}
	})
	t.Run("deleting a missing bookmark is not an error", func(t *testing.T) {
		testutil.TruncateTables(db)
		assert.NoError(t, st.DeleteBookmark(ctx, "1:1"))
	})
	t.Run("list returns bookmarks in insertion order", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		b1 := factory.CreateBookmark(app.Bookmark{SurahID: 114, AyahID: 1})
		b2 := factory.CreateBookmark(app.Bookmark{SurahID: 1, AyahID: 5})
		b3 := factory.CreateBookmark(app.Bookmark{SurahID: 18, AyahID: 10})
		// when
		got, err := st.ListBookmarks(ctx)
		// then
		if assert.NoError(t, err) {
			ids := make([]string, 0)
			for _, b := range got {
				ids = append(ids, b.ID())
			}
			assert.Equal(t, []string{b1.ID(), b2.ID(), b3.ID()}, ids)
		}
	})
	t.Run("get reports not found", func(t *testing.T) {
		testutil.TruncateTables(db)
		_, err := st.GetBookmark(ctx, "99:99")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}
