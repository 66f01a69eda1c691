package testutil

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/icrowley/fake"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/storage"
)

// Factory creates test objects in storage.
type Factory struct {
	st      *storage.Storage
	ayahSeq atomic.Int64
}

func NewFactory(st *storage.Storage) *Factory {
	return &Factory{st: st}
}

func (f *Factory) RandomTime() time.Time {
	hours := time.Duration(rand.IntN(10_000))
	seconds := time.Duration(rand.IntN(3600))
	d := hours*time.Hour + seconds*time.Second
	return time.Now().Add(-d).UTC()
}

// CreateBookmark creates and returns a new bookmark. Zero fields are filled
// with generated values so that ids never collide.
func (f *Factory) CreateBookmark(args ...app.Bookmark) app.Bookmark {
	var b app.Bookmark
	if len(args) > 0 {
		b = args[0]
	}
	if b.SurahID == 0 {
		b.SurahID = int(1 + rand.IntN(114))
	}
	if b.AyahID == 0 {
		b.AyahID = int(f.ayahSeq.Add(1))
	}
	if b.SurahName == "" {
		b.SurahName = fake.Word()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = f.RandomTime()
	}
	if err := f.st.CreateBookmark(context.Background(), b); err != nil {
		panic(err)
	}
	return b
}
