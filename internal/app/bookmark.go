package app

import (
	"fmt"
	"time"
)

// Bookmark marks a single ayah. Bookmarks are identified by the composite
// key "{surah}:{ayah}" and are unique within the collection.
type Bookmark struct {
	SurahID   int
	AyahID    int
	SurahName string // denormalized for display
	CreatedAt time.Time
}

// ID returns the composite bookmark key.
func (b Bookmark) ID() string {
	return fmt.Sprintf("%d:%d", b.SurahID, b.AyahID)
}

// RecentSurah is the single remembered chapter.
// It is overwritten whenever a surah is opened.
type RecentSurah struct {
	SurahID   int       `json:"surah_id"`
	Name      string    `json:"name"`
	OpenedAt  time.Time `json:"opened_at"`
	LastAyah  int       `json:"last_ayah,omitempty"`
	AyahCount int       `json:"ayah_count,omitempty"`
}
