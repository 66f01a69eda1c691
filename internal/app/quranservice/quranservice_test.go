package quranservice_test

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/app/quranservice"
)

func TestChapters(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()
	s := quranservice.New(quranservice.Params{})
	t.Run("can fetch chapters", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://api.quran.com/api/v4/chapters?language=en",
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"chapters": []map[string]any{
					{
						"id":               1,
						"revelation_place": "makkah",
						"name_simple":      "Al-Fatihah",
						"name_arabic":      "الفاتحة",
						"verses_count":     7,
						"translated_name":  map[string]any{"name": "The Opener"},
					},
				},
			}),
		)
		// when
		got, err := s.Chapters(ctx, "en")
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got, 1)
			assert.Equal(t, 1, got[0].ID)
			assert.Equal(t, "Al-Fatihah", got[0].Name)
			assert.Equal(t, "The Opener", got[0].TranslatedName)
			assert.Equal(t, 7, got[0].VersesCount)
		}
	})
	t.Run("reports error on failed request", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://api.quran.com/api/v4/chapters?language=en",
			httpmock.NewStringResponder(500, "boom"),
		)
		_, err := s.Chapters(ctx, "en")
		assert.Error(t, err)
	})
}

func TestVerses(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()
	s := quranservice.New(quranservice.Params{})
	t.Run("can fetch a page of verses with translations", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://api\.quran\.com/api/v4/verses/by_chapter/2\b`,
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"verses": []map[string]any{
					{
						"id":           262,
						"verse_number": 255,
						"verse_key":    "2:255",
						"text_uthmani": "ٱللَّهُ لَآ إِلَـٰهَ إِلَّا هُوَ",
						"translations": []map[string]any{
							{"resource_id": 131, "text": "Allah! There is no god except Him"},
						},
					},
				},
				"pagination": map[string]any{"current_page": 1, "total_pages": 29},
			}),
		)
		// when
		got, err := s.Verses(ctx, quranservice.VersesParams{
			SurahID:        2,
			Language:       "en",
			TranslationIDs: []int{131},
			Page:           1,
		})
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got.Verses, 1)
			assert.Equal(t, "2:255", got.Verses[0].VerseKey)
			assert.Equal(t, 255, got.Verses[0].VerseNumber)
			assert.Len(t, got.Verses[0].Translations, 1)
			assert.Equal(t, 131, got.Verses[0].Translations[0].ResourceID)
			assert.Equal(t, 1, got.CurrentPage)
			assert.Equal(t, 29, got.TotalPages)
			assert.True(t, got.HasNext())
		}
	})
}

func TestTranslationResources(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	s := quranservice.New(quranservice.Params{})
	httpmock.RegisterResponder(
		"GET",
		"https://api.quran.com/api/v4/resources/translations?language=en",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"translations": []map[string]any{
				{"id": 131, "name": "The Clear Quran", "author_name": "Dr. Mustafa Khattab", "language_name": "english"},
			},
		}),
	)
	got, err := s.TranslationResources(context.Background(), "en")
	if assert.NoError(t, err) {
		assert.Len(t, got, 1)
		assert.Equal(t, 131, got[0].ID)
		assert.Equal(t, "english", got[0].Language)
	}
}

func TestAudioURL(t *testing.T) {
	t.Run("derives URL from reciter path and verse identity", func(t *testing.T) {
		r := quranservice.ReciterByID(2)
		got := quranservice.AudioURL(r, 2, 1)
		assert.Equal(t, "https://everyayah.com/data/Alafasy_64kbps/002001.mp3", got)
	})
	t.Run("pads surah and ayah numbers to three digits", func(t *testing.T) {
		r := quranservice.ReciterByID(2)
		got := quranservice.AudioURL(r, 114, 6)
		assert.Equal(t, "https://everyayah.com/data/Alafasy_64kbps/114006.mp3", got)
	})
	t.Run("unknown reciter id falls back to the first catalog entry", func(t *testing.T) {
		r := quranservice.ReciterByID(999)
		assert.Equal(t, quranservice.Reciters()[0], r)
	})
}

func TestTafsir(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()
	s := quranservice.New(quranservice.Params{})
	t.Run("can fetch a tafsir and strips its markup", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://api.quran.com/api/v4/tafsirs/169/by_ayah/2:255",
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"tafsir": map[string]any{
					"resource_id":   169,
					"resource_name": "Tafsir Ibn Kathir",
					"text":          "<h2>Ayat Al-Kursi</h2><p>This is the greatest &amp; most virtuous ayah.</p>",
				},
			}),
		)
		// when
		got, err := s.Tafsir(ctx, 169, "2:255")
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, 169, got.ResourceID)
			assert.Equal(t, "Tafsir Ibn Kathir", got.ResourceName)
			assert.Equal(t, "2:255", got.VerseKey)
			assert.Equal(t, "Ayat Al-KursiThis is the greatest & most virtuous ayah.", got.Text)
		}
	})
	t.Run("reports error on failed request", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://api.quran.com/api/v4/tafsirs/169/by_ayah/2:255",
			httpmock.NewStringResponder(500, "boom"),
		)
		_, err := s.Tafsir(ctx, 169, "2:255")
		assert.Error(t, err)
	})
}

func TestSearch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()
	s := quranservice.New(quranservice.Params{})
	t.Run("can search and strips highlight markup", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://api\.quran\.com/api/v4/search\b`,
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"search": map[string]any{
					"results": []map[string]any{
						{"verse_key": "55:13", "text": "which of your Lord's <em>favors</em> will you both deny"},
					},
				},
			}),
		)
		// when
		got, err := s.Search(ctx, "favors", "en", 1)
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got, 1)
			assert.Equal(t, "55:13", got[0].VerseKey)
			assert.Equal(t, "which of your Lord's favors will you both deny", got[0].Text)
		}
	})
	t.Run("reports error on failed request", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://api\.quran\.com/api/v4/search\b`,
			httpmock.NewStringResponder(500, "boom"),
		)
		_, err := s.Search(ctx, "favors", "en", 1)
		assert.Error(t, err)
	})
}
