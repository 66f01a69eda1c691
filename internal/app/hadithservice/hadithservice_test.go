package hadithservice_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/app/hadithservice"
)

func TestBooks(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()
	s := hadithservice.New(hadithservice.Params{APIKey: "test-key"})
	t.Run("can fetch books", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://hadithapi\.com/api/books\b`,
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"books": []map[string]any{
					{
						"bookName":       "Sahih Bukhari",
						"writerName":     "Imam Bukhari",
						"bookSlug":       "sahih-bukhari",
						"hadiths_count":  "7563",
						"chapters_count": "99",
					},
				},
			}),
		)
		// when
		got, err := s.Books(ctx)
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got, 1)
			assert.Equal(t, "sahih-bukhari", got[0].Slug)
			assert.Equal(t, "Imam Bukhari", got[0].Author)
			assert.Equal(t, 7563, got[0].HadithCount)
			assert.Equal(t, 99, got[0].ChaptersCount)
		}
	})
	t.Run("sends the api key", func(t *testing.T) {
		// given
		httpmock.Reset()
		var gotKey string
		httpmock.RegisterResponder(
			"GET",
			`=~^https://hadithapi\.com/api/books\b`,
			func(req *http.Request) (*http.Response, error) {
				gotKey = req.URL.Query().Get("apiKey")
				return httpmock.NewJsonResponse(200, map[string]any{"books": []any{}})
			},
		)
		// when
		_, err := s.Books(ctx)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, "test-key", gotKey)
		}
	})
	t.Run("reports error on failed request", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://hadithapi\.com/api/books\b`,
			httpmock.NewStringResponder(401, "unauthorized"),
		)
		_, err := s.Books(ctx)
		assert.Error(t, err)
	})
}

func TestChapters(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	s := hadithservice.New(hadithservice.Params{APIKey: "test-key"})
	httpmock.RegisterResponder(
		"GET",
		`=~^https://hadithapi\.com/api/sahih-bukhari/chapters\b`,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"chapters": []map[string]any{
				{
					"id":             1,
					"chapterNumber":  "1",
					"chapterEnglish": "Revelation",
					"chapterArabic":  "كتاب بدء الوحى",
					"bookSlug":       "sahih-bukhari",
				},
			},
		}),
	)
	got, err := s.Chapters(context.Background(), "sahih-bukhari")
	if assert.NoError(t, err) {
		assert.Len(t, got, 1)
		assert.Equal(t, "Revelation", got[0].Name)
		assert.Equal(t, "sahih-bukhari", got[0].BookSlug)
	}
}

func TestHadiths(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	s := hadithservice.New(hadithservice.Params{APIKey: "test-key"})
	t.Run("can fetch a page of hadiths", func(t *testing.T) {
		// given
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			`=~^https://hadithapi\.com/api/hadiths\b`,
			httpmock.NewJsonResponderOrPanic(200, map[string]any{
				"hadiths": map[string]any{
					"current_page": 1,
					"last_page":    3,
					"data": []map[string]any{
						{
							"id":              1,
							"hadithNumber":    "1",
							"hadithEnglish":   "Actions are judged by intentions.",
							"hadithArabic":    "إنما الأعمال بالنيات",
							"englishNarrator": "Umar bin Al-Khattab",
							"status":          "Sahih",
							"bookSlug":        "sahih-bukhari",
							"chapterId":       "1",
						},
					},
				},
			}),
		)
		// when
		got, err := s.Hadiths(context.Background(), "sahih-bukhari", 1, 1)
		// then
		if assert.NoError(t, err) {
			assert.Len(t, got.Hadiths, 1)
			assert.Equal(t, "Sahih", got.Hadiths[0].Grade)
			assert.Equal(t, 1, got.Hadiths[0].ChapterID)
			assert.Equal(t, 1, got.CurrentPage)
			assert.Equal(t, 3, got.LastPage)
			assert.True(t, got.HasNext())
		}
	})
}
