package quranservice

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alfurqan/alfurqan/internal/app"
)

// The API returns tafsir and search texts with HTML markup.
var htmlPolicy = bluemonday.StrictPolicy()

func stripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlPolicy.Sanitize(s)))
}

// TranslationResources returns the available translations of the Quran.
func (s *QuranService) TranslationResources(ctx context.Context, language string) ([]app.TranslationResource, error) {
	payload, err := getJSON[struct {
		Translations []struct {
			ID           int    `json:"id"`
			Name         string `json:"name"`
			AuthorName   string `json:"author_name"`
			LanguageName string `json:"language_name"`
		} `json:"translations"`
	}](ctx, s, "/resources/translations?language="+language)
	if err != nil {
		return nil, fmt.Errorf("fetch translation resources: %w", err)
	}
	rr := make([]app.TranslationResource, 0, len(payload.Translations))
	for _, x := range payload.Translations {
		rr = append(rr, app.TranslationResource{
			ID:         x.ID,
			Name:       x.Name,
			AuthorName: x.AuthorName,
			Language:   x.LanguageName,
		})
	}
	return rr, nil
}

// Tafsir returns the commentary of one tafsir resource for a single verse.
func (s *QuranService) Tafsir(ctx context.Context, resourceID int, verseKey string) (app.Tafsir, error) {
	path := fmt.Sprintf("/tafsirs/%d/by_ayah/%s", resourceID, verseKey)
	payload, err := getJSON[struct {
		Tafsir struct {
			ResourceID   int    `json:"resource_id"`
			ResourceName string `json:"resource_name"`
			Text         string `json:"text"`
		} `json:"tafsir"`
	}](ctx, s, path)
	if err != nil {
		return app.Tafsir{}, fmt.Errorf("fetch tafsir %d for %s: %w", resourceID, verseKey, err)
	}
	return app.Tafsir{
		ResourceID:   payload.Tafsir.ResourceID,
		ResourceName: payload.Tafsir.ResourceName,
		VerseKey:     verseKey,
		Text:         stripHTML(payload.Tafsir.Text),
	}, nil
}

// Search performs a full text search over the verses.
func (s *QuranService) Search(ctx context.Context, query, language string, page int) ([]app.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	v := url.Values{}
	v.Set("q", query)
	v.Set("language", language)
	v.Set("page", strconv.Itoa(page))
	payload, err := getJSON[struct {
		Search struct {
			Results []struct {
				VerseKey string `json:"verse_key"`
				Text     string `json:"text"`
			} `json:"results"`
		} `json:"search"`
	}](ctx, s, "/search?"+v.Encode())
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	rr := make([]app.SearchResult, 0, len(payload.Search.Results))
	for _, x := range payload.Search.Results {
		rr = append(rr, app.SearchResult{VerseKey: x.VerseKey, Text: stripHTML(x.Text)})
	}
	return rr, nil
}
