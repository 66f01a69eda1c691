package quranservice

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/alfurqan/alfurqan/internal/app"
)

const versesPerPageDefault = 10

// VersesParams are the parameters for fetching a page of verses.
type VersesParams struct {
	SurahID        int
	Language       string
	TranslationIDs []int
	Page           int // 1-based, 0 means first page
	PerPage        int
}

// Verses returns one page of verses for a surah including the Arabic text
// and the requested translations.
func (s *QuranService) Verses(ctx context.Context, arg VersesParams) (app.VersePage, error) {
	if arg.Page < 1 {
		arg.Page = 1
	}
	if arg.PerPage < 1 {
		arg.PerPage = versesPerPageDefault
	}
	v := url.Values{}
	v.Set("language", arg.Language)
	v.Set("words", "false")
	v.Set("fields", "text_uthmani")
	v.Set("page", strconv.Itoa(arg.Page))
	v.Set("per_page", strconv.Itoa(arg.PerPage))
	if len(arg.TranslationIDs) > 0 {
		ids := make([]string, 0, len(arg.TranslationIDs))
		for _, id := range arg.TranslationIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		v.Set("translations", strings.Join(ids, ","))
	}
	path := fmt.Sprintf("/verses/by_chapter/%d?%s", arg.SurahID, v.Encode())
	payload, err := getJSON[versesPayload](ctx, s, path)
	if err != nil {
		return app.VersePage{}, fmt.Errorf("fetch verses for surah %d: %w", arg.SurahID, err)
	}
	page := app.VersePage{
		Verses:      make([]app.Verse, 0, len(payload.Verses)),
		CurrentPage: payload.Pagination.CurrentPage,
		TotalPages:  payload.Pagination.TotalPages,
	}
	for _, x := range payload.Verses {
		verse := app.Verse{
			ID:          x.ID,
			VerseNumber: x.VerseNumber,
			VerseKey:    x.VerseKey,
			TextArabic:  x.TextUthmani,
			AudioURL:    x.Audio.URL,
		}
		for _, tr := range x.Translations {
			verse.Translations = append(verse.Translations, app.VerseTranslation{
				ResourceID: tr.ResourceID,
				Text:       tr.Text,
			})
		}
		page.Verses = append(page.Verses, verse)
	}
	return page, nil
}

type versesPayload struct {
	Verses []struct {
		ID           int    `json:"id"`
		VerseNumber  int    `json:"verse_number"`
		VerseKey     string `json:"verse_key"`
		TextUthmani  string `json:"text_uthmani"`
		Translations []struct {
			ResourceID int    `json:"resource_id"`
			Text       string `json:"text"`
		} `json:"translations"`
		Audio struct {
			URL string `json:"url"`
		} `json:"audio"`
	} `json:"verses"`
	Pagination struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
	} `json:"pagination"`
}
