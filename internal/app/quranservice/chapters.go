package quranservice

import (
	"context"
	"fmt"

	"github.com/alfurqan/alfurqan/internal/app"
)

type chapterPayload struct {
	ID              int    `json:"id"`
	RevelationPlace string `json:"revelation_place"`
	NameSimple      string `json:"name_simple"`
	NameArabic      string `json:"name_arabic"`
	VersesCount     int    `json:"verses_count"`
	TranslatedName  struct {
		Name string `json:"name"`
	} `json:"translated_name"`
}

func (c chapterPayload) toSurah() app.Surah {
	return app.Surah{
		ID:              c.ID,
		Name:            c.NameSimple,
		NameArabic:      c.NameArabic,
		TranslatedName:  c.TranslatedName.Name,
		RevelationPlace: c.RevelationPlace,
		VersesCount:     c.VersesCount,
	}
}

// Chapters returns all 114 surahs with names translated for the given language.
func (s *QuranService) Chapters(ctx context.Context, language string) ([]app.Surah, error) {
	payload, err := getJSON[struct {
		Chapters []chapterPayload `json:"chapters"`
	}](ctx, s, "/chapters?language="+language)
	if err != nil {
		return nil, fmt.Errorf("fetch chapters: %w", err)
	}
	surahs := make([]app.Surah, 0, len(payload.Chapters))
	for _, c := range payload.Chapters {
		surahs = append(surahs, c.toSurah())
	}
	return surahs, nil
}

// Chapter returns a single surah.
func (s *QuranService) Chapter(ctx context.Context, id int, language string) (app.Surah, error) {
	payload, err := getJSON[struct {
		Chapter chapterPayload `json:"chapter"`
	}](ctx, s, fmt.Sprintf("/chapters/%d?language=%s", id, language))
	if err != nil {
		return app.Surah{}, fmt.Errorf("fetch chapter %d: %w", id, err)
	}
	return payload.Chapter.toSurah(), nil
}
