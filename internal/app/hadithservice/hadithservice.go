// Package hadithservice provides hadith collections from the remote hadith API.
package hadithservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/alfurqan/alfurqan/internal/app"
)

const (
	baseURLDefault = "https://hadithapi.com/api"

	hadithsPerPage = 25
)

// HadithService provides access to the hadith API.
type HadithService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	sfg        *singleflight.Group
}

type Params struct {
	// APIKey is the access key for the hadith API.
	// The API rejects requests without one.
	APIKey string
	// optional
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new HadithService and returns it.
// When nil is passed for an optional parameter a default will be used instead.
func New(arg Params) *HadithService {
	s := &HadithService{
		apiKey:  arg.APIKey,
		baseURL: baseURLDefault,
		sfg:     new(singleflight.Group),
	}
	if arg.BaseURL != "" {
		s.baseURL = arg.BaseURL
	}
	if arg.HTTPClient != nil {
		s.httpClient = arg.HTTPClient
	} else {
		s.httpClient = http.DefaultClient
	}
	return s
}

// Books returns the available hadith collections.
func (s *HadithService) Books(ctx context.Context) ([]app.HadithBook, error) {
	payload, err := getJSON[struct {
		Books []struct {
			BookName      string `json:"bookName"`
			WriterName    string `json:"writerName"`
			BookSlug      string `json:"bookSlug"`
			HadithsCount  string `json:"hadiths_count"`
			ChaptersCount string `json:"chapters_count"`
		} `json:"books"`
	}](ctx, s, "/books", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch hadith books: %w", err)
	}
	bb := make([]app.HadithBook, 0, len(payload.Books))
	for _, x := range payload.Books {
		hc, _ := strconv.Atoi(x.HadithsCount)
		cc, _ := strconv.Atoi(x.ChaptersCount)
		bb = append(bb, app.HadithBook{
			Slug:          x.BookSlug,
			Name:          x.BookName,
			Author:        x.WriterName,
			HadithCount:   hc,
			ChaptersCount: cc,
		})
	}
	return bb, nil
}

// Chapters returns the chapters of a hadith book.
func (s *HadithService) Chapters(ctx context.Context, bookSlug string) ([]app.HadithChapter, error) {
	payload, err := getJSON[struct {
		Chapters []struct {
			ID             int    `json:"id"`
			ChapterNumber  string `json:"chapterNumber"`
			ChapterEnglish string `json:"chapterEnglish"`
			ChapterArabic  string `json:"chapterArabic"`
			BookSlug       string `json:"bookSlug"`
		} `json:"chapters"`
	}](ctx, s, "/"+bookSlug+"/chapters", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch chapters of %s: %w", bookSlug, err)
	}
	cc := make([]app.HadithChapter, 0, len(payload.Chapters))
	for _, x := range payload.Chapters {
		cc = append(cc, app.HadithChapter{
			ID:         x.ID,
			Number:     x.ChapterNumber,
			Name:       x.ChapterEnglish,
			NameArabic: x.ChapterArabic,
			BookSlug:   x.BookSlug,
		})
	}
	return cc, nil
}

// Hadiths returns one page of hadiths for a chapter.
func (s *HadithService) Hadiths(ctx context.Context, bookSlug string, chapterID, page int) (app.HadithPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("book", bookSlug)
	q.Set("chapter", strconv.Itoa(chapterID))
	q.Set("paginate", strconv.Itoa(hadithsPerPage))
	q.Set("page", strconv.Itoa(page))
	payload, err := getJSON[struct {
		Hadiths struct {
			CurrentPage int `json:"current_page"`
			LastPage    int `json:"last_page"`
			Data        []struct {
				ID              int    `json:"id"`
				HadithNumber    string `json:"hadithNumber"`
				HadithEnglish   string `json:"hadithEnglish"`
				HadithArabic    string `json:"hadithArabic"`
				EnglishNarrator string `json:"englishNarrator"`
				Status          string `json:"status"`
				BookSlug        string `json:"bookSlug"`
				ChapterID       string `json:"chapterId"`
			} `json:"data"`
		} `json:"hadiths"`
	}](ctx, s, "/hadiths", q)
	if err != nil {
		return app.HadithPage{}, fmt.Errorf("fetch hadiths of %s chapter %d: %w", bookSlug, chapterID, err)
	}
	hh := make([]app.Hadith, 0, len(payload.Hadiths.Data))
	for _, x := range payload.Hadiths.Data {
		cid, _ := strconv.Atoi(x.ChapterID)
		hh = append(hh, app.Hadith{
			ID:         x.ID,
			Number:     x.HadithNumber,
			TextArabic: x.HadithArabic,
			Text:       x.HadithEnglish,
			Narrator:   x.EnglishNarrator,
			Grade:      x.Status,
			BookSlug:   x.BookSlug,
			ChapterID:  cid,
		})
	}
	return app.HadithPage{
		Hadiths:     hh,
		CurrentPage: payload.Hadiths.CurrentPage,
		LastPage:    payload.Hadiths.LastPage,
	}, nil
}

func getJSON[T any](ctx context.Context, s *HadithService, path string, query url.Values) (T, error) {
	var z T
	if query == nil {
		query = url.Values{}
	}
	if s.apiKey != "" {
		query.Set("apiKey", s.apiKey)
	}
	u := s.baseURL + path + "?" + query.Encode()
	x, err, _ := s.sfg.Do(u, func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return z, err
		}
		r, err := s.httpClient.Do(req)
		if err != nil {
			return z, err
		}
		defer r.Body.Close()
		if r.StatusCode != http.StatusOK {
			return z, fmt.Errorf("get %s: %s", path, r.Status)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return z, err
		}
		var o T
		if err := json.Unmarshal(body, &o); err != nil {
			return z, fmt.Errorf("unmarshal %s: %w", path, err)
		}
		return o, nil
	})
	if err != nil {
		return z, err
	}
	return x.(T), nil
}
