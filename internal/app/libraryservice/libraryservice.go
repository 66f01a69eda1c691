// Package libraryservice provides the subject library,
// the radio station directory and location search.
package libraryservice

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
	baseURLDefault    = "https://api.islamhouse.com/v3"
	geocodeURLDefault = "https://nominatim.openstreetmap.org"

	itemsPerPage = 20
)

// LibraryService provides access to the subject library API
// and the geocoding API.
type LibraryService struct {
	baseURL    string
	geocodeURL string
	httpClient *http.Client
	sfg        *singleflight.Group
}

type Params struct {
	// optional
	BaseURL    string
	GeocodeURL string
	HTTPClient *http.Client
}

// New creates a new LibraryService and returns it.
// When nil is passed for any parameter a default will be used instead.
func New(arg Params) *LibraryService {
	s := &LibraryService{
		baseURL:    baseURLDefault,
		geocodeURL: geocodeURLDefault,
		sfg:        new(singleflight.Group),
	}
	if arg.BaseURL != "" {
		s.baseURL = arg.BaseURL
	}
	if arg.GeocodeURL != "" {
		s.geocodeURL = arg.GeocodeURL
	}
	if arg.HTTPClient != nil {
		s.httpClient = arg.HTTPClient
	} else {
		s.httpClient = http.DefaultClient
	}
	return s
}

// Categories returns the child categories of a node in the subject tree.
// Pass 0 for parentID to fetch the top level.
func (s *LibraryService) Categories(ctx context.Context, parentID int, language string) ([]app.Category, error) {
	q := url.Values{}
	q.Set("language", language)
	if parentID != 0 {
		q.Set("parent", strconv.Itoa(parentID))
	}
	payload, err := getJSON[struct {
		Categories []struct {
			ID         int    `json:"id"`
			Title      string `json:"title"`
			ItemsCount int    `json:"items_count"`
			HasSubs    bool   `json:"has_subs"`
		} `json:"categories"`
	}](ctx, s, s.baseURL+"/categories?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch categories of %d: %w", parentID, err)
	}
	cc := make([]app.Category, 0, len(payload.Categories))
	for _, x := range payload.Categories {
		cc = append(cc, app.Category{
			ID:         x.ID,
			Title:      x.Title,
			ItemsCount: x.ItemsCount,
			HasSubs:    x.HasSubs,
		})
	}
	return cc, nil
}

// Items returns one page of published items for a category.
func (s *LibraryService) Items(ctx context.Context, categoryID, page int, language string) (app.CategoryItemPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("language", language)
	q.Set("paginate", strconv.Itoa(itemsPerPage))
	q.Set("page", strconv.Itoa(page))
	u := fmt.Sprintf("%s/categories/%d/items?%s", s.baseURL, categoryID, q.Encode())
	payload, err := getJSON[struct {
		Data []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Language    string `json:"language"`
			Attachments []struct {
				URL         string `json:"url"`
				Extension   string `json:"extension_type"`
				Size        string `json:"size"`
				Description string `json:"description"`
			} `json:"attachments"`
		} `json:"data"`
		Meta struct {
			CurrentPage int `json:"current_page"`
			LastPage    int `json:"last_page"`
		} `json:"meta"`
	}](ctx, s, u)
	if err != nil {
		return app.CategoryItemPage{}, fmt.Errorf("fetch items of category %d: %w", categoryID, err)
	}
	items := make([]app.CategoryItem, 0, len(payload.Data))
	for _, x := range payload.Data {
		aa := make([]app.Attachment, 0, len(x.Attachments))
		for _, a := range x.Attachments {
			aa = append(aa, app.Attachment{
				URL:         a.URL,
				Extension:   a.Extension,
				Size:        a.Size,
				Description: a.Description,
			})
		}
		items = append(items, app.CategoryItem{
			ID:          x.ID,
			Title:       x.Title,
			Description: x.Description,
			Language:    x.Language,
			Attachments: aa,
		})
	}
	return app.CategoryItemPage{
		Items:       items,
		CurrentPage: payload.Meta.CurrentPage,
		TotalPages:  payload.Meta.LastPage,
	}, nil
}

// SearchLocation performs a forward geocoding lookup for a free text query
// and returns candidate locations.
func (s *LibraryService) SearchLocation(ctx context.Context, query string) ([]app.Location, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "5")
	payload, err := getJSON[[]struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}](ctx, s, s.geocodeURL+"/search?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("search location %q: %w", query, err)
	}
	ll := make([]app.Location, 0, len(payload))
	for _, x := range payload {
		lat, err := strconv.ParseFloat(x.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(x.Lon, 64)
		if err != nil {
			continue
		}
		ll = append(ll, app.Location{
			Coordinates: app.Coordinates{Lat: lat, Lon: lon},
			Name:        x.DisplayName,
		})
	}
	return ll, nil
}

func getJSON[T any](ctx context.Context, s *LibraryService, u string) (T, error) {
	var z T
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
			return z, fmt.Errorf("get %s: %s", u, r.Status)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return z, err
		}
		var o T
		if err := json.Unmarshal(body, &o); err != nil {
			return z, fmt.Errorf("unmarshal %s: %w", u, err)
		}
		return o, nil
	})
	if err != nil {
		return z, err
	}
	return x.(T), nil
}
