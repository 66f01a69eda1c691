// Package quranservice provides access to chapters, verses, translations
// and tafsir from the remote content API.
package quranservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	baseURLDefault = "https://api.quran.com/api/v4"

	// client side limit to stay well below the API's documented quota
	requestsPerSecond = 10
)

// QuranService provides access to the Quran content API.
type QuranService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	sfg        *singleflight.Group
}

type Params struct {
	// optional
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new QuranService and returns it.
// When nil is passed for any parameter a default will be used instead.
func New(arg Params) *QuranService {
	s := &QuranService{
		baseURL: baseURLDefault,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
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

// getJSON fetches a path relative to the base URL and unmarshals the
// response into a new value of type T. In-flight requests for the same
// path are de-duplicated.
func getJSON[T any](ctx context.Context, s *QuranService, path string) (T, error) {
	var z T
	x, err, _ := s.sfg.Do(path, func() (any, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return z, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
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
