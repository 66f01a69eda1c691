// Package documentservice fetches and renders PDF documents.
//
// Acquisition faults of any kind (bad status, wrong content type,
// truncated payload, decode failure, timeout) are reported as
// ErrFallback so callers can switch to an external viewer
// instead of presenting a broken document.
package documentservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/go-fitz"
)

// ErrFallback is returned when a document can not be fetched or decoded
// and the caller should fall back to an external viewer.
var ErrFallback = errors.New("document unusable")

const (
	fetchTimeoutDefault = 30 * time.Second

	// payloads smaller than this can not be a real document
	minDocumentSize = 1024

	// hard cap to keep a hostile or misconfigured host
	// from exhausting memory
	maxDocumentSize = 100 * 1024 * 1024

	renderDPIBase = 96
)

var pdfMagic = []byte("%PDF-")

// DocumentService fetches remote PDF files and renders their pages.
type DocumentService struct {
	fetchTimeout time.Duration
	httpClient   *http.Client

	mu      sync.Mutex
	renders map[int]*renderJob // in-flight render per page slot
}

type renderJob struct {
	cancel context.CancelFunc
}

type Params struct {
	// optional
	FetchTimeout time.Duration
	HTTPClient   *http.Client
}

// New creates a new DocumentService and returns it.
// When nil is passed for any parameter a default will be used instead.
func New(arg Params) *DocumentService {
	s := &DocumentService{
		fetchTimeout: fetchTimeoutDefault,
		renders:      make(map[int]*renderJob),
	}
	if arg.FetchTimeout > 0 {
		s.fetchTimeout = arg.FetchTimeout
	}
	if arg.HTTPClient != nil {
		s.httpClient = arg.HTTPClient
	} else {
		s.httpClient = http.DefaultClient
	}
	return s
}

// Fetch downloads a PDF document and returns its raw bytes.
// It validates the payload before any decoding happens and returns an
// error wrapping ErrFallback when the payload can not be a usable PDF.
// Cancelling ctx aborts the download.
func (s *DocumentService) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	r, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: fetch timed out: %s", ErrFallback, url)
		}
		return nil, err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFallback, r.Status)
	}
	if ct := r.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		// some hosts serve an error page with status 200
		return nil, fmt.Errorf("%w: HTML response for %s", ErrFallback, url)
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: fetch timed out: %s", ErrFallback, url)
		}
		return nil, err
	}
	if len(data) < minDocumentSize {
		return nil, fmt.Errorf("%w: payload too small (%d bytes)", ErrFallback, len(data))
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("%w: payload too large", ErrFallback)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("%w: not a PDF payload", ErrFallback)
	}
	return data, nil
}

// Open decodes a fetched document.
// The caller owns the returned document and must close it.
func (s *DocumentService) Open(data []byte) (*Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %s", ErrFallback, err)
	}
	return &Document{doc: doc}, nil
}

// RenderPage renders one page of a document at a zoom factor of 1.0 = 100%.
// Starting a new render for the same page slot cancels the previous one.
// A cancelled render returns ctx.Err.
func (s *DocumentService) RenderPage(ctx context.Context, doc *Document, page int, zoom float64) (image.Image, error) {
	ctx, cancel := context.WithCancel(ctx)
	job := &renderJob{cancel: cancel}
	s.mu.Lock()
	if j, ok := s.renders[page]; ok {
		j.cancel()
	}
	s.renders[page] = job
	s.mu.Unlock()
	defer func() {
		cancel()
		s.mu.Lock()
		if s.renders[page] == job {
			delete(s.renders, page)
		}
		s.mu.Unlock()
	}()
	type result struct {
		img image.Image
		err error
	}
	ch := make(chan result, 1)
	go func() {
		img, err := doc.render(page, zoom)
		ch <- result{img: img, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.img, r.err
	}
}

// Document is a decoded PDF document.
type Document struct {
	mu  sync.Mutex
	doc *fitz.Document
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// Close releases the decoder resources.
func (d *Document) Close() error {
	return d.doc.Close()
}

func (d *Document) render(page int, zoom float64) (image.Image, error) {
	if zoom <= 0 {
		zoom = 1.0
	}
	// the decoder is not safe for concurrent use
	d.mu.Lock()
	defer d.mu.Unlock()
	img, err := d.doc.ImageDPI(page, renderDPIBase*zoom)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page, err)
	}
	return img, nil
}
