package httptransport_test

import (
	"bytes"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/httptransport"
)

func TestLoggedTransport(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer func() {
		log.SetOutput(os.Stderr)
	}()
	t.Run("can log GET request with 200", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{},
		}
		slog.SetLogLoggerLevel(slog.LevelInfo)
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			httpmock.NewStringResponder(http.StatusOK, "Test"))
		// when
		r, err := myClient.Get("https://www.example.com/")
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.Contains(t, buf.String(), "INFO HTTP response method=GET url=https://www.example.com/ status=200")
		}
	})
	t.Run("can log GET request with 404", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{},
		}
		slog.SetLogLoggerLevel(slog.LevelInfo)
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			httpmock.NewStringResponder(http.StatusNotFound, "Test"))
		// when
		r, err := myClient.Get("https://www.example.com/")
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusNotFound, r.StatusCode)
			assert.Contains(t, buf.String(), "WARN HTTP response method=GET url=https://www.example.com/ status=404")
		}
	})
	t.Run("can log request and response details when level is DEBUG", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{},
		}
		slog.SetLogLoggerLevel(slog.LevelDebug)
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			httpmock.NewStringResponder(http.StatusOK, "Test").HeaderSet(http.Header{"dummy": []string{"bravo"}}))
		req, err := http.NewRequest("GET", "https://www.example.com/", nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("dummy", "alpha")
		// when
		r, err := myClient.Do(req)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.Contains(t, buf.String(), "INFO HTTP response method=GET url=https://www.example.com/ status=200")
			assert.Contains(t, buf.String(), "DEBUG HTTP request method=GET url=https://www.example.com/ header=map[Dummy:[alpha]] body=")
			assert.Contains(t, buf.String(), "DEBUG HTTP response method=GET url=https://www.example.com/ status=200 header=map[Dummy:[bravo]] body=Test")
		}
	})
	t.Run("should never log authorization headers in request", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{},
		}
		slog.SetLogLoggerLevel(slog.LevelDebug)
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			httpmock.NewStringResponder(http.StatusOK, "Test"))
		req, err := http.NewRequest("GET", "https://www.example.com/", nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "token")
		req.Header.Set("Dummy", "alpha")
		// when
		r, err := myClient.Do(req)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.Contains(t, buf.String(), "DEBUG HTTP request method=GET url=https://www.example.com/ header=\"map[Authorization:[REDACTED] Dummy:[alpha]]\" body=")
		}
	})
	t.Run("can redact response bodies for blocked URLs", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{
				BlockedResponseURLs: []string{"https://www.example.com/"},
			},
		}
		slog.SetLogLoggerLevel(slog.LevelDebug)
		httpmock.Reset()
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			httpmock.NewStringResponder(http.StatusOK, "Test"))
		req, err := http.NewRequest("GET", "https://www.example.com/", nil)
		if err != nil {
			t.Fatal(err)
		}
		// when
		r, err := myClient.Do(req)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.Contains(t, buf.String(), "DEBUG HTTP response method=GET url=https://www.example.com/ status=200 header=map[] body=REDACTED")
		}
	})
	t.Run("sets the default user agent when the request has none", func(t *testing.T) {
		// given
		myClient := &http.Client{
			Transport: httptransport.LoggedTransport{UserAgent: "alfurqan/1.0"},
		}
		slog.SetLogLoggerLevel(slog.LevelInfo)
		httpmock.Reset()
		var gotAgent string
		httpmock.RegisterResponder(
			"GET",
			"https://www.example.com/",
			func(req *http.Request) (*http.Response, error) {
				gotAgent = req.Header.Get("User-Agent")
				return httpmock.NewStringResponse(http.StatusOK, "Test"), nil
			})
		// when
		r, err := myClient.Get("https://www.example.com/")
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.Equal(t, "alfurqan/1.0", gotAgent)
		}
	})
}
