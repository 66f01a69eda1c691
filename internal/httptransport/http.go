// Package httptransport provides custom http transport implementations.
package httptransport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// LoggedTransport adds request slog logging and a default User-Agent.
//
// Responses with status code below 400 are logged with INFO level.
// Responses with status code of 400 or higher are logged with WARNING level.
// When DEBUG logging is enabled, will also log details of request and
// response including headers. Authorization headers are redacted.
// Can redact response bodies for URLs, e.g. which would contain tokens.
type LoggedTransport struct {
	// Base is the wrapped transport. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// UserAgent is set on requests that carry none.
	// Some of the consumed APIs require an identifying agent.
	UserAgent string
	// Body of blocked response URLs will not be logged.
	BlockedResponseURLs []string
}

func (t LoggedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.UserAgent)
	}
	isDebug := logRequest(req)
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	logResponse(t.BlockedResponseURLs, isDebug, resp, req)
	return resp, err
}

func logRequest(req *http.Request) bool {
	isDebug := slog.Default().Enabled(context.Background(), slog.LevelDebug)
	if isDebug {
		reqBody := ""
		if req.Body != nil {
			body, err := io.ReadAll(req.Body)
			if err == nil {
				reqBody = string(body)
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}
		}
		h := req.Header.Clone()
		if h.Get("Authorization") != "" {
			h.Set("Authorization", "REDACTED") // never log this header
		}
		slog.Debug("HTTP request", "method", req.Method, "url", req.URL, "header", h, "body", reqBody)
	}
	return isDebug
}

func logResponse(blockedURLs []string, isDebug bool, resp *http.Response, req *http.Request) {
	if isDebug {
		var respBody string
		var isBlocked bool
		url := req.URL.String()
		for _, u := range blockedURLs {
			if strings.Contains(url, u) {
				isBlocked = true
				break
			}
		}
		if isBlocked {
			respBody = "REDACTED"
		} else if resp.Body != nil {
			body, err := io.ReadAll(resp.Body)
			if err == nil {
				respBody = string(body)
				resp.Body = io.NopCloser(bytes.NewBuffer(body))
			}
		}
		slog.Debug(
			"HTTP response",
			"method", req.Method,
			"url", req.URL,
			"status", resp.StatusCode,
			"header", resp.Header,
			"body", respBody,
		)
	}
	var level slog.Level
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	} else {
		level = slog.LevelInfo
	}
	slog.Log(
		context.Background(),
		level,
		"HTTP response",
		"method", req.Method,
		"url", req.URL,
		"status", resp.StatusCode,
	)
}
