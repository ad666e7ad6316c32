package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxDocumentBytes caps how much of a response body is read.
const maxDocumentBytes = 8 << 20

// HTTPSource fetches lessons from a nihonki server or any static host that
// lays lessons out as <base>/data/<id>.json. A single attempt is made per
// call; failures are returned to the caller as-is.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
	log    *zap.Logger
}

// NewHTTPSource returns a source rooted at baseURL. A zero timeout leaves
// request deadlines entirely to the caller's context.
func NewHTTPSource(baseURL string, timeout time.Duration, log *zap.Logger) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing lesson url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("lesson url %q: scheme must be http or https", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPSource{
		base:   u,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}, nil
}

// Load fetches <base>/data/<id>.json.
func (s *HTTPSource) Load(ctx context.Context, id string) (*Lesson, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	body, err := s.get(ctx, "data", id+".json")
	if err != nil {
		return nil, fmt.Errorf("fetching lesson %s: %w", id, err)
	}

	l, err := Parse(body, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("lesson %s: %w", id, err)
	}
	l.ID = id
	return l, nil
}

// List fetches <base>/api/lessons.
func (s *HTTPSource) List(ctx context.Context) ([]Summary, error) {
	body, err := s.get(ctx, "api", "lessons")
	if err != nil {
		return nil, fmt.Errorf("fetching lesson list: %w", err)
	}

	var summaries []Summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("decoding lesson list: %w", err)
	}
	SortSummaries(summaries)
	return summaries, nil
}

func (s *HTTPSource) get(ctx context.Context, elem ...string) ([]byte, error) {
	target := s.base.JoinPath(elem...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	s.log.Debug("lesson request",
		zap.String("url", target.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

// NewSource picks an HTTP source for http(s) locations and a directory
// source for anything else.
func NewSource(location string, timeout time.Duration, log *zap.Logger) (Source, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout, log)
	}
	return NewDirSource(location, log), nil
}
